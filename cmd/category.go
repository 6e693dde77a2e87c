package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/microlearn/internal/ui"
)

var categoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Show today's task from one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaily(cmd, args[0])
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List available categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := resolveLocale(cmd)
		if err != nil {
			return err
		}
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}
		fmt.Println(ui.CategoriesView(loc, cat.Categories()))
		return nil
	},
}
