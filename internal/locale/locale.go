// Package locale provides the display-language string table.
// Message catalogs are embedded YAML files; unknown locales fall back to
// English, and missing keys fall back to the English string.
package locale

import (
	"embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// DefaultLocale is used when nothing is configured.
const DefaultLocale = "en"

// Locale resolves message keys for one display language.
type Locale struct {
	code     string
	messages map[string]string
	fallback map[string]string
}

// Load returns the Locale for code, falling back to English when the
// code has no catalog. The English catalog must always parse — it is
// embedded and covered by tests.
func Load(code string) (*Locale, error) {
	if code == "" {
		code = os.Getenv("MICROLEARN_LOCALE")
	}
	if code == "" {
		code = DefaultLocale
	}

	fallback, err := loadCatalog(DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("load default locale: %w", err)
	}

	messages := fallback
	if code != DefaultLocale {
		if m, err := loadCatalog(code); err == nil {
			messages = m
		} else {
			code = DefaultLocale
		}
	}

	return &Locale{code: code, messages: messages, fallback: fallback}, nil
}

// Code returns the resolved locale code.
func (l *Locale) Code() string {
	return l.code
}

// T resolves a message key. Unknown keys resolve to the key itself so a
// missing translation is visible rather than silent.
func (l *Locale) T(key string) string {
	if msg, ok := l.messages[key]; ok {
		return msg
	}
	if msg, ok := l.fallback[key]; ok {
		return msg
	}
	return key
}

// Tf resolves a message key and formats it with args.
func (l *Locale) Tf(key string, args ...any) string {
	return fmt.Sprintf(l.T(key), args...)
}

// Available lists the embedded locale codes, sorted.
func Available() []string {
	entries, err := translationsFS.ReadDir("translations")
	if err != nil {
		return []string{DefaultLocale}
	}
	var codes []string
	for _, e := range entries {
		name := e.Name()
		codes = append(codes, name[:len(name)-len(".yaml")])
	}
	sort.Strings(codes)
	return codes
}

func loadCatalog(code string) (map[string]string, error) {
	raw, err := translationsFS.ReadFile("translations/" + code + ".yaml")
	if err != nil {
		return nil, err
	}
	var messages map[string]string
	if err := yaml.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("parse %s catalog: %w", code, err)
	}
	return messages, nil
}
