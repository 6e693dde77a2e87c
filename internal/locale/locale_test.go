package locale

import (
	"strings"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	l, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Code() != "en" {
		t.Errorf("Code() = %q, want en", l.Code())
	}
	if got := l.T("verdict.correct"); got != "Correct!" {
		t.Errorf("T(verdict.correct) = %q", got)
	}
}

func TestLoadSpanish(t *testing.T) {
	l, err := Load("es")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := l.T("verdict.correct"); got != "¡Correcto!" {
		t.Errorf("T(verdict.correct) = %q", got)
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	l, err := Load("de")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Code() != "en" {
		t.Errorf("Code() = %q, want en fallback", l.Code())
	}
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	l, err := Load("en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := l.T("no.such.key"); got != "no.such.key" {
		t.Errorf("T(no.such.key) = %q, want the key itself", got)
	}
}

func TestTf(t *testing.T) {
	l, err := Load("en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := l.Tf("streak.days", 6)
	if !strings.Contains(got, "6") {
		t.Errorf("Tf(streak.days, 6) = %q", got)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	en, err := loadCatalog("en")
	if err != nil {
		t.Fatalf("load en: %v", err)
	}
	for _, code := range Available() {
		m, err := loadCatalog(code)
		if err != nil {
			t.Fatalf("load %s: %v", code, err)
		}
		for key := range en {
			if _, ok := m[key]; !ok {
				t.Errorf("locale %s missing key %q", code, key)
			}
		}
		for key := range m {
			if _, ok := en[key]; !ok {
				t.Errorf("locale %s has extra key %q", code, key)
			}
		}
	}
}
