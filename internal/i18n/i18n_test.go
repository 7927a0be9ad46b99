package i18n

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize("en"); got != "en" {
		t.Errorf("Normalize(en) = %q", got)
	}
	if got := Normalize("fr"); got != DefaultLang {
		t.Errorf("unsupported locale must clamp to %q, got %q", DefaultLang, got)
	}
	if got := Normalize(""); got != DefaultLang {
		t.Errorf("empty locale must clamp to %q, got %q", DefaultLang, got)
	}
}

func TestTFallsBackToDefaultLocale(t *testing.T) {
	pt := T("pt", "hero.title")
	if pt == "hero.title" {
		t.Fatal("expected a pt translation for hero.title")
	}
	if got := T("fr", "hero.title"); got != pt {
		t.Errorf("unknown locale must fall back to pt, got %q", got)
	}
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	if got := T("pt", "missing.key"); got != "missing.key" {
		t.Errorf("unknown key must pass through, got %q", got)
	}
}

func TestTableAlwaysResolves(t *testing.T) {
	if len(Table("pt")) == 0 || len(Table("en")) == 0 {
		t.Fatal("expected full tables for supported locales")
	}
	if len(Table("zz")) == 0 {
		t.Fatal("unsupported locale must return the default table")
	}
}
