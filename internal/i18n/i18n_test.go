package i18n

import (
	"encoding/json"
	"testing"
)

func useLang(t *testing.T, lang string) {
	t.Helper()
	prev := Language()
	if err := SetLanguage(lang); err != nil {
		t.Fatalf("SetLanguage(%q): %v", lang, err)
	}
	t.Cleanup(func() { _ = SetLanguage(prev) })
}

func TestDefaultIsEnglish(t *testing.T) {
	if got := T("Curriculum"); got != "Curriculum" {
		t.Errorf("T(Curriculum) = %q", got)
	}
}

func TestTranslateSpanish(t *testing.T) {
	useLang(t, "es")

	if got := T("Curriculum"); got != "Plan de estudios" {
		t.Errorf("T(Curriculum) = %q, want 'Plan de estudios'", got)
	}
	if got := Language(); got != "es" {
		t.Errorf("Language() = %q, want es", got)
	}
	if got := LanguageName(); got != "Spanish" {
		t.Errorf("LanguageName() = %q, want Spanish", got)
	}
}

func TestRegionalVariant(t *testing.T) {
	useLang(t, "es-ES")
	if got := Language(); got != "es" {
		t.Errorf("Language() = %q, want es", got)
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	if err := SetLanguage("fr"); err == nil {
		t.Error("expected error for unsupported language")
	}
	if err := SetLanguage("not a tag!"); err == nil {
		t.Error("expected error for malformed tag")
	}
}

func TestPluralTranslation(t *testing.T) {
	useLang(t, "en")

	if got := Tp("LessonCount", 1, nil); got != "1 lesson" {
		t.Errorf("Tp(LessonCount, 1) = %q", got)
	}
	if got := Tp("LessonCount", 3, nil); got != "3 lessons" {
		t.Errorf("Tp(LessonCount, 3) = %q", got)
	}
}

func TestTemplateData(t *testing.T) {
	useLang(t, "en")

	got := Td("LessonsProgress", map[string]any{"Done": 2, "Total": 5})
	if got != "2 of 5 lessons" {
		t.Errorf("Td(LessonsProgress) = %q", got)
	}
}

func TestMissingKey(t *testing.T) {
	if got := T("NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf("T(NoSuchMessage) = %q", got)
	}
}

func TestSupported(t *testing.T) {
	langs := Supported()
	if len(langs) < 2 || langs[0] != DefaultLanguage {
		t.Fatalf("Supported() = %v", langs)
	}
}

func TestLocalesHaveSameKeys(t *testing.T) {
	read := func(name string) map[string]any {
		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		return m
	}
	en, es := read("en.json"), read("es.json")
	for k := range en {
		if _, ok := es[k]; !ok {
			t.Errorf("es.json missing %q", k)
		}
	}
	for k := range es {
		if _, ok := en[k]; !ok {
			t.Errorf("en.json missing %q", k)
		}
	}
}
