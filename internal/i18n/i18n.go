// Package i18n holds the UI message catalogue. Messages live in embedded
// JSON locale files and are looked up through a process-wide localizer
// that SetLanguage switches.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when no language is set and as the fallback for
// messages missing from another locale.
const DefaultLanguage = "en"

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   = DefaultLanguage
	initOnce  sync.Once
	initErr   error
)

func load() {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		initErr = fmt.Errorf("read locales dir: %w", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			initErr = fmt.Errorf("read locale file %s: %w", e.Name(), err)
			return
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
			initErr = fmt.Errorf("parse locale file %s: %w", e.Name(), err)
			return
		}
	}

	bundle = b
	localizer = i18n.NewLocalizer(b, DefaultLanguage)
}

func ensureLoaded() error {
	initOnce.Do(load)
	return initErr
}

// Supported returns the languages that have a locale file, default first.
func Supported() []string {
	if ensureLoaded() != nil {
		return []string{DefaultLanguage}
	}
	out := []string{DefaultLanguage}
	for _, tag := range bundle.LanguageTags() {
		base, _ := tag.Base()
		if s := base.String(); s != DefaultLanguage {
			out = append(out, s)
		}
	}
	return out
}

// SetLanguage switches the UI language. The tag must parse and have a
// locale file; regional variants ("es-ES") match their base language.
func SetLanguage(lang string) error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse language %q: %w", lang, err)
	}
	base, _ := tag.Base()

	found := false
	for _, s := range Supported() {
		if s == base.String() {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unsupported language %q (supported: %v)", lang, Supported())
	}

	mu.Lock()
	defer mu.Unlock()
	current = base.String()
	localizer = i18n.NewLocalizer(bundle, current, DefaultLanguage)
	return nil
}

// Language returns the base tag of the active language, e.g. "es".
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// LanguageName returns the English name of the active language, as used
// in generation prompts.
func LanguageName() string {
	switch Language() {
	case "es":
		return "Spanish"
	default:
		return "English"
	}
}

func localize(cfg *i18n.LocalizeConfig) string {
	if ensureLoaded() != nil {
		return cfg.MessageID
	}
	mu.RLock()
	loc := localizer
	mu.RUnlock()

	s, err := loc.Localize(cfg)
	if err != nil {
		return cfg.MessageID
	}
	return s
}

// T translates a message by ID. Unknown IDs are returned unchanged.
func T(msgID string) string {
	return localize(&i18n.LocalizeConfig{MessageID: msgID})
}

// Td translates a message by ID with template data.
func Td(msgID string, data map[string]any) string {
	return localize(&i18n.LocalizeConfig{MessageID: msgID, TemplateData: data})
}

// Tp translates a pluralized message. The template sees {{.Count}} plus
// any extra data.
func Tp(msgID string, count int, data map[string]any) string {
	td := map[string]any{"Count": count}
	for k, v := range data {
		td[k] = v
	}
	return localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		PluralCount:  count,
		TemplateData: td,
	})
}
