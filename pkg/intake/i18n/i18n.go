// Package i18n holds the localized message catalog for the wizard. Three
// languages are supported: English (en), Sindhi (sd) and Urdu (ur). The
// chosen language is persisted so it survives a restart.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/store"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Supported language codes, in selection-screen order.
const (
	LangEnglish = "en"
	LangSindhi  = "sd"
	LangUrdu    = "ur"
)

var (
	// ErrMissingTranslation indicates the message id is absent from the
	// active language's catalog (and the English fallback).
	ErrMissingTranslation = errors.New("i18n: missing translation")

	// ErrUnknownLanguage indicates a language code outside the closed set.
	ErrUnknownLanguage = errors.New("i18n: unknown language")
)

// Languages returns the closed set of supported language codes.
func Languages() []string {
	return []string{LangEnglish, LangSindhi, LangUrdu}
}

func known(code string) bool {
	switch code {
	case LangEnglish, LangSindhi, LangUrdu:
		return true
	}
	return false
}

// Localizer resolves message ids against the active language, falling back
// to English. The active language is persisted under store.KeyLanguage.
type Localizer struct {
	bundle *goi18n.Bundle
	st     store.Store

	mu       sync.Mutex
	lang     string
	loc      *goi18n.Localizer
	reported map[string]bool
}

// New loads the embedded catalogs and restores the persisted language, if
// any. With no persisted choice the localizer starts in English, matching a
// first boot where the language screen has not run yet.
func New(st store.Store) (*Localizer, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, code := range Languages() {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+code+".toml"); err != nil {
			return nil, fmt.Errorf("i18n: load %s catalog: %w", code, err)
		}
	}

	l := &Localizer{
		bundle:   bundle,
		st:       st,
		reported: make(map[string]bool),
	}
	l.setLocked(LangEnglish)

	if saved, err := st.Get(store.KeyLanguage); err == nil && known(saved) {
		l.setLocked(saved)
	}
	return l, nil
}

func (l *Localizer) setLocked(code string) {
	l.lang = code
	l.loc = goi18n.NewLocalizer(l.bundle, code, LangEnglish)
}

// Language returns the active language code.
func (l *Localizer) Language() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lang
}

// SetLanguage switches the active language and persists the choice.
func (l *Localizer) SetLanguage(code string) error {
	if !known(code) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}

	l.mu.Lock()
	l.setLocked(code)
	l.mu.Unlock()

	if err := l.st.Set(store.KeyLanguage, code); err != nil {
		return fmt.Errorf("i18n: persist language: %w", err)
	}
	return nil
}

// Lookup resolves a message id, returning ErrMissingTranslation when the id
// is absent. Use this in tests to make catalog gaps visible.
func (l *Localizer) Lookup(id string) (string, error) {
	l.mu.Lock()
	loc := l.loc
	l.mu.Unlock()

	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMissingTranslation, id)
	}
	return msg, nil
}

// T resolves a message id for display. A missing id returns the id itself,
// so a catalog gap degrades to a visible key rather than a crash; each gap
// is logged once.
func (l *Localizer) T(id string) string {
	msg, err := l.Lookup(id)
	if err == nil {
		return msg
	}

	l.mu.Lock()
	seen := l.reported[id]
	l.reported[id] = true
	l.mu.Unlock()

	if !seen {
		internal.Logger().Warn("missing translation", "id", id, "lang", l.Language())
	}
	return id
}
