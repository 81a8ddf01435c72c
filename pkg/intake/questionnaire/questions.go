// Package questionnaire carries the per-disease screening questions and the
// engine that walks a patient through them with timed auto-advance.
package questionnaire

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"mediscan-kiosk/pkg/intake/disease"
)

//go:embed questions/*.toml
var questionFS embed.FS

type catalog map[string]struct {
	Questions []string `toml:"questions"`
}

// Questions returns the ordered question texts for the disease in the given
// language. Languages without a catalog entry fall back to English so a
// missing translation never blocks the flow.
func Questions(d disease.ID, lang string) ([]string, error) {
	raw, err := questionFS.ReadFile(fmt.Sprintf("questions/%s.toml", d))
	if err != nil {
		return nil, fmt.Errorf("questionnaire: no catalog for disease %q: %w", d, err)
	}

	var c catalog
	if err := toml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("questionnaire: parsing catalog for %q: %w", d, err)
	}

	if entry, ok := c[lang]; ok && len(entry.Questions) > 0 {
		return entry.Questions, nil
	}
	if entry, ok := c["en"]; ok && len(entry.Questions) > 0 {
		return entry.Questions, nil
	}
	return nil, fmt.Errorf("questionnaire: catalog for %q has no usable language", d)
}
