// Package prompts holds the four fixed instruction templates, one per action.
//
// The templates live in templates.yaml, embedded into the binary at compile
// time, so they are constant for the life of the process and cannot be
// edited by users.
package prompts

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
	"github.com/Shimizu-Technology/resume-ai/internal/models"
)

//go:embed templates.yaml
var templatesYAML []byte

// Template is one instruction template and the UI text that goes with it.
type Template struct {
	Mode        models.Mode `yaml:"mode"`
	Button      string      `yaml:"button"`   // Caption on the action button
	Label       string      `yaml:"label"`    // Heading the result is rendered under
	Progress    string      `yaml:"progress"` // Shown while the request is pending
	Instruction string      `yaml:"instruction"`
}

// Catalog is the immutable set of templates, keyed by mode.
type Catalog struct {
	ordered []Template
	byMode  map[models.Mode]Template
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// Load parses the embedded templates.
func Load() (*Catalog, error) {
	return Parse(templatesYAML)
}

// MustLoad is Load for program startup, where a broken embedded file is a
// build defect rather than a runtime condition.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a Catalog from YAML. Every known mode must appear exactly
// once with a non-empty instruction and label.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	c := &Catalog{byMode: make(map[models.Mode]Template, len(f.Templates))}
	for _, t := range f.Templates {
		if !t.Mode.Valid() {
			return nil, fmt.Errorf("template for unknown mode %q", t.Mode)
		}
		if _, dup := c.byMode[t.Mode]; dup {
			return nil, fmt.Errorf("duplicate template for mode %q", t.Mode)
		}
		if t.Instruction == "" || t.Label == "" {
			return nil, fmt.Errorf("template %q needs both an instruction and a label", t.Mode)
		}
		c.byMode[t.Mode] = t
		c.ordered = append(c.ordered, t)
	}

	for _, m := range models.AllModes {
		if _, ok := c.byMode[m]; !ok {
			return nil, fmt.Errorf("missing template for mode %q", m)
		}
	}
	return c, nil
}

// Get returns the template for mode.
func (c *Catalog) Get(mode models.Mode) (Template, error) {
	t, ok := c.byMode[mode]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownMode, mode)
	}
	return t, nil
}

// All returns the templates in button order. The slice is a copy.
func (c *Catalog) All() []Template {
	out := make([]Template, len(c.ordered))
	copy(out, c.ordered)
	return out
}
