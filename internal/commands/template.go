package commands

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Template is player-facing text with sprig functions available. Referencing
// a field the data does not have is an error.
type Template struct {
	tmpl *template.Template
}

func NewTemplate(name string, text string) (*Template, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// MustTemplate is NewTemplate for templates compiled into the binary.
func MustTemplate(name string, text string) *Template {
	t, err := NewTemplate(name, text)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) Expand(data any) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("expanding %s template: %w", t.tmpl.Name(), err)
	}
	return sb.String(), nil
}

// ExpandTemplate parses and expands text in one step.
func ExpandTemplate(text string, data any) (string, error) {
	t, err := NewTemplate("text", text)
	if err != nil {
		return "", err
	}
	return t.Expand(data)
}
