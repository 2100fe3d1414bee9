package template

import (
	"bytes"
	"fmt"
	"text/template"
)

// Renderer renders Go text/templates with the imagegen function map.
type Renderer struct {
	funcMap template.FuncMap
}

// NewRenderer creates a Renderer with the standard imagegen function map.
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: FuncMap(),
	}
}

// Render parses text under name and executes it with data. Missing map keys
// are an error rather than "<no value>".
func (r *Renderer) Render(name, text string, data any) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(r.funcMap).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %q: %w", name, err)
	}

	return buf.Bytes(), nil
}
