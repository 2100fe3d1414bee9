// Package matrix turns the generated (version, variant) pairs into CI job
// definitions: a stage pipeline and a matrix job list.
package matrix

import (
	"fmt"
	"strings"

	tmpl "github.com/donaldgifford/imagegen/internal/template"
	"github.com/donaldgifford/imagegen/internal/variant"
	"github.com/donaldgifford/imagegen/internal/version"
)

// lintStage always runs before the per-parent build stages.
const lintStage = "lint"

const pipelineJob = `
{{ .Version }}-{{ .Variant }}:
  extends: .docker
  stage: {{ .Parent }}
  variables:
    MAJOR_VERSION: {{ .Major }}
    VERSION: "{{ .Short }}"
    LONG_VERSION: "{{ .Version }}"
    VARIANT: {{ .Variant }}
    PARENT: "{{ .Parent }}"
    ISPARENT: "{{ boolWord .IsParent }}"
`

const matrixJob = `
      {{ .Variant }}_{{ .Version }}:
        MAJOR_VERSION: {{ .Major }}
        VERSION:  {{ .Short }}
        LONG_VERSION: {{ .Version }}
        VARIANT:  {{ .Variant }}
        PARENT: {{ .Parent }}
        ISPARENT:  {{ boolWord .IsParent }}
`

// Stanza describes one image build in the CI matrix.
type Stanza struct {
	Version  string `json:"version"`
	Short    string `json:"short"`
	Major    string `json:"major"`
	Variant  string `json:"variant"`
	Parent   string `json:"parent"`
	IsParent bool   `json:"is_parent"`
}

// NewStanza builds the record for v built on vr. compatible is the set of
// variants generated for v; it decides whether vr is the layer parent.
func NewStanza(v version.Version, vr variant.Variant, compatible variant.Catalog) Stanza {
	return Stanza{
		Version:  v.String(),
		Short:    v.Short(),
		Major:    v.MajorString(),
		Variant:  vr.Name,
		Parent:   vr.Parent,
		IsParent: compatible.IsLayerParent(vr),
	}
}

// Formatter serializes stanzas into the two CI files.
type Formatter struct {
	renderer *tmpl.Renderer
}

// NewFormatter creates a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{renderer: tmpl.NewRenderer()}
}

// Pipeline renders the stage pipeline: a stage list of lint plus every parent,
// followed by one job per stanza, placed into wrapper.
func (f *Formatter) Pipeline(parents []string, stanzas []Stanza, wrapper string) (string, error) {
	var stages strings.Builder

	stages.WriteString("stages:\n")
	fmt.Fprintf(&stages, "  - %s\n", lintStage)

	for _, p := range parents {
		fmt.Fprintf(&stages, "  - %s\n", p)
	}

	jobs, err := f.renderAll("pipeline job", pipelineJob, stanzas)
	if err != nil {
		return "", err
	}

	return tmpl.Substitute(tmpl.PipelineFile, wrapper, map[string]string{
		tmpl.PlaceholderStages:   stages.String(),
		tmpl.PlaceholderVersions: strings.Join(jobs, ""),
	})
}

// Jobs renders the matrix job list placed into wrapper.
func (f *Formatter) Jobs(stanzas []Stanza, wrapper string) (string, error) {
	jobs, err := f.renderAll("matrix job", matrixJob, stanzas)
	if err != nil {
		return "", err
	}

	return tmpl.Substitute(tmpl.JobsFile, wrapper, map[string]string{
		tmpl.PlaceholderVersions: strings.Join(jobs, "\n"),
	})
}

func (f *Formatter) renderAll(name, text string, stanzas []Stanza) ([]string, error) {
	out := make([]string, 0, len(stanzas))

	for i := range stanzas {
		b, err := f.renderer.Render(name, text, stanzas[i])
		if err != nil {
			return nil, fmt.Errorf("rendering %s for %s-%s: %w", name, stanzas[i].Version, stanzas[i].Variant, err)
		}

		out = append(out, string(b))
	}

	return out, nil
}
