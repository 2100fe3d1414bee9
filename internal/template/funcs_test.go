package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmpl "github.com/donaldgifford/imagegen/internal/template"
)

func TestFuncMap_BoolWord(t *testing.T) {
	t.Parallel()

	r := tmpl.NewRenderer()

	tests := []struct {
		template string
		expected string
	}{
		{template: `{{ boolWord true }}`, expected: "True"},
		{template: `{{ boolWord false }}`, expected: "False"},
		{template: `{{ if eq (boolWord .) "True" }}parent{{ end }}`, expected: "parent"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.template, func(t *testing.T) {
			t.Parallel()

			result, err := r.Render("funcs", tt.template, true)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}
