package template_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmpl "github.com/donaldgifford/imagegen/internal/template"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	got, err := tmpl.Substitute("t", "ENV FFMPEG_VERSION=%%FFMPEG_VERSION%%\n# %%FFMPEG_VERSION%%", map[string]string{
		"FFMPEG_VERSION": "7.1.1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ENV FFMPEG_VERSION=7.1.1\n# 7.1.1", got)
}

func TestSubstitute_NoRecursion(t *testing.T) {
	t.Parallel()

	got, err := tmpl.Substitute("t", "%%A%%", map[string]string{"A": "%%A%%!"})
	require.NoError(t, err)
	assert.Equal(t, "%%A%%!", got)
}

func TestSubstitute_MissingPlaceholder(t *testing.T) {
	t.Parallel()

	_, err := tmpl.Substitute("Dockerfile-run", "RUN ./configure", map[string]string{
		"FFMPEG_CONFIG_FLAGS": "--enable-gpl",
	})
	require.Error(t, err)

	var missing *tmpl.MissingPlaceholderError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Dockerfile-run", missing.Template)
	assert.Equal(t, "%%FFMPEG_CONFIG_FLAGS%%", missing.Placeholder)
}

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func validTemplates() map[string]string {
	return map[string]string{
		tmpl.EnvFile:                       "ENV FFMPEG_VERSION=%%FFMPEG_VERSION%%\n",
		tmpl.RunFile:                       "RUN ./configure %%FFMPEG_CONFIG_FLAGS%%\n",
		tmpl.PipelineFile:                  "%%STAGES%%\n%%VERSIONS%%",
		tmpl.JobsFile:                      "jobs:\n%%VERSIONS%%",
		tmpl.VariantFile("ubuntu2204"):     "FROM ubuntu:22.04\n%%ENV%%%%RUN%%",
		tmpl.VariantFile("broken2204"):     "FROM ubuntu:22.04\n%%ENV%%",
		tmpl.VariantFile("unused-ignored"): "",
	}
}

func TestLoadSet(t *testing.T) {
	t.Parallel()

	dir := writeTemplates(t, validTemplates())

	set, err := tmpl.LoadSet(dir, []string{"ubuntu2204"})
	require.NoError(t, err)
	assert.Equal(t, "jobs:\n%%VERSIONS%%", set.Jobs)
	assert.Len(t, set.Variants, 1)
}

func TestLoadSet_MissingVariant(t *testing.T) {
	t.Parallel()

	dir := writeTemplates(t, validTemplates())

	_, err := tmpl.LoadSet(dir, []string{"alpine313"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dockerfile-template.alpine313")
}

func TestSet_Dockerfile(t *testing.T) {
	t.Parallel()

	dir := writeTemplates(t, validTemplates())

	set, err := tmpl.LoadSet(dir, []string{"ubuntu2204", "broken2204"})
	require.NoError(t, err)

	got, err := set.Dockerfile("ubuntu2204", "7.1.1", "--enable-gpl")
	require.NoError(t, err)
	assert.Equal(t, "FROM ubuntu:22.04\nENV FFMPEG_VERSION=7.1.1\nRUN ./configure --enable-gpl\n", got)

	_, err = set.Dockerfile("broken2204", "7.1.1", "--enable-gpl")

	var missing *tmpl.MissingPlaceholderError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "%%RUN%%", missing.Placeholder)

	_, err = set.Dockerfile("nvidia2204", "7.1.1", "")
	require.Error(t, err)
}
