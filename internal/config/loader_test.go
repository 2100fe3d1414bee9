package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/imagegen/internal/config"
	"github.com/donaldgifford/imagegen/internal/variant"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
generation: legacy
source:
  granularity: major
  blacklist: ["4.3.1"]
  known_bad: ["2.7.7"]
templates_dir: tmpl
output_dir: out
variants:
  - name: ubuntu2404
    parent: ubuntu
  - name: nvidia2404
    parent: nvidia
skip_variants:
  "6.0": [nvidia2404]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.GenerationLegacy, cfg.Generation)
	assert.Equal(t, config.IndexURL, cfg.Source.URL)
	assert.Equal(t, config.GranularityMajor, cfg.Source.Granularity)
	assert.Equal(t, config.LegacyFloor, cfg.Source.Floor)
	assert.Equal(t, []string{"4.3.1"}, cfg.Source.Blacklist)
	assert.Equal(t, []string{"2.7.7"}, cfg.Source.KnownBad)
	assert.Equal(t, "tmpl", cfg.TemplatesDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, config.DefaultBuildSystemMarker, cfg.BuildSystemMarker)
	assert.Equal(t, variant.Catalog{
		{Name: "ubuntu2404", Parent: "ubuntu"},
		{Name: "nvidia2404", Parent: "nvidia"},
	}, cfg.Variants)
	assert.Equal(t, variant.SkipTable{"6.0": {"nvidia2404"}}, cfg.SkipVariants)
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("/nonexistent/imagegen.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, config.GenerationCurrent, cfg.Generation)
	assert.Equal(t, config.FeedURL, cfg.Source.URL)
	assert.Empty(t, cfg.Source.Floor)
	assert.Equal(t, variant.DefaultCatalog(), cfg.Variants)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "{{invalid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_InvalidGeneration(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeConfig(t, "generation: future\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
	assert.Contains(t, err.Error(), "invalid generation")
}

func TestLoad_ShippedConfigMatchesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("../../imagegen.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
