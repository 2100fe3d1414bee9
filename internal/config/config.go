// Package config handles loading and validation of the imagegen.yaml generator configuration.
package config

import (
	"github.com/donaldgifford/imagegen/internal/variant"
)

// Generation presets select where release versions come from.
const (
	// GenerationCurrent reads the endoflife.date release feed.
	GenerationCurrent = "current"

	// GenerationLegacy scrapes the ffmpeg.org release index page.
	GenerationLegacy = "legacy"
)

// Line granularities used when reducing the release list.
const (
	GranularityMinor = "minor"
	GranularityMajor = "major"
)

const (
	// DefaultFileName is the config file looked up in the working directory.
	DefaultFileName = "imagegen.yaml"

	// FeedURL is the default release feed for the current generation.
	FeedURL = "https://endoflife.date/api/ffmpeg.json"

	// IndexURL is the default release index for the legacy generation.
	IndexURL = "https://ffmpeg.org/releases/"

	// LegacyFloor is the oldest line the legacy generation keeps.
	LegacyFloor = "2.8"

	// DefaultBuildSystemMarker is looked for in variant templates to decide
	// whether libvmaf can be enabled.
	DefaultBuildSystemMarker = "meson"
)

// Config is the generator configuration (imagegen.yaml).
type Config struct {
	Generation        string            `yaml:"generation"`
	Source            Source            `yaml:"source"`
	TemplatesDir      string            `yaml:"templates_dir"`
	OutputDir         string            `yaml:"output_dir"`
	BuildSystemMarker string            `yaml:"build_system_marker"`
	Variants          variant.Catalog   `yaml:"variants"`
	SkipVariants      variant.SkipTable `yaml:"skip_variants"`
}

// Source controls how the release list is fetched and reduced.
type Source struct {
	// URL of the release feed (current) or index page (legacy).
	URL string `yaml:"url"`

	// Granularity is "minor" (one version per major.minor) or "major".
	Granularity string `yaml:"granularity"`

	// Floor stops the scan at the first version older than this line.
	Floor string `yaml:"floor"`

	// Blacklist lists exact versions that are never generated.
	Blacklist []string `yaml:"blacklist"`

	// KnownBad stops the scan when one of these versions is reached.
	KnownBad []string `yaml:"known_bad"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills every unset field with its built-in value.
func (c *Config) ApplyDefaults() {
	if c.Generation == "" {
		c.Generation = GenerationCurrent
	}

	if c.Source.URL == "" {
		c.Source.URL = FeedURL
		if c.Generation == GenerationLegacy {
			c.Source.URL = IndexURL
		}
	}

	if c.Source.Granularity == "" {
		c.Source.Granularity = GranularityMinor
	}

	if c.Source.Floor == "" && c.Generation == GenerationLegacy {
		c.Source.Floor = LegacyFloor
	}

	if c.TemplatesDir == "" {
		c.TemplatesDir = "templates"
	}

	if c.OutputDir == "" {
		c.OutputDir = "docker-images"
	}

	if c.BuildSystemMarker == "" {
		c.BuildSystemMarker = DefaultBuildSystemMarker
	}

	if len(c.Variants) == 0 {
		c.Variants = variant.DefaultCatalog()
	}

	if c.SkipVariants == nil {
		c.SkipVariants = variant.DefaultSkipTable()
	}
}
