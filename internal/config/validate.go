package config

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/imagegen/internal/version"
)

// validGenerations are the allowed generation presets.
var validGenerations = map[string]bool{
	GenerationCurrent: true,
	GenerationLegacy:  true,
}

// validGranularities are the allowed line granularities.
var validGranularities = map[string]bool{
	GranularityMinor: true,
	GranularityMajor: true,
}

// Validate checks a Config for required fields and valid values.
func Validate(cfg *Config) error {
	if !validGenerations[cfg.Generation] {
		return fmt.Errorf("invalid generation %q, must be one of: current, legacy", cfg.Generation)
	}

	if err := validateSource(&cfg.Source); err != nil {
		return err
	}

	if len(cfg.Variants) == 0 {
		return fmt.Errorf("at least one variant is required")
	}

	seen := make(map[string]bool, len(cfg.Variants))

	for i, v := range cfg.Variants {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("variants[%d]: name is required", i)
		}

		if strings.TrimSpace(v.Parent) == "" {
			return fmt.Errorf("variants[%d] (%s): parent is required", i, v.Name)
		}

		if seen[v.Name] {
			return fmt.Errorf("variants[%d] (%s): duplicate variant name", i, v.Name)
		}

		seen[v.Name] = true
	}

	for key := range cfg.SkipVariants {
		if _, err := version.Parse(key); err != nil {
			return fmt.Errorf("skip_variants: invalid version prefix %q", key)
		}
	}

	return nil
}

func validateSource(src *Source) error {
	if strings.TrimSpace(src.URL) == "" {
		return fmt.Errorf("source.url is required")
	}

	if !validGranularities[src.Granularity] {
		return fmt.Errorf("invalid source.granularity %q, must be one of: minor, major", src.Granularity)
	}

	if src.Floor != "" {
		if _, err := version.Parse(src.Floor); err != nil {
			return fmt.Errorf("source.floor: %w", err)
		}
	}

	for i, v := range src.Blacklist {
		if _, err := version.Parse(v); err != nil {
			return fmt.Errorf("source.blacklist[%d]: %w", i, err)
		}
	}

	for i, v := range src.KnownBad {
		if _, err := version.Parse(v); err != nil {
			return fmt.Errorf("source.known_bad[%d]: %w", i, err)
		}
	}

	return nil
}
