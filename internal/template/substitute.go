package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Placeholder names used by the on-disk templates.
const (
	PlaceholderEnv      = "ENV"
	PlaceholderRun      = "RUN"
	PlaceholderVersion  = "FFMPEG_VERSION"
	PlaceholderFlags    = "FFMPEG_CONFIG_FLAGS"
	PlaceholderStages   = "STAGES"
	PlaceholderVersions = "VERSIONS"
)

// Template file names inside the templates directory.
const (
	EnvFile       = "Dockerfile-env"
	RunFile       = "Dockerfile-run"
	PipelineFile  = "gitlab-ci.template"
	JobsFile      = "azure.template"
	variantPrefix = "Dockerfile-template."
)

// MissingPlaceholderError is returned when a template lacks a required token.
type MissingPlaceholderError struct {
	Template    string
	Placeholder string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("template %s: missing placeholder %s", e.Template, e.Placeholder)
}

// Token returns the literal form of a placeholder, e.g. "%%ENV%%".
func Token(name string) string {
	return "%%" + name + "%%"
}

// Substitute replaces every %%KEY%% token in text with values[KEY]. Keys are
// applied in sorted order. Every key is required: if its token does not occur
// in text a *MissingPlaceholderError is returned.
func Substitute(name, text string, values map[string]string) (string, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		token := Token(k)
		if !strings.Contains(text, token) {
			return "", &MissingPlaceholderError{Template: name, Placeholder: token}
		}

		text = strings.ReplaceAll(text, token, values[k])
	}

	return text, nil
}

// VariantFile returns the template file name for a variant.
func VariantFile(variant string) string {
	return variantPrefix + variant
}

// Set holds every template needed for one generator run.
type Set struct {
	Env      string
	Run      string
	Pipeline string
	Jobs     string
	Variants map[string]string
}

// LoadSet reads the shared fragments, the CI wrappers and one template per
// variant from dir.
func LoadSet(dir string, variants []string) (*Set, error) {
	set := &Set{Variants: make(map[string]string, len(variants))}

	shared := []struct {
		file string
		dst  *string
	}{
		{EnvFile, &set.Env},
		{RunFile, &set.Run},
		{PipelineFile, &set.Pipeline},
		{JobsFile, &set.Jobs},
	}

	for _, s := range shared {
		content, err := readTemplate(dir, s.file)
		if err != nil {
			return nil, err
		}

		*s.dst = content
	}

	for _, v := range variants {
		content, err := readTemplate(dir, VariantFile(v))
		if err != nil {
			return nil, err
		}

		set.Variants[v] = content
	}

	return set, nil
}

// Dockerfile renders the Dockerfile for one variant: the version goes into
// the env fragment, the joined flags into the run fragment, and both
// fragments into the variant template.
func (s *Set) Dockerfile(variant, version, flags string) (string, error) {
	tmpl, ok := s.Variants[variant]
	if !ok {
		return "", fmt.Errorf("no template loaded for variant %s", variant)
	}

	run, err := Substitute(RunFile, s.Run, map[string]string{PlaceholderFlags: flags})
	if err != nil {
		return "", err
	}

	env, err := Substitute(EnvFile, s.Env, map[string]string{PlaceholderVersion: version})
	if err != nil {
		return "", err
	}

	return Substitute(VariantFile(variant), tmpl, map[string]string{
		PlaceholderEnv: env,
		PlaceholderRun: run,
	})
}

func readTemplate(dir, name string) (string, error) {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}

	return string(data), nil
}
