// Package generate orchestrates a full imagegen run: resolve releases, render
// one Dockerfile per compatible (version, variant) pair and write the CI files.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/donaldgifford/imagegen/internal/config"
	"github.com/donaldgifford/imagegen/internal/getter"
	"github.com/donaldgifford/imagegen/internal/matrix"
	"github.com/donaldgifford/imagegen/internal/releases"
	tmpl "github.com/donaldgifford/imagegen/internal/template"
	"github.com/donaldgifford/imagegen/internal/version"
)

// Output file names written at the root of the output directory.
const (
	PipelineOutput = "gitlab-ci.yml"
	JobsOutput     = "azure-jobs.yml"
	DockerfileName = "Dockerfile"
)

// Opts holds the options for a generator run.
type Opts struct {
	// Config is the generator configuration. If nil, config.Default() is used.
	Config *config.Config

	// OutputDir overrides Config.OutputDir when set.
	OutputDir string

	// TemplatesDir overrides Config.TemplatesDir when set.
	TemplatesDir string

	// DryRun resolves and renders everything but writes nothing.
	DryRun bool

	// Fetcher downloads the release list. If nil, a go-getter based fetcher is used.
	Fetcher releases.Fetcher

	// Logger for debug output.
	Logger *slog.Logger
}

// Result holds the output of a successful run.
type Result struct {
	// OutputDir is the directory that was (or, on a dry run, would be) written.
	OutputDir string

	// Versions are the resolved versions, newest first.
	Versions []string

	// Dockerfiles are the paths of the rendered Dockerfiles.
	Dockerfiles []string

	// Removed are stale variant directories that were deleted.
	Removed []string

	// Stanzas are the CI records, one per Dockerfile.
	Stanzas []matrix.Stanza
}

// Run executes the generator.
func Run(ctx context.Context, opts *Opts) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	outputDir := firstNonEmpty(opts.OutputDir, cfg.OutputDir)
	templatesDir := firstNonEmpty(opts.TemplatesDir, cfg.TemplatesDir)

	// 1. Load every template up front so a missing file fails before the fetch.
	set, err := tmpl.LoadSet(templatesDir, cfg.Variants.Names())
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	// 2. Resolve versions.
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = getter.New(logger)
	}

	versions, err := releases.Resolve(ctx, &releases.Opts{
		Generation: cfg.Generation,
		Source:     cfg.Source,
		Fetcher:    fetcher,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving versions: %w", err)
	}

	logger.Debug("resolved versions", "count", len(versions))

	// 3. Render every pair before touching the output directory.
	plans, err := buildPlans(cfg, set, outputDir, versions)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: outputDir, Versions: versionStrings(versions)}

	for _, p := range plans {
		for _, o := range p.outputs {
			result.Dockerfiles = append(result.Dockerfiles, o.path)
			result.Stanzas = append(result.Stanzas, o.stanza)
		}
	}

	// 4. Serialize the CI files.
	formatter := matrix.NewFormatter()

	pipeline, err := formatter.Pipeline(cfg.Variants.Parents(), result.Stanzas, set.Pipeline)
	if err != nil {
		return nil, fmt.Errorf("formatting pipeline: %w", err)
	}

	jobs, err := formatter.Jobs(result.Stanzas, set.Jobs)
	if err != nil {
		return nil, fmt.Errorf("formatting jobs: %w", err)
	}

	if opts.DryRun {
		logger.Info("dry run, nothing written", "dockerfiles", len(result.Dockerfiles))

		return result, nil
	}

	// 5. Clean stale variants and write Dockerfiles, one version at a time.
	for _, p := range plans {
		removed, err := removeStale(p.dir, p.compatible.Names(), logger)
		if err != nil {
			return nil, err
		}

		result.Removed = append(result.Removed, removed...)

		for _, o := range p.outputs {
			if err := writeFile(o.path, o.content); err != nil {
				return nil, err
			}
		}
	}

	// 6. Write the CI files.
	if err := writeFile(filepath.Join(outputDir, PipelineOutput), pipeline); err != nil {
		return nil, err
	}

	if err := writeFile(filepath.Join(outputDir, JobsOutput), jobs); err != nil {
		return nil, err
	}

	logger.Info("images generated", "dir", outputDir, "versions", len(versions), "dockerfiles", len(result.Dockerfiles))

	return result, nil
}

// writeFile writes content to path, creating parent directories.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func versionStrings(vs []version.Version) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.String())
	}

	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
