// Package releases resolves the upstream release versions to generate images for.
package releases

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/imagegen/internal/config"
	"github.com/donaldgifford/imagegen/internal/version"
)

// Fetcher downloads a URL and returns its body.
type Fetcher interface {
	Download(ctx context.Context, src string) ([]byte, error)
}

// Opts configures version resolution.
type Opts struct {
	// Generation selects the feed format: config.GenerationCurrent or config.GenerationLegacy.
	Generation string

	// Source holds the URL and the reduction rules.
	Source config.Source

	// Fetcher performs the single network call.
	Fetcher Fetcher

	// Logger for debug output.
	Logger *slog.Logger
}

// ParseError reports a feed entry that isn't a usable version.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed release entry %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Resolve fetches the release list and returns the versions to generate,
// newest first, with the snapshot pseudo-version always leading.
func Resolve(ctx context.Context, opts *Opts) ([]version.Version, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	data, err := opts.Fetcher.Download(ctx, opts.Source.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching releases: %w", err)
	}

	var raw []string

	switch opts.Generation {
	case config.GenerationLegacy:
		raw, err = ParseIndex(bytes.NewReader(data))
	default:
		raw, err = ParseFeed(data)
	}

	if err != nil {
		return nil, err
	}

	logger.Debug("fetched releases", "url", opts.Source.URL, "count", len(raw))

	reduceOpts, blacklist, err := buildRules(&opts.Source)
	if err != nil {
		return nil, err
	}

	versions := make([]version.Version, 0, len(raw))

	for _, s := range raw {
		v, err := version.Parse(Normalize(s))
		if err != nil {
			return nil, &ParseError{Input: s, Err: err}
		}

		if containsVersion(blacklist, v) {
			logger.Debug("skipping blacklisted release", "version", v)

			continue
		}

		versions = append(versions, v)
	}

	reduced := Reduce(versions, reduceOpts)

	return append([]version.Version{version.Snapshot()}, reduced...), nil
}

func buildRules(src *config.Source) (ReduceOpts, []version.Version, error) {
	opts := ReduceOpts{Granularity: src.Granularity}

	if src.Floor != "" {
		floor, err := version.Parse(src.Floor)
		if err != nil {
			return opts, nil, fmt.Errorf("parsing floor: %w", err)
		}

		opts.Floor = &floor
	}

	knownBad, err := parseAll(src.KnownBad)
	if err != nil {
		return opts, nil, fmt.Errorf("parsing known_bad: %w", err)
	}

	opts.KnownBad = knownBad

	blacklist, err := parseAll(src.Blacklist)
	if err != nil {
		return opts, nil, fmt.Errorf("parsing blacklist: %w", err)
	}

	return opts, blacklist, nil
}

func parseAll(list []string) ([]version.Version, error) {
	out := make([]version.Version, 0, len(list))

	for _, s := range list {
		v, err := version.Parse(s)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

func containsVersion(list []version.Version, v version.Version) bool {
	for _, item := range list {
		if item.Equal(v) {
			return true
		}
	}

	return false
}
