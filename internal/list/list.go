// Package list implements the imagegen versions command: the resolved build
// matrix of release versions and the variants generated for each.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/imagegen/internal/config"
	"github.com/donaldgifford/imagegen/internal/getter"
	"github.com/donaldgifford/imagegen/internal/releases"
	"github.com/donaldgifford/imagegen/internal/variant"
	"github.com/donaldgifford/imagegen/internal/version"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Opts configures the list operation.
type Opts struct {
	// Config supplies the source, catalog and skip table. If nil, config.Default() is used.
	Config *config.Config
	// Fetcher downloads the release list. If nil, a go-getter based fetcher is used.
	Fetcher releases.Fetcher
	// OutputFormat is "table" or "json".
	OutputFormat string
	// Writer is the output destination.
	Writer io.Writer
	// Logger for debug output.
	Logger *slog.Logger
}

// Entry is one release version in list output.
type Entry struct {
	Version  string   `json:"version"`
	Line     string   `json:"line"`
	Variants []string `json:"variants"`
	Skipped  []string `json:"skipped"`
}

// Run resolves the release versions and prints which variants each gets.
func Run(ctx context.Context, opts *Opts) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = getter.New(opts.Logger)
	}

	versions, err := releases.Resolve(ctx, &releases.Opts{
		Generation: cfg.Generation,
		Source:     cfg.Source,
		Fetcher:    fetcher,
		Logger:     opts.Logger,
	})
	if err != nil {
		return fmt.Errorf("resolving versions: %w", err)
	}

	entries := Entries(versions, cfg.Variants, cfg.SkipVariants)

	switch opts.OutputFormat {
	case FormatJSON:
		return renderJSON(opts.Writer, entries)
	default:
		return renderTable(opts.Writer, entries)
	}
}

// Entries pairs every version with its compatible and skipped variants.
func Entries(versions []version.Version, catalog variant.Catalog, skip variant.SkipTable) []Entry {
	entries := make([]Entry, 0, len(versions))

	for _, v := range versions {
		compatible := skip.Compatible(v, catalog)

		skipped := []string{}

		for _, name := range catalog.Names() {
			if !compatible.Contains(name) {
				skipped = append(skipped, name)
			}
		}

		entries = append(entries, Entry{
			Version:  v.String(),
			Line:     v.Short(),
			Variants: compatible.Names(),
			Skipped:  skipped,
		})
	}

	return entries
}

func renderTable(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "VERSION\tLINE\tVARIANTS\tSKIPPED"); err != nil {
		return err
	}

	for i := range entries {
		e := &entries[i]

		skipped := strings.Join(e.Skipped, ", ")
		if skipped == "" {
			skipped = "-"
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Version, e.Line, strings.Join(e.Variants, ", "), skipped); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}
