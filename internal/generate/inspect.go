package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/donaldgifford/imagegen/internal/config"
	"github.com/donaldgifford/imagegen/internal/flags"
	tmpl "github.com/donaldgifford/imagegen/internal/template"
	"github.com/donaldgifford/imagegen/internal/variant"
	"github.com/donaldgifford/imagegen/internal/version"
)

// FlagsOpts configures a single flag resolution.
type FlagsOpts struct {
	Config       *config.Config
	TemplatesDir string
	Version      string
	Variant      string
}

// FlagsResult is the resolved flag set for one pair.
type FlagsResult struct {
	Version    string
	Variant    variant.Variant
	Compatible bool
	Flags      flags.FlagSet
}

// ResolveFlags resolves the configure flags for one (version, variant) pair
// without fetching anything. The variant template is read to decide on
// template-dependent flags; a missing template counts as empty.
func ResolveFlags(opts *FlagsOpts) (*FlagsResult, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	v, err := version.Parse(opts.Version)
	if err != nil {
		return nil, err
	}

	vr, ok := cfg.Variants.Find(opts.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q", opts.Variant)
	}

	templatesDir := firstNonEmpty(opts.TemplatesDir, cfg.TemplatesDir)
	path := filepath.Join(templatesDir, tmpl.VariantFile(vr.Name))

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	return &FlagsResult{
		Version:    v.String(),
		Variant:    vr,
		Compatible: cfg.SkipVariants.Compatible(v, cfg.Variants).Contains(vr.Name),
		Flags: flags.Resolve(flags.Input{
			Version:           v,
			Variant:           vr,
			Template:          string(content),
			BuildSystemMarker: cfg.BuildSystemMarker,
		}),
	}, nil
}
