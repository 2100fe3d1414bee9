package generate

import (
	"fmt"
	"path/filepath"

	"github.com/donaldgifford/imagegen/internal/config"
	"github.com/donaldgifford/imagegen/internal/flags"
	"github.com/donaldgifford/imagegen/internal/matrix"
	tmpl "github.com/donaldgifford/imagegen/internal/template"
	"github.com/donaldgifford/imagegen/internal/variant"
	"github.com/donaldgifford/imagegen/internal/version"
)

// versionPlan is everything that will be written for one version.
type versionPlan struct {
	version    version.Version
	dir        string
	compatible variant.Catalog
	outputs    []output
}

// output is one rendered Dockerfile and its CI record.
type output struct {
	path    string
	content string
	stanza  matrix.Stanza
}

func buildPlans(cfg *config.Config, set *tmpl.Set, outputDir string, versions []version.Version) ([]versionPlan, error) {
	plans := make([]versionPlan, 0, len(versions))

	for _, v := range versions {
		compatible := cfg.SkipVariants.Compatible(v, cfg.Variants)

		p := versionPlan{
			version:    v,
			dir:        VersionDir(outputDir, v),
			compatible: compatible,
		}

		for _, vr := range compatible {
			o, err := renderPair(cfg, set, outputDir, v, vr, compatible)
			if err != nil {
				return nil, fmt.Errorf("rendering %s/%s: %w", v, vr.Name, err)
			}

			p.outputs = append(p.outputs, o)
		}

		plans = append(plans, p)
	}

	return plans, nil
}

// renderPair resolves flags and renders the Dockerfile for one pair.
func renderPair(
	cfg *config.Config,
	set *tmpl.Set,
	outputDir string,
	v version.Version,
	vr variant.Variant,
	compatible variant.Catalog,
) (output, error) {
	fs := flags.Resolve(flags.Input{
		Version:           v,
		Variant:           vr,
		Template:          set.Variants[vr.Name],
		BuildSystemMarker: cfg.BuildSystemMarker,
	})

	content, err := set.Dockerfile(vr.Name, v.String(), fs.Join())
	if err != nil {
		return output{}, err
	}

	return output{
		path:    DockerfilePath(outputDir, v, vr.Name),
		content: content,
		stanza:  matrix.NewStanza(v, vr, compatible),
	}, nil
}

// VersionDir is the directory holding every variant of a release line.
func VersionDir(outputDir string, v version.Version) string {
	return filepath.Join(outputDir, v.Short())
}

// DockerfilePath is where the Dockerfile for a pair is written.
func DockerfilePath(outputDir string, v version.Version, variantName string) string {
	return filepath.Join(VersionDir(outputDir, v), variantName, DockerfileName)
}
