package releases

import (
	"slices"
	"strings"

	"github.com/donaldgifford/imagegen/internal/config"
	"github.com/donaldgifford/imagegen/internal/version"
)

// ReduceOpts controls how the release list is thinned out.
type ReduceOpts struct {
	// Granularity is config.GranularityMinor or config.GranularityMajor.
	Granularity string

	// Floor stops the scan at the first version on an older line. Nil means no floor.
	Floor *version.Version

	// KnownBad stops the scan when one of these versions is reached.
	KnownBad []version.Version
}

// Normalize fixes a feed artifact where the patch component reads "0.0":
// "4.4.0.0" becomes "4.4.0".
func Normalize(s string) string {
	parts := strings.Split(s, ".")
	if len(parts) == 4 && parts[2] == "0" && parts[3] == "0" {
		return strings.Join(parts[:3], ".")
	}

	return s
}

// Reduce keeps the newest release of every line. Scanning newest to oldest,
// a version is kept only when its line is strictly older than the line of the
// last kept version. The scan stops at the first version below the floor or
// at a known-bad version.
func Reduce(versions []version.Version, opts ReduceOpts) []version.Version {
	sorted := slices.Clone(versions)
	slices.SortStableFunc(sorted, func(a, b version.Version) int {
		return b.Compare(a)
	})

	compareLine := version.Version.CompareLine
	if opts.Granularity == config.GranularityMajor {
		compareLine = version.Version.CompareMajor
	}

	var kept []version.Version

	for _, v := range sorted {
		if v.IsSnapshot() {
			continue
		}

		if opts.Floor != nil && v.CompareLine(*opts.Floor) < 0 {
			break
		}

		if containsVersion(opts.KnownBad, v) {
			break
		}

		if len(kept) == 0 || compareLine(v, kept[len(kept)-1]) < 0 {
			kept = append(kept, v)
		}
	}

	return kept
}
