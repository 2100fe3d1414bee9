package variant

import (
	"slices"
	"sort"
	"strings"

	"github.com/donaldgifford/imagegen/internal/version"
)

// SkipTable maps a version prefix such as "4.3" to the variant names that
// release line cannot be built for.
type SkipTable map[string][]string

// DefaultSkipTable returns the stock exception table.
func DefaultSkipTable() SkipTable {
	return SkipTable{
		"2.8": {"alpine313", "nvidia2004", "vaapi2004", "scratch313"},
		"4.2": {"alpine313"},
		"4.3": {"alpine313", "scratch313"},
		"5.1": {"scratch313"},
		"6.0": {"alpine313", "nvidia2004"},
		"6.1": {"alpine313", "nvidia2004", "scratch313"},
	}
}

// Match returns the key that applies to v, if any. Keys match on whole dotted
// components, so "4.2" matches "4.2" and "4.2.9" but not "4.20". When several
// keys match, the most specific one wins: longest first, then the
// lexically greatest.
func (t SkipTable) Match(v version.Version) (string, bool) {
	s := v.String()

	for _, key := range t.orderedKeys() {
		if s == key || strings.HasPrefix(s, key+".") {
			return key, true
		}
	}

	return "", false
}

// Skipped returns the variant names excluded for v.
func (t SkipTable) Skipped(v version.Version) []string {
	key, ok := t.Match(v)
	if !ok {
		return nil
	}

	return t[key]
}

// Compatible returns the variants of c that can be built for v, in catalog order.
func (t SkipTable) Compatible(v version.Version, c Catalog) Catalog {
	skipped := t.Skipped(v)

	compatible := make(Catalog, 0, len(c))
	for _, variant := range c {
		if !slices.Contains(skipped, variant.Name) {
			compatible = append(compatible, variant)
		}
	}

	return compatible
}

func (t SkipTable) orderedKeys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}

		return keys[i] > keys[j]
	})

	return keys
}
