// Package version parses upstream release versions and orders them, including
// the "snapshot" pseudo-version that stands for the development head.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver"
)

// SnapshotName is the literal used for the unreleased development head.
const SnapshotName = "snapshot"

// Version is a parsed release version or the snapshot sentinel.
// Use Parse, MustParse or Snapshot. The zero value is neither: it reports
// IsZero, prints as "" and orders before every release.
type Version struct {
	raw string
	sv  *semver.Version
}

// Parse parses a dotted numeric version string or "snapshot".
func Parse(s string) (Version, error) {
	if s == SnapshotName {
		return Snapshot(), nil
	}

	// Release names are bare numbers; a "v" prefix would leak into paths and skip keys.
	if strings.HasPrefix(s, "v") || strings.HasPrefix(s, "V") {
		return Version{}, fmt.Errorf("parsing version %q: unexpected \"v\" prefix", s)
	}

	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("parsing version %q: %w", s, err)
	}

	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return Version{}, fmt.Errorf("parsing version %q: only dotted numeric versions are supported", s)
	}

	return Version{raw: s, sv: sv}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Snapshot returns the development head pseudo-version.
func Snapshot() Version {
	return Version{raw: SnapshotName}
}

// IsSnapshot reports whether v is the development head.
func (v Version) IsSnapshot() bool {
	return v.raw == SnapshotName && v.sv == nil
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v.raw == "" && v.sv == nil
}

// rank orders the three kinds of Version: zero, release, snapshot.
func (v Version) rank() int64 {
	switch {
	case v.IsSnapshot():
		return 2
	case v.sv == nil:
		return 0
	default:
		return 1
	}
}

// String returns the version as it was given to Parse.
func (v Version) String() string {
	return v.raw
}

// Major returns the major component. It is zero for snapshot.
func (v Version) Major() int64 {
	if v.sv == nil {
		return 0
	}

	return v.sv.Major()
}

// Minor returns the minor component. It is zero for snapshot.
func (v Version) Minor() int64 {
	if v.sv == nil {
		return 0
	}

	return v.sv.Minor()
}

// Short returns the release line, "major.minor", or "snapshot".
func (v Version) Short() string {
	if v.sv == nil {
		return v.raw
	}

	return fmt.Sprintf("%d.%d", v.sv.Major(), v.sv.Minor())
}

// MajorString returns the major component as a string, or "snapshot".
func (v Version) MajorString() string {
	if v.sv == nil {
		return v.raw
	}

	return strconv.FormatInt(v.sv.Major(), 10)
}

// Compare returns -1, 0 or 1 when v is older than, equal to or newer than o.
// Snapshot is newer than every release.
func (v Version) Compare(o Version) int {
	if v.rank() != 1 || o.rank() != 1 {
		return cmpInt(v.rank(), o.rank())
	}

	return v.sv.Compare(o.sv)
}

// CompareLine is like Compare but only looks at major.minor.
func (v Version) CompareLine(o Version) int {
	if v.rank() != 1 || o.rank() != 1 {
		return cmpInt(v.rank(), o.rank())
	}

	if c := cmpInt(v.sv.Major(), o.sv.Major()); c != 0 {
		return c
	}

	return cmpInt(v.sv.Minor(), o.sv.Minor())
}

// CompareMajor is like Compare but only looks at the major component.
func (v Version) CompareMajor(o Version) int {
	if v.rank() != 1 || o.rank() != 1 {
		return cmpInt(v.rank(), o.rank())
	}

	return cmpInt(v.sv.Major(), o.sv.Major())
}

// AtLeast reports whether the release line of v is line or newer.
// line is a "major" or "major.minor" string such as "4" or "4.2".
func (v Version) AtLeast(line string) bool {
	return v.CompareLine(MustParse(line)) >= 0
}

// Less reports whether v is older than o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Equal reports whether v and o denote the same version.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
