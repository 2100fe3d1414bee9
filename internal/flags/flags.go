// Package flags resolves the FFmpeg configure flags for a release and build variant.
package flags

import (
	"slices"
	"strings"

	"github.com/donaldgifford/imagegen/internal/variant"
	"github.com/donaldgifford/imagegen/internal/version"
)

// Separator joins flags into a multi-line shell command.
const Separator = " \\\n        "

// Parent groups that change the flag set.
const (
	ParentNvidia = "nvidia"
	ParentVAAPI  = "vaapi"
)

// baseFlags are enabled for every release and variant.
var baseFlags = []string{
	"--disable-debug",
	"--disable-doc",
	"--disable-ffplay",
	"--enable-fontconfig",
	"--enable-gpl",
	"--enable-libass",
	"--enable-libbluray",
	"--enable-libfdk_aac",
	"--enable-libfreetype",
	"--enable-libmp3lame",
	"--enable-libopencore-amrnb",
	"--enable-libopencore-amrwb",
	"--enable-libopus",
	"--enable-libtheora",
	"--enable-libvidstab",
	"--enable-libvorbis",
	"--enable-libvpx",
	"--enable-libwebp",
	"--enable-libx264",
	"--enable-libx265",
	"--enable-libxvid",
	"--enable-libzimg",
	"--enable-libzmq",
	"--enable-nonfree",
	"--enable-openssl",
	"--enable-postproc",
	"--enable-shared",
	"--enable-small",
	"--enable-version3",
	"--extra-libs=-ldl",
	`--prefix="${PREFIX}"`,
}

// lastOpenJPEGLess is the newest line that cannot build against OpenJPEG 2.1.
var lastOpenJPEGLess = version.MustParse("2.8")

// Input is everything the resolver looks at for one (version, variant) pair.
type Input struct {
	Version version.Version
	Variant variant.Variant

	// Template is the raw variant Dockerfile template.
	Template string

	// BuildSystemMarker must appear in Template for libvmaf to be enabled.
	BuildSystemMarker string
}

// FlagSet is a sorted, duplicate-free list of configure flags.
type FlagSet []string

// Join renders the set as continuation lines for a RUN instruction.
func (f FlagSet) Join() string {
	return strings.Join(f, Separator)
}

// Contains reports whether flag is in the set.
func (f FlagSet) Contains(flag string) bool {
	_, found := slices.BinarySearch(f, flag)

	return found
}

// builder accumulates flags and path fragments for one resolution.
type builder struct {
	flags   []string
	cflags  []string
	ldflags []string
}

func (b *builder) add(flags ...string) {
	for _, f := range flags {
		if !slices.Contains(b.flags, f) {
			b.flags = append(b.flags, f)
		}
	}
}

// Resolve builds the configure flags for in. Rules are evaluated in a fixed
// order; the output is sorted so the order only matters for rules that look
// at state earlier rules produced.
func Resolve(in Input) FlagSet {
	v := in.Version
	parent := in.Variant.Parent

	b := &builder{
		cflags:  []string{"-I${PREFIX}/include"},
		ldflags: []string{"-L${PREFIX}/lib"},
	}
	b.add(baseFlags...)

	// OpenJPEG 2.1 is not supported by 2.8 and older.
	if v.CompareLine(lastOpenJPEGLess) > 0 {
		b.add("--enable-libopenjpeg", "--enable-libkvazaar")
	}

	if v.AtLeast("3") {
		b.add("--enable-libaom", "--extra-libs=-lpthread")
	}

	// libsrt is supported from 4.0.
	if v.AtLeast("4") {
		b.add("--enable-libsrt")
	}

	// libaribb24 is supported from 4.2.
	if v.AtLeast("4.2") {
		b.add("--enable-libaribb24")
	}

	// libvmaf needs a template that builds dependencies with the newer build system.
	if hasMarker(in.Template, in.BuildSystemMarker) && v.AtLeast("4.3") {
		b.add("--enable-libvmaf")
	}

	if v.AtLeast("3") && parent == ParentVAAPI {
		b.add("--enable-vaapi")
	}

	// libavresample was removed in 5.0.
	if !v.AtLeast("5") {
		b.add("--enable-avresample")
	}

	// Search paths apply to every nvidia build; only the CUDA features are gated.
	if parent == ParentNvidia {
		b.cflags = append(b.cflags, "-I${PREFIX}/include/ffnvcodec", "-I/usr/local/cuda/include/")
		b.ldflags = append(b.ldflags, "-L/usr/local/cuda/lib64", "-L/usr/local/cuda/lib32/")
		b.add("--enable-nvenc")

		if v.AtLeast("4") {
			b.add("--enable-cuda", "--enable-cuvid", "--enable-libnpp")
		}
	}

	b.add(
		`--extra-cflags="`+strings.Join(b.cflags, " ")+`"`,
		`--extra-ldflags="`+strings.Join(b.ldflags, " ")+`"`,
	)

	out := FlagSet(slices.Clone(b.flags))
	slices.Sort(out)

	return out
}

// hasMarker reports whether marker occurs in tmpl after its first byte.
func hasMarker(tmpl, marker string) bool {
	if marker == "" {
		return false
	}

	return strings.Index(tmpl, marker) > 0
}
