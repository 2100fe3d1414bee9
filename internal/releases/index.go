package releases

import (
	"io"
	"regexp"

	"golang.org/x/net/html"
)

// reReleaseFile matches source tarballs on the release index. Signatures and
// the rolling snapshot tarball are left out.
var reReleaseFile = regexp.MustCompile(`(?:^|/)ffmpeg-(\d+(?:\.\d+)+)\.tar\.(?:bz2|gz|xz)$`)

// ParseIndex walks an HTML release index and returns the version of every
// release tarball linked from it, deduplicated, in document order.
func ParseIndex(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, &ParseError{Input: "release index", Err: err}
	}

	seen := make(map[string]bool)
	var versions []string

	collectReleases(doc, seen, &versions)

	return versions, nil
}

func collectReleases(n *html.Node, seen map[string]bool, versions *[]string) {
	if n.Type == html.ElementNode && n.Data == "a" {
		for _, a := range n.Attr {
			if a.Key != "href" {
				continue
			}

			m := reReleaseFile.FindStringSubmatch(a.Val)
			if m == nil || seen[m[1]] {
				continue
			}

			seen[m[1]] = true
			*versions = append(*versions, m[1])
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectReleases(c, seen, versions)
	}
}
