package releases_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/imagegen/internal/releases"
)

const testIndex = `<!DOCTYPE html>
<html><head><title>Index of /releases</title></head>
<body>
<table>
<tr><td><a href="ffmpeg-7.1.1.tar.xz">ffmpeg-7.1.1.tar.xz</a></td></tr>
<tr><td><a href="ffmpeg-7.1.1.tar.xz.asc">ffmpeg-7.1.1.tar.xz.asc</a></td></tr>
<tr><td><a href="ffmpeg-7.1.1.tar.bz2">ffmpeg-7.1.1.tar.bz2</a></td></tr>
<tr><td><a href="ffmpeg-7.1.tar.gz">ffmpeg-7.1.tar.gz</a></td></tr>
<tr><td><a href="/releases/ffmpeg-4.4.5.tar.bz2">ffmpeg-4.4.5.tar.bz2</a></td></tr>
<tr><td><a href="ffmpeg-snapshot.tar.bz2">ffmpeg-snapshot.tar.bz2</a></td></tr>
<tr><td><a href="ffmpeg-2.8.22.tar.bz2">ffmpeg-2.8.22.tar.bz2</a></td></tr>
<tr><td><a href="../">Parent Directory</a></td></tr>
</table>
</body></html>`

func TestParseIndex(t *testing.T) {
	t.Parallel()

	got, err := releases.ParseIndex(strings.NewReader(testIndex))
	require.NoError(t, err)
	assert.Equal(t, []string{"7.1.1", "7.1", "4.4.5", "2.8.22"}, got)
}

func TestParseIndex_Empty(t *testing.T) {
	t.Parallel()

	got, err := releases.ParseIndex(strings.NewReader("<html><body>nothing here</body></html>"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
