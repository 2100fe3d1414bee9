package releases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/imagegen/internal/config"
	"github.com/donaldgifford/imagegen/internal/releases"
)

// fakeFetcher serves canned bodies keyed by URL.
type fakeFetcher struct {
	bodies map[string]string
	calls  []string
}

func (f *fakeFetcher) Download(_ context.Context, src string) ([]byte, error) {
	f.calls = append(f.calls, src)

	body, ok := f.bodies[src]
	if !ok {
		return nil, errors.New("connection refused")
	}

	return []byte(body), nil
}

func TestResolve_Current(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	fetcher := &fakeFetcher{bodies: map[string]string{config.FeedURL: testFeed}}

	got, err := releases.Resolve(context.Background(), &releases.Opts{
		Generation: cfg.Generation,
		Source:     cfg.Source,
		Fetcher:    fetcher,
	})
	require.NoError(t, err)

	want := []string{"snapshot", "7.1.1", "7.0.2", "5.1.6", "4.3.0"}
	if diff := cmp.Diff(want, strs(got)); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{config.FeedURL}, fetcher.calls)
}

func TestResolve_Blacklist(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Source.Blacklist = []string{"7.0.2"}
	fetcher := &fakeFetcher{bodies: map[string]string{config.FeedURL: testFeed}}

	got, err := releases.Resolve(context.Background(), &releases.Opts{
		Generation: cfg.Generation,
		Source:     cfg.Source,
		Fetcher:    fetcher,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshot", "7.1.1", "5.1.6", "4.3.0"}, strs(got))
}

func TestResolve_Legacy(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Generation: config.GenerationLegacy}
	cfg.ApplyDefaults()

	index := `<html><body>
<a href="ffmpeg-7.1.1.tar.bz2">x</a>
<a href="ffmpeg-7.1.tar.bz2">x</a>
<a href="ffmpeg-4.4.5.tar.bz2">x</a>
<a href="ffmpeg-4.4.4.tar.bz2">x</a>
<a href="ffmpeg-2.8.22.tar.bz2">x</a>
<a href="ffmpeg-2.7.7.tar.bz2">x</a>
<a href="ffmpeg-1.2.12.tar.bz2">x</a>
</body></html>`
	fetcher := &fakeFetcher{bodies: map[string]string{config.IndexURL: index}}

	got, err := releases.Resolve(context.Background(), &releases.Opts{
		Generation: cfg.Generation,
		Source:     cfg.Source,
		Fetcher:    fetcher,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshot", "7.1.1", "4.4.5", "2.8.22"}, strs(got))
}

func TestResolve_FetchError(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	_, err := releases.Resolve(context.Background(), &releases.Opts{
		Generation: cfg.Generation,
		Source:     cfg.Source,
		Fetcher:    &fakeFetcher{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching releases")
}

func TestResolve_MalformedVersion(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	feed := `[{"cycle":"8.0","latest":"8.0-dev","eol":false}]`

	_, err := releases.Resolve(context.Background(), &releases.Opts{
		Generation: cfg.Generation,
		Source:     cfg.Source,
		Fetcher:    &fakeFetcher{bodies: map[string]string{config.FeedURL: feed}},
	})
	require.Error(t, err)

	var perr *releases.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "8.0-dev", perr.Input)
}
