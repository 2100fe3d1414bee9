// Package getter wraps hashicorp/go-getter for downloading the upstream release list.
package getter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter/v2"
)

// downloadName is the file name used inside the scratch directory.
const downloadName = "download"

// Getter wraps go-getter to fetch single files over HTTP and other protocols.
type Getter struct {
	client *getter.Client
	logger *slog.Logger
}

// New creates a Getter with default configuration.
func New(logger *slog.Logger) *Getter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Getter{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// FetchFile downloads a single file from src to dest.
func (g *Getter) FetchFile(ctx context.Context, src, dest string) error {
	g.logger.Debug("fetching file", "src", src, "dest", dest)

	req := &getter.Request{
		Src:             src,
		Dst:             dest,
		GetMode:         getter.ModeFile,
		DisableSymlinks: true,
	}

	_, err := g.client.Get(ctx, req)
	if err != nil {
		return fmt.Errorf("fetching file %s: %w", src, err)
	}

	return nil
}

// Download fetches src into a scratch directory and returns its content.
// Nothing is kept on disk afterwards.
func (g *Getter) Download(ctx context.Context, src string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "imagegen-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}

	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			g.logger.Warn("failed to remove scratch directory", "dir", dir, "err", err)
		}
	}()

	dest := filepath.Join(dir, downloadName)
	if err := g.FetchFile(ctx, src, dest); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(dest))
	if err != nil {
		return nil, fmt.Errorf("reading downloaded %s: %w", src, err)
	}

	g.logger.Debug("downloaded", "src", src, "bytes", len(data))

	return data, nil
}
