package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/nao1215/cpgannot/internal/annotation"
)

// DefaultTimeout bounds one manifest transfer. The largest manifest
// (EPICv2) is around 80MB compressed, so ten minutes covers slow links
// without letting a stalled transfer hang forever.
const DefaultTimeout = 10 * time.Minute

// Downloader fetches annotation manifests into a cache directory.
//
// Design decision: the http.Client lives on the struct rather than being
// passed per call so timeout configuration is applied once and the same
// client serves every transfer.
type Downloader struct {
	// client is the HTTP client used for all transfers.
	client *http.Client

	// cacheDir is where downloaded manifests are stored.
	cacheDir string

	// skipExisting reuses an already-downloaded manifest when the
	// destination file exists. There is no checksum; existence is the
	// only criterion.
	skipExisting bool

	// showProgress renders a byte progress bar on stderr during the
	// transfer.
	showProgress bool

	// logger receives download progress messages. Never nil.
	logger *slog.Logger
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the per-transfer timeout. Non-positive values are
// ignored and the default kept.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		if d > 0 {
			dl.client.Timeout = d
		}
	}
}

// WithSkipExisting controls whether an existing cached file short-circuits
// the download. Disabling it re-downloads unconditionally.
func WithSkipExisting(skip bool) Option {
	return func(dl *Downloader) {
		dl.skipExisting = skip
	}
}

// WithProgress controls the stderr progress bar.
func WithProgress(show bool) Option {
	return func(dl *Downloader) {
		dl.showProgress = show
	}
}

// WithLogger sets the logger used for download messages.
func WithLogger(logger *slog.Logger) Option {
	return func(dl *Downloader) {
		if logger != nil {
			dl.logger = logger
		}
	}
}

// New creates a Downloader that stores manifests under cacheDir.
func New(cacheDir string, opts ...Option) *Downloader {
	dl := &Downloader{
		client:       &http.Client{Timeout: DefaultTimeout},
		cacheDir:     cacheDir,
		skipExisting: true,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(dl)
	}
	return dl
}

// Fetch downloads the annotation manifest for the given array type and
// returns the local path. When the cached file already exists and
// skip-existing is enabled, the transfer is skipped and the cached path
// returned as-is.
func (dl *Downloader) Fetch(ctx context.Context, arrayType annotation.ArrayType) (string, error) {
	return dl.FetchURL(ctx, arrayType.SourceURL(), arrayType.CacheFileName())
}

// FetchURL downloads url to fileName under the cache directory. It is the
// transport behind Fetch and is exported for tests that substitute an
// httptest server for the fixed manifest URLs.
func (dl *Downloader) FetchURL(ctx context.Context, url, fileName string) (string, error) {
	dest := filepath.Join(dl.cacheDir, fileName)

	if dl.skipExisting {
		if _, err := os.Stat(dest); err == nil {
			dl.logger.Info("annotation file already exists, skipping download", "path", dest)
			return dest, nil
		}
	}

	if err := os.MkdirAll(dl.cacheDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	dl.logger.Info("downloading annotation file", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := dl.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to download %s: unexpected status %s", url, resp.Status)
	}

	// Stream to a temporary name and rename on success so an interrupted
	// transfer never leaves a truncated file under the cached name.
	part := dest + ".part"
	f, err := os.OpenFile(part, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Path derives from the cache dir
	if err != nil {
		return "", fmt.Errorf("failed to create download file: %w", err)
	}

	var w io.Writer = f
	if dl.showProgress {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
		w = io.MultiWriter(f, bar)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		f.Close()
		os.Remove(part) //nolint:errcheck // Best effort cleanup
		return "", fmt.Errorf("failed to write download file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(part) //nolint:errcheck // Best effort cleanup
		return "", fmt.Errorf("failed to close download file: %w", err)
	}

	if err := os.Rename(part, dest); err != nil {
		return "", fmt.Errorf("failed to finalize download file: %w", err)
	}

	dl.logger.Info("annotation file downloaded", "path", dest)
	return dest, nil
}
