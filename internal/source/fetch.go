package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"

	"sdnscreen/pkg/platform/sentinel"
)

// DefaultURL is where OFAC publishes the zipped SDN list.
const DefaultURL = "https://www.treasury.gov/ofac/downloads/sdn_xml.zip"

// Fetcher downloads the SDN archive, retrying transient failures with
// exponential backoff.
type Fetcher struct {
	client          *http.Client
	logger          *slog.Logger
	maxElapsed      time.Duration
	initialInterval time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithMaxElapsed bounds the total time spent retrying.
func WithMaxElapsed(d time.Duration) FetcherOption {
	return func(f *Fetcher) { f.maxElapsed = d }
}

// WithInitialInterval sets the first backoff delay.
func WithInitialInterval(d time.Duration) FetcherOption {
	return func(f *Fetcher) { f.initialInterval = d }
}

// NewFetcher builds a Fetcher. A nil client uses http.DefaultClient.
func NewFetcher(client *http.Client, logger *slog.Logger, opts ...FetcherOption) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	f := &Fetcher{
		client:          client,
		logger:          logger,
		maxElapsed:      time.Minute,
		initialInterval: backoff.DefaultInitialInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ArchiveName is the local file name for an archive URL: the last path
// segment.
func ArchiveName(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(rawURL)
}

// Fetch downloads rawURL into dir and returns the written path. The file only
// appears once the download is complete.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, dir string) (string, error) {
	dest := filepath.Join(dir, ArchiveName(rawURL))

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = f.initialInterval
	policy.MaxElapsedTime = f.maxElapsed

	attempt := 0
	err := backoff.RetryNotify(
		func() error {
			attempt++
			return f.download(ctx, rawURL, dest)
		},
		backoff.WithContext(policy, ctx),
		func(err error, wait time.Duration) {
			f.logger.WarnContext(ctx, "sdn archive download failed, retrying",
				"url", rawURL,
				"attempt", attempt,
				"retry_in_ms", wait.Milliseconds(),
				"error", err,
			)
		},
	)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	f.logger.InfoContext(ctx, "sdn archive downloaded",
		"url", rawURL,
		"path", dest,
		"attempts", attempt,
	)
	return dest, nil
}

// download performs one attempt. Errors wrapped in backoff.Permanent stop the
// retry loop.
func (f *Fetcher) download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", sentinel.ErrUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return backoff.Permanent(fmt.Errorf("%w: status %d", sentinel.ErrNotFound, resp.StatusCode))
	default:
		return backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".sdn-download-*")
	if err != nil {
		return backoff.Permanent(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: read body: %w", sentinel.ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return backoff.Permanent(err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return backoff.Permanent(err)
	}
	return nil
}
