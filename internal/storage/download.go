package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// MaxImageSize caps a single avatar download.
const MaxImageSize = 10 << 20

// Downloader fetches binary content over HTTP, retrying connection errors and
// 5xx responses with exponential backoff.
type Downloader struct {
	client *retryablehttp.Client
}

func NewDownloader(retries int, minWait, maxWait time.Duration) *Downloader {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = minWait
	client.RetryWaitMax = maxWait
	client.Logger = nil
	client.HTTPClient.Timeout = 30 * time.Second
	return &Downloader{client: client}
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("download image: larger than %d bytes", MaxImageSize)
	}
	return data, nil
}
