package measure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/dennisklein/sizefmt/internal/size"
)

// NewClient returns a retrying HTTP client that does not log.
func NewClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = 3

	return client
}

// IsURL reports whether target should be measured with URL instead of Path.
func IsURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// URL downloads the resource at url, discarding the body, and reports
// the number of bytes received. A progress bar is written to progress
// when it is non-nil and the server announces a content length.
func URL(ctx context.Context, client *retryablehttp.Client, url string, progress io.Writer, conv *size.Converter) (entry Entry, err error) {
	entry = Entry{Name: url}

	if client == nil {
		client = NewClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entry, err
	}

	resp, err := client.StandardClient().Do(req)
	if err != nil {
		return entry, err
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return entry, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var reader io.Reader = resp.Body

	var progReader *ProgressReader

	if progress != nil && resp.ContentLength > 0 {
		progReader = NewProgressReader(resp.Body, resp.ContentLength, progress, conv)
		reader = progReader
	}

	n, err := io.Copy(io.Discard, reader)
	if err != nil {
		return entry, fmt.Errorf("failed to read body: %w", err)
	}

	if progReader != nil {
		progReader.Finish()
	}

	entry.Size = n
	entry.Files = 1

	return entry, nil
}
