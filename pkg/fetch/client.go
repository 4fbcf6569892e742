package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/korjavin/botan/pkg/logger"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// UserAgent is sent with every request; the timetable site rejects bare clients
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// maxPageSize caps how much of a response body is read
const maxPageSize = 8 << 20

// StatusError is returned for non-2xx responses
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s for url: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Client downloads timetable pages
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a client with the given request timeout
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.New("fetch"),
	}
}

// Page fetches url once and returns its body decoded to UTF-8
func (c *Client) Page(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxPageSize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect page encoding")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", url)
	}

	c.logger.Debug("Fetched %s: %d bytes in %v", url, len(data), time.Since(start))
	return data, nil
}
