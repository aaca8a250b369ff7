// Package httppost sends request bodies to HTTP servers with POST and returns
// the response bodies.
package httppost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sarchlab/clarus/list"
)

// DefaultTimeout is the default timeout of a Client.
const DefaultTimeout = 30 * time.Second

// ErrStatus is returned when the server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected HTTP status")

// Client posts data to HTTP servers.
type Client struct {
	httpClient *http.Client
	scheme     string
}

// NewClient creates a client that uses plain HTTP and DefaultTimeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		scheme:     "http",
	}
}

// WithTimeout sets the timeout of every request.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithScheme sets the URL scheme, "http" or "https".
func (c *Client) WithScheme(scheme string) *Client {
	c.scheme = scheme
	return c
}

// Post sends data to host at path with the given content type.
func (c *Client) Post(
	ctx context.Context,
	host, path, contentType string,
	data *list.List[byte],
) (string, error) {
	return c.post(ctx, host, path, contentType, bytes.NewReader(data.Slice()))
}

// PostFile sends the content of a file to host at path with the given content
// type.
func (c *Client) PostFile(
	ctx context.Context,
	host, path, contentType, file string,
) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return c.post(ctx, host, path, contentType, f)
}

func (c *Client) url(host, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.scheme + "://" + host + path
}

func (c *Client) post(
	ctx context.Context,
	host, path, contentType string,
	body io.Reader,
) (string, error) {
	url := c.url(host, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("posting to %s: %w", url, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return string(content), fmt.Errorf("%w: %s from %s", ErrStatus, resp.Status, url)
	}

	return string(content), nil
}

var defaultClient = NewClient()

// Post sends data with the default client.
func Post(
	ctx context.Context,
	host, path, contentType string,
	data *list.List[byte],
) (string, error) {
	return defaultClient.Post(ctx, host, path, contentType, data)
}

// PostFile sends a file with the default client.
func PostFile(
	ctx context.Context,
	host, path, contentType, file string,
) (string, error) {
	return defaultClient.PostFile(ctx, host, path, contentType, file)
}
