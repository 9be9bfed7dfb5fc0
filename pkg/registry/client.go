package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smithellis/upgrade-insight/pkg/cache"
)

// Client provides shared HTTP functionality for package index clients.
// It layers caching and retry on top of plain GET requests, and maps
// HTTP status codes to the package's sentinel errors.
//
// All methods are safe for concurrent use.
type Client struct {
	http    *http.Client
	backend cache.Cache
	ns      string
	ttl     time.Duration
}

// NewClient creates a Client that caches responses in backend under keys
// prefixed with namespace, expiring after ttl. Use [cache.NullCache] to
// disable caching.
func NewClient(backend cache.Cache, namespace string, ttl time.Duration) *Client {
	return &Client{
		http:    NewHTTPClient(),
		backend: backend,
		ns:      namespace,
		ttl:     ttl,
	}
}

// Cached retrieves a value from cache or executes fetch and caches the result.
// If refresh is true, the cache is bypassed and fetch is always called.
// The fetch function should populate v; on success, v is stored in the cache.
// Cache write failures are ignored: a broken cache degrades to direct fetches.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	key = c.ns + key
	if !refresh {
		if data, ok, _ := c.backend.Get(ctx, key); ok {
			if err := json.Unmarshal(data, v); err == nil {
				return nil
			}
		}
	}
	if err := retry(ctx, retryBaseDelay, fetch); err != nil {
		return err
	}
	if data, err := json.Marshal(v); err == nil {
		_ = c.backend.Set(ctx, key, data, c.ttl)
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &retryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &retryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
