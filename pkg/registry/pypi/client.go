package pypi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smithellis/upgrade-insight/pkg/cache"
	"github.com/smithellis/upgrade-insight/pkg/registry"
)

// PackageInfo holds the metadata this tool needs from PyPI: the latest
// published version and the one-line summary.
//
// Package names are normalized following PEP 503 (lowercase,
// underscores to hyphens). The struct is safe for concurrent reads after
// construction.
type PackageInfo struct {
	Name    string // normalized package name (never empty in valid info)
	Version string // latest published version (never empty in valid info)
	Summary string // short package description (may be empty)
}

// Client provides access to the PyPI package index API.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates a PyPI client with the given cache backend.
// Responses are cached under the "pypi:" namespace for ttl; pass a
// [cache.NullCache] to disable caching.
func NewClient(backend cache.Cache, ttl time.Duration) *Client {
	return NewClientAt("https://pypi.org/pypi", backend, ttl)
}

// NewClientAt creates a client against a non-default index endpoint, such
// as a private mirror or a test fixture. baseURL is the prefix before the
// /{name}/json path.
func NewClientAt(baseURL string, backend cache.Cache, ttl time.Duration) *Client {
	return &Client{
		Client:  registry.NewClient(backend, "pypi:", ttl),
		baseURL: baseURL,
	}
}

// FetchPackage retrieves the latest version and summary for a package.
//
// The pkg parameter is normalized automatically. If refresh is true, the
// cache is bypassed and a fresh API call is made.
//
// Returns:
//   - [registry.ErrNotFound] if the package doesn't exist
//   - [registry.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
//   - other errors for JSON decoding failures
//
// The returned PackageInfo pointer is never nil if err is nil.
func (c *Client) FetchPackage(ctx context.Context, pkg string, refresh bool) (*PackageInfo, error) {
	pkg = registry.NormalizeName(pkg)

	var info PackageInfo
	err := c.Cached(ctx, pkg, refresh, &info, func() error {
		return c.fetch(ctx, pkg, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetch(ctx context.Context, pkg string, info *PackageInfo) error {
	var data apiResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, pkg), &data); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return fmt.Errorf("%w: pypi package %s", err, pkg)
		}
		return err
	}

	*info = PackageInfo{
		Name:    registry.NormalizeName(data.Info.Name),
		Version: data.Info.Version,
		Summary: data.Info.Summary,
	}
	return nil
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Summary string `json:"summary"`
}
