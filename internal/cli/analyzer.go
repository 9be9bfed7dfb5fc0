package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/smithellis/upgrade-insight/pkg/cache"
	"github.com/smithellis/upgrade-insight/pkg/registry/pypi"
	"github.com/smithellis/upgrade-insight/pkg/report"
)

// analyzerOpts holds the flags shared by the serve and check commands:
// where the manifest lives, how to fetch, and how to cache.
type analyzerOpts struct {
	manifest   string
	sequential bool
	refresh    bool
	cacheDir   string
	cacheTTL   time.Duration
	redisAddr  string
	noCache    bool
}

// register adds the shared flags to cmd.
func (o *analyzerOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.manifest, "manifest", "m", "pyproject.toml", "path to the dependency manifest")
	cmd.Flags().BoolVar(&o.sequential, "sequential", false, "fetch index data one package at a time")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().StringVar(&o.cacheDir, "cache-dir", "", "response cache directory (default: user cache dir)")
	cmd.Flags().DurationVar(&o.cacheTTL, "cache-ttl", 12*time.Hour, "how long index responses stay cached")
	cmd.Flags().StringVar(&o.redisAddr, "redis", "", "cache responses in Redis at host:port instead of on disk")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable response caching entirely")
}

// build constructs the analyzer and its cache backend. The returned
// closer releases the backend and must be called when the command exits.
func (o *analyzerOpts) build(ctx context.Context, logger *log.Logger) (*report.Analyzer, func(), error) {
	backend, err := o.backend(ctx)
	if err != nil {
		return nil, nil, err
	}

	a := &report.Analyzer{
		Manifest:   o.manifest,
		Client:     pypi.NewClient(backend, o.cacheTTL),
		Logger:     logger,
		Sequential: o.sequential,
		Refresh:    o.refresh,
	}
	return a, func() { _ = backend.Close() }, nil
}

func (o *analyzerOpts) backend(ctx context.Context) (cache.Cache, error) {
	switch {
	case o.noCache:
		return cache.NewNullCache(), nil
	case o.redisAddr != "":
		backend, err := cache.NewRedisCache(ctx, o.redisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect to redis %s: %w", o.redisAddr, err)
		}
		return backend, nil
	default:
		dir := o.cacheDir
		if dir == "" {
			var err error
			dir, err = defaultCacheDir()
			if err != nil {
				return nil, err
			}
		}
		backend, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
		}
		return backend, nil
	}
}

// defaultCacheDir returns the per-user cache directory for this tool.
func defaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "upgrade-insight"), nil
}
