package report

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/smithellis/upgrade-insight/pkg/manifest"
	"github.com/smithellis/upgrade-insight/pkg/registry/pypi"
)

// Analyzer turns a manifest into a slice of per-package reports by
// resolving each declared constraint and fetching the latest version from
// PyPI.
//
// The zero value is not usable; populate Manifest, Client, and Logger.
// An Analyzer is safe for concurrent use: it holds no mutable state.
type Analyzer struct {
	Manifest   string       // path to pyproject.toml
	Client     *pypi.Client // package index client
	Logger     *log.Logger
	Sequential bool // one index round trip at a time instead of fan-out
	Refresh    bool // bypass the response cache
}

// Analyze produces one report per manifest declaration, in manifest order.
//
// A manifest read or parse failure is the only error returned. Every other
// failure is isolated to its dependency: a failed index lookup is logged
// and that record keeps an empty latest version and TierNone; sibling
// fetches are unaffected.
//
// In the default concurrent mode all lookups run at once, one goroutine
// per dependency. Each goroutine writes only its own result slot, so no
// locking is needed; Analyze returns after all of them finish.
func (a *Analyzer) Analyze(ctx context.Context) ([]Report, error) {
	logger := a.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("run", shortRunID())

	decls, err := manifest.Load(a.Manifest, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded manifest", "path", a.Manifest, "dependencies", len(decls))

	reports := make([]Report, len(decls))
	if a.Sequential {
		for i, d := range decls {
			reports[i] = a.analyzeOne(ctx, logger, d)
		}
		return reports, nil
	}

	var wg sync.WaitGroup
	for i, d := range decls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reports[i] = a.analyzeOne(ctx, logger, d)
		}()
	}
	wg.Wait()
	return reports, nil
}

// analyzeOne builds the report record for a single declaration.
func (a *Analyzer) analyzeOne(ctx context.Context, logger *log.Logger, d manifest.Declaration) Report {
	current, _ := manifest.Resolve(d.Constraint)
	r := Report{Name: d.Name, Current: current}

	info, err := a.Client.FetchPackage(ctx, d.Name, a.Refresh)
	if err != nil {
		logger.Warn("index lookup failed", "package", d.Name, "err", err)
	} else {
		r.Latest = info.Version
		r.Description = info.Summary
	}

	r.Color, r.Tier = Classify(r.Current, r.Latest)
	logger.Debug("classified package",
		"package", r.Name, "current", r.Current, "latest", r.Latest, "tier", int(r.Tier))
	return r
}

// shortRunID returns a compact id to correlate the log lines of one run.
func shortRunID() string {
	return uuid.NewString()[:8]
}
