// Package report classifies how far each declared dependency lags behind
// the package index and assembles the per-package report records.
package report

import (
	"github.com/Masterminds/semver/v3"
)

// Tier classifies how far a current version lags the latest available one.
type Tier int

const (
	// TierNone means no update, or not enough information to tell.
	TierNone Tier = 0
	// TierMinor means the minor component differs.
	TierMinor Tier = 1
	// TierMajor means the major component differs.
	TierMajor Tier = 2
)

// String returns the human-readable tier label shown in the report table.
func (t Tier) String() string {
	switch t {
	case TierMajor:
		return "Major Update"
	case TierMinor:
		return "Minor Update"
	default:
		return "No Update"
	}
}

// Color is the CSS row class for a severity tier.
type Color string

const (
	ColorNone  Color = "white"
	ColorMinor Color = "yellow"
	ColorMajor Color = "red"
)

// colorFor maps a tier to its display color. Deterministic; the only
// source of colors in the program.
func colorFor(t Tier) Color {
	switch t {
	case TierMajor:
		return ColorMajor
	case TierMinor:
		return ColorMinor
	default:
		return ColorNone
	}
}

// Report is the final record for one dependency. Constructed once, never
// mutated afterwards.
type Report struct {
	Name        string
	Current     string // resolved declared version, empty if unknown
	Latest      string // latest published version, empty if the lookup failed
	Color       Color
	Tier        Tier
	Description string
}

// Classify determines the update severity between a resolved current
// version and the latest published one.
//
// Only major and minor component drift is surfaced; patch and pre-release
// differences are deliberately ignored. An empty or unparseable version on
// either side degrades to (ColorNone, TierNone) rather than failing:
// Classify is a total function.
func Classify(current, latest string) (Color, Tier) {
	if current == "" || latest == "" {
		return ColorNone, TierNone
	}

	cur, err := semver.NewVersion(current)
	if err != nil {
		return ColorNone, TierNone
	}
	lat, err := semver.NewVersion(latest)
	if err != nil {
		return ColorNone, TierNone
	}

	switch {
	case cur.Major() != lat.Major():
		return colorFor(TierMajor), TierMajor
	case cur.Minor() != lat.Minor():
		return colorFor(TierMinor), TierMinor
	default:
		return colorFor(TierNone), TierNone
	}
}
