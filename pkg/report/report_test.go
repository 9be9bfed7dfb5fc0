package report

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		color   Color
		tier    Tier
	}{
		{"patch drift ignored", "1.2.3", "1.2.9", ColorNone, TierNone},
		{"minor update", "1.2.3", "1.3.0", ColorMinor, TierMinor},
		{"major update", "1.2.3", "2.0.0", ColorMajor, TierMajor},
		{"identical", "1.2.3", "1.2.3", ColorNone, TierNone},
		{"two-segment current", "2.0", "3.1.0", ColorMajor, TierMajor},
		{"missing current", "", "1.0.0", ColorNone, TierNone},
		{"missing latest", "1.0.0", "", ColorNone, TierNone},
		{"both missing", "", "", ColorNone, TierNone},
		{"malformed latest", "1.0.0", "not-a-version", ColorNone, TierNone},
		{"malformed current", "garbage", "1.0.0", ColorNone, TierNone},
		{"prerelease drift ignored", "1.2.0-rc1", "1.2.5", ColorNone, TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, tier := Classify(tt.current, tt.latest)
			if color != tt.color || tier != tt.tier {
				t.Errorf("Classify(%q, %q) = (%s, %d), want (%s, %d)",
					tt.current, tt.latest, color, tier, tt.color, tt.tier)
			}
		})
	}
}

func TestColorIsDeterministicPerTier(t *testing.T) {
	want := map[Tier]Color{
		TierNone:  ColorNone,
		TierMinor: ColorMinor,
		TierMajor: ColorMajor,
	}
	for tier, color := range want {
		if got := colorFor(tier); got != color {
			t.Errorf("colorFor(%d) = %s, want %s", tier, got, color)
		}
	}
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierNone, "No Update"},
		{TierMinor, "Minor Update"},
		{TierMajor, "Major Update"},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}
