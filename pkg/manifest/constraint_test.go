package manifest

import "testing"

func TestResolve_Strings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"caret", "^1.2.3", "1.2.3", true},
		{"tilde", "~1.4", "1.4", true},
		{"range keeps first clause", ">=2.0,<3.0", "2.0", true},
		{"exact", "==1.0.0", "1.0.0", true},
		{"extras stripped before clause split", ">=2.0[css],<3", "2.0", true},
		{"leading extras yield absent", "[css]>=1.0", "", false},
		{"whitespace trimmed", "  >= 2.0 ", "2.0", true},
		{"bare version", "3.1.4", "3.1.4", true},
		{"empty", "", "", false},
		{"only operators", ">=", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.raw)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolve_Tables(t *testing.T) {
	got, ok := Resolve(map[string]any{"version": "~1.4", "optional": true})
	if !ok || got != "1.4" {
		t.Errorf("Resolve(table) = (%q, %v), want (1.4, true)", got, ok)
	}

	if _, ok := Resolve(map[string]any{"optional": true}); ok {
		t.Error("table without version key must resolve to absent")
	}

	if _, ok := Resolve(map[string]any{}); ok {
		t.Error("empty table must resolve to absent")
	}

	// Nested table form: version itself declared as a table.
	got, ok = Resolve(map[string]any{"version": map[string]any{"version": "^2.1"}})
	if !ok || got != "2.1" {
		t.Errorf("Resolve(nested table) = (%q, %v), want (2.1, true)", got, ok)
	}
}

func TestResolve_UnknownShapes(t *testing.T) {
	for _, raw := range []any{nil, 42, 1.5, true, []string{"1.0"}} {
		if _, ok := Resolve(raw); ok {
			t.Errorf("Resolve(%#v) must resolve to absent", raw)
		}
	}
}

// Operator characters are stripped anywhere in the clause, not only at the
// front. Documented quirk of the resolver.
func TestResolve_StripsOperatorsMidToken(t *testing.T) {
	got, ok := Resolve("1.0.0=beta")
	if !ok || got != "1.0.0beta" {
		t.Errorf("Resolve = (%q, %v), want (1.0.0beta, true)", got, ok)
	}
}
