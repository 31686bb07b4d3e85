package rec

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		kind  lineKind
		key   string
		value string
	}{
		{"open brace", "{", lineOpen, "", ""},
		{"open brace with noise", "  record {  ", lineOpen, "", ""},
		{"close brace", "}", lineClose, "", ""},
		{"close brace with noise", "  } trailing", lineClose, "", ""},
		{"brace open wins over close", "{}", lineOpen, "", ""},
		{"plain pair", "firstName Albert", lineField, "firstName", "Albert"},
		{"leading whitespace", "\tfirstName Albert", lineField, "firstName", "Albert"},
		{"quoted value", `firstName "Albert"`, lineField, "firstName", "Albert"},
		{"value keeps inner spaces", `title "On the Electrodynamics"`, lineField, "title", "On the Electrodynamics"},
		{"all quotes stripped", `note "a "quoted" word"`, lineField, "note", "a quoted word"},
		{"blank line", "", lineSkip, "", ""},
		{"whitespace only", "   \t", lineSkip, "", ""},
		{"lone word", "orphan", lineSkip, "", ""},
		{"key with punctuation", "bad-key value", lineSkip, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.in)
			if got.kind != tt.kind {
				t.Fatalf("classify(%q).kind = %d, want %d", tt.in, got.kind, tt.kind)
			}
			if got.key != tt.key || got.value != tt.value {
				t.Errorf("classify(%q) = (%q, %q), want (%q, %q)",
					tt.in, got.key, got.value, tt.key, tt.value)
			}
		})
	}
}
