package news

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genProfileName generates plausible profile names
func genProfileName() gopter.Gen {
	profiles := []interface{}{
		"default/linux/amd64", "default/linux/amd64/23.0",
		"default/linux/arm64", "default/linux/x86",
		"default/linux/amd64/desktop", "hardened/linux/amd64",
		"default/bsd/fbsd/amd64",
	}
	return gen.OneConstOf(profiles...)
}

// genKeyword generates architecture keywords
func genKeyword() gopter.Gen {
	return gen.OneConstOf("amd64", "arm64", "x86", "ppc64", "sparc", "riscv")
}

// TestProfileRestrictionEquality checks that a profile restriction matches
// exactly when the active profile equals its value, for any pairing.
func TestProfileRestrictionEquality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("profile restriction matches iff profiles are equal", prop.ForAll(
		func(restricted, active string) bool {
			r := Restriction{Kind: KindProfile, Value: restricted}
			return r.Matches(Environment{Profile: active}) == (restricted == active)
		},
		genProfileName(),
		genProfileName(),
	))

	properties.Property("keyword restriction matches iff keywords are equal", prop.ForAll(
		func(restricted, active string) bool {
			r := Restriction{Kind: KindKeyword, Value: restricted}
			return r.Matches(Environment{Keyword: active}) == (restricted == active)
		},
		genKeyword(),
		genKeyword(),
	))

	properties.TestingRun(t)
}

// TestRestrictionOrSemantics checks that relevance over a restriction set is
// a logical OR: any single match is enough, no match at all is not.
func TestRestrictionOrSemantics(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	env := Environment{Profile: "default/linux/amd64", Keyword: "amd64"}

	properties.Property("any matching restriction implies a match somewhere", prop.ForAll(
		func(keywords []string) bool {
			anyMatch := false
			for _, kw := range keywords {
				r := Restriction{Kind: KindKeyword, Value: kw}
				if r.Matches(env) {
					anyMatch = true
				}
			}

			expected := false
			for _, kw := range keywords {
				if kw == env.Keyword {
					expected = true
				}
			}
			return anyMatch == expected
		},
		gen.SliceOf(genKeyword()),
	))

	properties.TestingRun(t)
}

func TestParseRestrictionForms(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Restriction
		ok   bool
	}{
		{
			name: "profile form",
			line: "Display-If-Profile: default/linux/amd64",
			want: Restriction{Kind: KindProfile, Value: "default/linux/amd64"},
			ok:   true,
		},
		{
			name: "keyword form",
			line: "Display-If-Keyword: amd64",
			want: Restriction{Kind: KindKeyword, Value: "amd64"},
			ok:   true,
		},
		{
			name: "installed form",
			line: "Display-If-Installed: >=sys-apps/portage-2.1",
			want: Restriction{Kind: KindInstalled, Value: ">=sys-apps/portage-2.1"},
			ok:   true,
		},
		{name: "case sensitive keyword literal", line: "display-if-profile: x"},
		{name: "unknown form", line: "Display-If-Weather: sunny"},
		{name: "no value", line: "Display-If-Profile:"},
		{name: "body text", line: "Do read this announcement carefully."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseRestriction(tt.line)
			if ok != tt.ok {
				t.Fatalf("parseRestriction(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseRestriction(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
