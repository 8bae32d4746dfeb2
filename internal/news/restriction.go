package news

import "strings"

// Kind identifies one of the three GLEP 42 display restrictions.
type Kind int

const (
	// KindProfile matches when the active profile equals the value.
	KindProfile Kind = iota
	// KindKeyword matches when the architecture keyword equals the value.
	KindKeyword
	// KindInstalled matches when an installed package satisfies the value,
	// read as a dependency atom.
	KindInstalled
)

// Restriction is one parsed Display-If declaration. Immutable once parsed;
// Matches is a pure function of the restriction and the environment.
type Restriction struct {
	Kind  Kind
	Value string
}

// Matches reports whether the restriction is satisfied by the environment.
func (r Restriction) Matches(env Environment) bool {
	switch r.Kind {
	case KindProfile:
		return env.Profile == r.Value
	case KindKeyword:
		return env.Keyword == r.Value
	case KindInstalled:
		return env.Packages != nil && env.Packages.Matches(r.Value)
	}
	return false
}

// restrictionHeaders maps the recognized header forms to their kinds, in
// declaration order. The set is closed; unknown Display-If lines are inert.
var restrictionHeaders = []struct {
	prefix string
	kind   Kind
}{
	{"Display-If-Profile:", KindProfile},
	{"Display-If-Keyword:", KindKeyword},
	{"Display-If-Installed:", KindInstalled},
}

// parseRestriction parses a header line into a restriction. Lines matching
// none of the three forms, or carrying an empty value, report false.
func parseRestriction(line string) (Restriction, bool) {
	for _, h := range restrictionHeaders {
		if !strings.HasPrefix(line, h.prefix) {
			continue
		}
		value := strings.TrimSpace(line[len(h.prefix):])
		if value == "" {
			return Restriction{}, false
		}
		return Restriction{Kind: h.kind, Value: value}, true
	}
	return Restriction{}, false
}
