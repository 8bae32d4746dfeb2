// Package atom parses Gentoo-style dependency atoms and compares package
// versions. An atom names a category/package pair, optionally constrained by
// a version operator (=, >=, >, <=, <, ~) or widened by glob wildcards in the
// category or package name.
package atom

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	ErrEmptyAtom = errors.New("empty package atom")
)

// ParseError describes an atom that could not be parsed.
type ParseError struct {
	Spec   string // the atom as given
	Reason string // why parsing failed
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid atom '%s': %s", e.Spec, e.Reason)
}

// Op is a version comparison operator on an atom.
type Op int

const (
	OpAny          Op = iota // no operator: any version matches
	OpEqual                  // =cat/pkg-1.0 (or =cat/pkg-1* prefix form)
	OpGreaterEqual           // >=cat/pkg-1.0
	OpGreater                // >cat/pkg-1.0
	OpLessEqual              // <=cat/pkg-1.0
	OpLess                   // <cat/pkg-1.0
	OpRevision               // ~cat/pkg-1.0: version 1.0, any revision
)

// atomVersionRegex splits "name-version" at the last hyphen that starts a
// version (a hyphen followed by a digit), keeping revision suffixes attached.
var atomVersionRegex = regexp.MustCompile(`^(.+)-(\d[\w.]*(?:-r\d+)?)$`)

// Atom is a parsed dependency atom. Immutable after Parse.
type Atom struct {
	Op       Op
	Category string
	Package  string
	Version  string // empty when Op is OpAny
}

// Parse parses a dependency atom string.
// Accepted forms:
//
//	www-client/firefox
//	x11-libs/*
//	=app-editors/vim-9.0
//	=dev-lang/python-3*
//	>=sys-apps/portage-2.1
//	~net-misc/curl-8.5.0
func Parse(spec string) (*Atom, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptyAtom
	}

	op := OpAny
	rest := spec
	switch {
	case strings.HasPrefix(rest, ">="):
		op, rest = OpGreaterEqual, rest[2:]
	case strings.HasPrefix(rest, "<="):
		op, rest = OpLessEqual, rest[2:]
	case strings.HasPrefix(rest, ">"):
		op, rest = OpGreater, rest[1:]
	case strings.HasPrefix(rest, "<"):
		op, rest = OpLess, rest[1:]
	case strings.HasPrefix(rest, "="):
		op, rest = OpEqual, rest[1:]
	case strings.HasPrefix(rest, "~"):
		op, rest = OpRevision, rest[1:]
	}

	category, name, ok := strings.Cut(rest, "/")
	if !ok || category == "" || name == "" {
		return nil, &ParseError{Spec: spec, Reason: "expected category/package"}
	}
	if strings.Contains(name, "/") {
		return nil, &ParseError{Spec: spec, Reason: "too many path separators"}
	}

	a := &Atom{Op: op, Category: category, Package: name}

	if op == OpAny {
		return a, nil
	}

	// Operator forms carry a version on the package part.
	matches := atomVersionRegex.FindStringSubmatch(strings.TrimSuffix(name, "*"))
	if matches == nil {
		return nil, &ParseError{Spec: spec, Reason: "operator atom requires a version"}
	}
	a.Package = matches[1]
	a.Version = matches[2]
	if strings.HasSuffix(name, "*") {
		if op != OpEqual {
			return nil, &ParseError{Spec: spec, Reason: "version wildcard is only valid with ="}
		}
		a.Version += "*"
	}
	if strings.ContainsAny(a.Category+a.Package, "*?") {
		return nil, &ParseError{Spec: spec, Reason: "name wildcards are only valid without an operator"}
	}

	return a, nil
}

// MatchesPackage reports whether an installed package identified by category,
// name and version satisfies the atom.
func (a *Atom) MatchesPackage(category, name, version string) bool {
	if !matchName(a.Category, category) || !matchName(a.Package, name) {
		return false
	}

	switch a.Op {
	case OpAny:
		return true
	case OpEqual:
		if strings.HasSuffix(a.Version, "*") {
			return strings.HasPrefix(version, strings.TrimSuffix(a.Version, "*"))
		}
		return CompareVersions(version, a.Version) == 0
	case OpGreaterEqual:
		return CompareVersions(version, a.Version) >= 0
	case OpGreater:
		return CompareVersions(version, a.Version) > 0
	case OpLessEqual:
		return CompareVersions(version, a.Version) <= 0
	case OpLess:
		return CompareVersions(version, a.Version) < 0
	case OpRevision:
		return CompareVersions(StripRevision(version), StripRevision(a.Version)) == 0
	}
	return false
}

// String reassembles the atom in its canonical form.
func (a *Atom) String() string {
	ops := map[Op]string{
		OpAny:          "",
		OpEqual:        "=",
		OpGreaterEqual: ">=",
		OpGreater:      ">",
		OpLessEqual:    "<=",
		OpLess:         "<",
		OpRevision:     "~",
	}
	s := ops[a.Op] + a.Category + "/" + a.Package
	if a.Version != "" {
		s += "-" + a.Version
	}
	return s
}

// matchName matches a category or package name against a pattern that may
// contain glob wildcards. Plain names use exact comparison.
func matchName(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name
	}
	matched, err := doublestar.Match(pattern, name)
	if err != nil {
		return false
	}
	return matched
}
