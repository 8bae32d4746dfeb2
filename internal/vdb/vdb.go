// Package vdb reads the installed-package database: a two-level directory
// tree in the /var/db/pkg layout, category/package-version, one directory per
// installed package.
package vdb

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/obentoo/benews/internal/atom"
)

// pkgDirRegex splits an installed-package directory name into name and
// version, e.g. "firefox-102.0-r1" -> ("firefox", "102.0-r1").
var pkgDirRegex = regexp.MustCompile(`^(.+)-(\d[\w.]*(?:-r\d+)?)$`)

// Package is one installed package entry.
type Package struct {
	Category string // e.g. "www-client"
	Name     string // e.g. "firefox"
	Version  string // e.g. "102.0-r1"
}

// FullName returns the category/package format.
func (p Package) FullName() string {
	return p.Category + "/" + p.Name
}

// String returns the category/package-version format.
func (p Package) String() string {
	return p.Category + "/" + p.Name + "-" + p.Version
}

// Database is an in-memory snapshot of the installed-package set.
type Database struct {
	root string
	pkgs []Package
}

// Open scans the database tree at root and returns the installed set.
// Directory entries that do not look like package entries are skipped
// silently; a missing or unreadable root is an error.
func Open(root string) (*Database, error) {
	db := &Database{root: root}

	categories, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	for _, cat := range categories {
		if !cat.IsDir() || strings.HasPrefix(cat.Name(), ".") {
			continue
		}

		entries, err := os.ReadDir(filepath.Join(root, cat.Name()))
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}

			matches := pkgDirRegex.FindStringSubmatch(entry.Name())
			if matches == nil {
				// Not a package-version directory
				continue
			}

			db.pkgs = append(db.pkgs, Package{
				Category: cat.Name(),
				Name:     matches[1],
				Version:  matches[2],
			})
		}
	}

	sort.Slice(db.pkgs, func(i, j int) bool {
		if db.pkgs[i].Category != db.pkgs[j].Category {
			return db.pkgs[i].Category < db.pkgs[j].Category
		}
		if db.pkgs[i].Name != db.pkgs[j].Name {
			return db.pkgs[i].Name < db.pkgs[j].Name
		}
		return atom.CompareVersions(db.pkgs[i].Version, db.pkgs[j].Version) < 0
	})

	return db, nil
}

// Root returns the database root the snapshot was read from.
func (db *Database) Root() string {
	return db.root
}

// Packages returns all installed packages, sorted by category, name and
// version.
func (db *Database) Packages() []Package {
	return db.pkgs
}

// Match returns the installed packages satisfying the given atom. A spec
// that does not parse matches nothing.
func (db *Database) Match(spec string) []Package {
	a, err := atom.Parse(spec)
	if err != nil {
		return nil
	}

	var matched []Package
	for _, p := range db.pkgs {
		if a.MatchesPackage(p.Category, p.Name, p.Version) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Matches reports whether at least one installed package satisfies spec.
func (db *Database) Matches(spec string) bool {
	return len(db.Match(spec)) > 0
}
