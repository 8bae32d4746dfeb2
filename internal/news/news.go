// Package news implements GLEP 42 style news item tracking. It decides which
// news items published in a repository's news directory are relevant to the
// target system, and maintains a per-repository ledger of relevant items the
// user has not read yet.
//
// Usage:
//
//	mgr := news.NewManager("/", "metadata/news", "/var/lib/benews/news", repos)
//	if err := mgr.Refresh("gentoo", env); err != nil {
//	    log.Fatal(err)
//	}
//	count, err := mgr.CountUnread("gentoo", false, env)
package news

import "errors"

// ErrUnknownRepo is returned when an operation names a repository id that is
// not in the registry.
var ErrUnknownRepo = errors.New("unknown repository id")

// PackageQuery answers whether the installed-package set satisfies a
// dependency atom. Implemented by vdb.Database.
type PackageQuery interface {
	Matches(spec string) bool
}

// Environment is the system-state context a news item is evaluated against.
// The caller constructs it; the manager never reaches into global state.
type Environment struct {
	// Profile is the active profile name, e.g. "default/linux/amd64/23.0".
	Profile string
	// Keyword is the architecture keyword, e.g. "amd64".
	Keyword string
	// Packages answers installed-package queries. May be nil, in which case
	// Display-If-Installed restrictions never match.
	Packages PackageQuery
}
