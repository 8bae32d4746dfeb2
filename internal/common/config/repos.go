package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Error variables for repository registry errors
var (
	// ErrReposNotFound is returned when the repository registry file is missing
	ErrReposNotFound = errors.New("repository registry not found")
	// ErrMissingLocation is returned when a repository entry has no location
	ErrMissingLocation = errors.New("missing required field: location")
)

// RepoConfig describes one registered repository.
type RepoConfig struct {
	// Location is the repository's filesystem root
	Location string `toml:"location"`
	// Priority orders repositories; unused by the news core but kept for
	// compatibility with repos.conf-style registries
	Priority int `toml:"priority,omitempty"`
}

// reposFile is the internal representation matching the TOML structure where
// each [repoid] section is a top-level key
type reposFile map[string]RepoConfig

// LoadRepos loads and parses the repository registry (repos.toml). The keys
// are repository ids, e.g. [gentoo] with location = "/var/db/repos/gentoo".
func LoadRepos(path string) (map[string]RepoConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrReposNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository registry: %w", err)
	}

	var file reposFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse repository registry: %w", err)
	}

	repos := make(map[string]RepoConfig, len(file))
	for id, repo := range file {
		if repo.Location == "" {
			return nil, fmt.Errorf("repository %s: %w", id, ErrMissingLocation)
		}
		repos[id] = repo
	}

	return repos, nil
}

// RepoRoots reduces a registry to the id -> location mapping consumed by the
// news manager.
func RepoRoots(repos map[string]RepoConfig) map[string]string {
	roots := make(map[string]string, len(repos))
	for id, repo := range repos {
		roots[id] = repo.Location
	}
	return roots
}
