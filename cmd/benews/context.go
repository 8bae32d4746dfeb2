package main

import (
	"fmt"

	"github.com/obentoo/benews/internal/common/config"
	"github.com/obentoo/benews/internal/common/logger"
	"github.com/obentoo/benews/internal/news"
	"github.com/obentoo/benews/internal/target"
	"github.com/obentoo/benews/internal/vdb"
)

// buildContext constructs the news manager and the system-state environment
// from the user configuration. Collaborators that cannot be read (no profile
// link, no make.conf, no package database) degrade to empty context values:
// the corresponding restrictions then simply never match.
func buildContext() (*news.Manager, news.Environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, news.Environment{}, fmt.Errorf("loading config: %w", err)
	}

	repos, err := config.LoadRepos(cfg.News.Repos)
	if err != nil {
		return nil, news.Environment{}, err
	}

	mgr := news.NewManager(cfg.Target.Root, cfg.News.Dir, cfg.News.UnreadDir, config.RepoRoots(repos))

	var env news.Environment
	if profile, err := target.ResolveProfile(cfg.Target.Profile); err == nil {
		env.Profile = profile
	} else {
		logger.Warn("no active profile: %v", err)
	}
	if mc, err := target.LoadMakeConf(cfg.Target.MakeConf); err == nil {
		env.Keyword = mc.Arch()
	} else {
		logger.Warn("no make.conf: %v", err)
	}
	if db, err := vdb.Open(cfg.Target.PkgDB); err == nil {
		env.Packages = db
	} else {
		logger.Warn("no package database: %v", err)
	}

	return mgr, env, nil
}
