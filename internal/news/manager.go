package news

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// privatePath is the state directory under the target root where the
// timestamp cache lives.
const privatePath = "var/lib/benews"

// Manager orchestrates one refresh pass per repository: it lists candidate
// news item files, filters them against the cached recency cutoff, evaluates
// relevance, and records relevant items in the per-repository unread ledger.
//
// The manager assumes single-writer, non-concurrent invocation per
// repository; callers running refreshes concurrently must serialize them.
type Manager struct {
	targetRoot string
	newsDir    string            // relative to each repository root
	unreadDir  string            // where the unread/read ledgers live
	stampPath  string            // timestamp cache file
	repos      map[string]string // repository id -> repository root
	nowFunc    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithNowFunc sets a custom time function for testing.
func WithNowFunc(fn func() time.Time) Option {
	return func(m *Manager) {
		m.nowFunc = fn
	}
}

// NewManager creates a news manager.
//
// targetRoot is the root of the target system (usually "/"); the timestamp
// cache is derived from it. newsDir is the news directory path relative to a
// repository root (usually "metadata/news"). unreadDir is the directory
// holding the news.<repo>.unread ledgers. repos maps repository ids to their
// filesystem roots.
func NewManager(targetRoot, newsDir, unreadDir string, repos map[string]string, opts ...Option) *Manager {
	m := &Manager{
		targetRoot: targetRoot,
		newsDir:    newsDir,
		unreadDir:  unreadDir,
		stampPath:  filepath.Join(targetRoot, privatePath, TimestampFile),
		repos:      repos,
		nowFunc:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// TimestampPath returns the path of the timestamp cache file.
func (m *Manager) TimestampPath() string {
	return m.stampPath
}

// EnsureTimestamp creates the timestamp cache if it does not exist yet. A
// fresh cache is backdated to the epoch so every existing item qualifies on
// the first refresh pass.
func (m *Manager) EnsureTimestamp() error {
	if _, err := os.Stat(m.stampPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return advanceStamp(m.stampPath, time.Unix(0, 0))
}

// Refresh finds the news items in repoID's news directory that are both new
// (modified after the cached cutoff) and relevant to the system described by
// env, and appends their paths to the repository's unread ledger. Paths
// already present in the unread or read ledger are not appended again. After
// a successful pass the timestamp cache is advanced to the current time.
func (m *Manager) Refresh(repoID string, env Environment) error {
	repoRoot, ok := m.repos[repoID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRepo, repoID)
	}

	cutoff, err := readStamp(m.stampPath)
	if err != nil {
		return fmt.Errorf("reading news timestamp cache: %w", err)
	}

	dir := filepath.Join(repoRoot, m.newsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listing news directory: %w", err)
	}

	// os.ReadDir returns entries sorted by filename, which keeps ledger
	// order deterministic.
	var matched []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		ok, err := Qualifies(path, cutoff)
		if err != nil {
			return fmt.Errorf("inspecting news item: %w", err)
		}
		if !ok {
			continue
		}

		relevant, err := NewItem(path).Relevant(env)
		if err != nil {
			return fmt.Errorf("parsing news item %s: %w", path, err)
		}
		if relevant {
			matched = append(matched, path)
		}
	}

	if len(matched) > 0 {
		if err := m.appendUnread(repoID, matched); err != nil {
			return err
		}
	}

	return advanceStamp(m.stampPath, m.nowFunc())
}

// appendUnread appends paths to the repository's unread ledger, skipping any
// already recorded as unread or read.
func (m *Manager) appendUnread(repoID string, paths []string) error {
	seen := make(map[string]bool)
	for _, ledger := range []string{m.unreadPath(repoID), m.readPath(repoID)} {
		lines, err := readLedger(ledger)
		if err != nil {
			return err
		}
		for _, line := range lines {
			seen[line] = true
		}
	}

	var fresh []string
	for _, p := range paths {
		if !seen[p] {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	return appendLedger(m.unreadPath(repoID), fresh)
}

// CountUnread reports the number of entries in repoID's unread ledger. A
// missing ledger counts as zero. When refreshFirst is set, Refresh runs
// first and its failure is propagated.
func (m *Manager) CountUnread(repoID string, refreshFirst bool, env Environment) (int, error) {
	if refreshFirst {
		if err := m.Refresh(repoID, env); err != nil {
			return 0, err
		}
	}

	lines, err := readLedger(m.unreadPath(repoID))
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// UnreadPaths returns the item paths currently in repoID's unread ledger.
func (m *Manager) UnreadPaths(repoID string) ([]string, error) {
	if _, ok := m.repos[repoID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRepo, repoID)
	}
	return readLedger(m.unreadPath(repoID))
}

// MarkRead moves the given paths from repoID's unread ledger to its read
// ledger. Paths not present in the unread ledger are ignored.
func (m *Manager) MarkRead(repoID string, paths []string) error {
	if _, ok := m.repos[repoID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRepo, repoID)
	}

	unread, err := readLedger(m.unreadPath(repoID))
	if err != nil {
		return err
	}

	drop := make(map[string]bool, len(paths))
	for _, p := range paths {
		drop[p] = true
	}

	var keep, moved []string
	for _, p := range unread {
		if drop[p] {
			moved = append(moved, p)
		} else {
			keep = append(keep, p)
		}
	}
	if len(moved) == 0 {
		return nil
	}

	if err := appendLedger(m.readPath(repoID), moved); err != nil {
		return err
	}
	return writeLedger(m.unreadPath(repoID), keep)
}

// unreadPath returns the unread ledger path for a repository.
func (m *Manager) unreadPath(repoID string) string {
	return filepath.Join(m.unreadDir, "news."+repoID+".unread")
}

// readPath returns the read (acknowledged) ledger path for a repository.
func (m *Manager) readPath(repoID string) string {
	return filepath.Join(m.unreadDir, "news."+repoID+".read")
}
