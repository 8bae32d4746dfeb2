package news

import (
	"bufio"
	"os"
	"strings"
	"time"
)

// Item is one news item file. The restriction headers are parsed lazily on
// first use and memoized for the lifetime of the instance.
type Item struct {
	// Path locates the source file. Immutable after construction.
	Path string

	parsed       bool
	restrictions []Restriction
	title        string
	posted       string
}

// NewItem wraps a news item file. The file is not read until the first
// accessor call.
func NewItem(path string) *Item {
	return &Item{Path: path}
}

// Qualifies reports whether path is admissible as a news item candidate: a
// regular file whose modification time is strictly newer than cutoff. A
// failed stat is an error, not a skip.
func Qualifies(path string, cutoff time.Time) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}
	return info.ModTime().After(cutoff), nil
}

// Restrictions returns the item's parsed display restrictions. An empty
// slice means the item is unconditionally relevant.
func (it *Item) Restrictions() ([]Restriction, error) {
	if err := it.parse(); err != nil {
		return nil, err
	}
	return it.restrictions, nil
}

// Title returns the item's Title header, or "" if the item has none.
func (it *Item) Title() (string, error) {
	if err := it.parse(); err != nil {
		return "", err
	}
	return it.title, nil
}

// Posted returns the item's Posted header, or "" if the item has none.
func (it *Item) Posted() (string, error) {
	if err := it.parse(); err != nil {
		return "", err
	}
	return it.posted, nil
}

// Relevant reports whether the item should be shown on a system described by
// env: true when the item carries no restrictions, or when any single
// restriction matches.
func (it *Item) Relevant(env Environment) (bool, error) {
	restrictions, err := it.Restrictions()
	if err != nil {
		return false, err
	}

	if len(restrictions) == 0 {
		// No restrictions means everyone should see it.
		return true, nil
	}

	for _, r := range restrictions {
		if r.Matches(env) {
			return true, nil
		}
	}
	return false, nil
}

// parse reads the item file once and extracts the restriction declarations
// and the Title/Posted headers. Repeated calls are no-ops.
func (it *Item) parse() error {
	if it.parsed {
		return nil
	}

	f, err := os.Open(it.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		restrictions  []Restriction
		title, posted string
	)

	inHeader := true
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if inHeader {
			if strings.TrimSpace(line) == "" {
				// Blank line ends the header block; the body follows.
				inHeader = false
				continue
			}
			if strings.HasPrefix(line, "Title:") {
				title = strings.TrimSpace(line[len("Title:"):])
				continue
			}
			if strings.HasPrefix(line, "Posted:") {
				posted = strings.TrimSpace(line[len("Posted:"):])
				continue
			}
		}

		// Lines that cannot start a Display-If header are skipped without
		// further inspection.
		if !strings.HasPrefix(line, "D") {
			continue
		}
		if r, ok := parseRestriction(line); ok {
			restrictions = append(restrictions, r)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	it.restrictions = restrictions
	it.title = title
	it.posted = posted
	it.parsed = true
	return nil
}
