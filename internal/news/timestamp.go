package news

import (
	"os"
	"path/filepath"
	"time"
)

// TimestampFile is the name of the timestamp cache under the private state
// directory.
const TimestampFile = "news-timestamp"

// readStamp returns the recency cutoff: the modification time of the
// timestamp cache file. The file must exist; the surrounding system
// establishes it before first use.
func readStamp(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// advanceStamp moves the cache's modification time to now, creating the file
// if needed.
func advanceStamp(path string, now time.Time) error {
	if err := touchStamp(path); err != nil {
		return err
	}
	return os.Chtimes(path, now, now)
}

// touchStamp creates the timestamp cache file (and its directory) if absent.
func touchStamp(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}
