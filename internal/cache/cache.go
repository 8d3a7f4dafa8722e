package cache

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Extension is the suffix appended to a sanitized key to form the entry
// filename: a tar archive passed through the zstd block compressor.
const Extension = ".tar.zst"

// Entry describes one archive file in the cache directory.
type Entry struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// Match is a resolved cache entry. Key is the candidate key (before
// sanitization) that matched; Exact is true only when Key is the primary key.
type Match struct {
	Key   string
	Entry Entry
	Exact bool
}

// Cache scans and manages a single scope directory. The directory is shared
// between processes with no locking; callers are expected to keep one writer
// per key at a time.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir. The directory is not created here; save
// creates it lazily on first write.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string { return c.dir }

// EntryPath returns the on-disk path an archive for key would occupy.
func (c *Cache) EntryPath(key string) string {
	return filepath.Join(c.dir, Sanitize(key)+Extension)
}

// Resolve finds the best existing entry for primary and the ordered fallback
// restoreKeys. Candidates are tried in order; the first candidate with at
// least one filename-prefix match wins, and among its matches the entry with
// the newest modification time is selected (ties keep the first seen in scan
// order). A miss returns (nil, nil); it is not an error.
func (c *Cache) Resolve(primary string, restoreKeys []string) (*Match, error) {
	entries, err := c.scan()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	candidates := make([]string, 0, 1+len(restoreKeys))
	candidates = append(candidates, primary)
	candidates = append(candidates, restoreKeys...)

	for _, key := range candidates {
		prefix := Sanitize(key)
		var best *Entry
		for i := range entries {
			e := &entries[i]
			if !strings.HasPrefix(e.Name, prefix) {
				continue
			}
			if best == nil || e.ModTime.After(best.ModTime) {
				best = e
			}
		}
		if best != nil {
			return &Match{Key: key, Entry: *best, Exact: key == primary}, nil
		}
	}
	return nil, nil
}

// List returns all entries in the cache directory, newest first. A missing
// directory yields an empty listing.
func (c *Cache) List() ([]Entry, error) {
	entries, err := c.scan()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
	return entries, nil
}

// Stats summarizes the cache directory.
type Stats struct {
	Dir        string    `json:"dir"`
	Entries    int       `json:"entries"`
	TotalBytes int64     `json:"totalBytes"`
	Newest     time.Time `json:"newest,omitzero"`
}

// GetStats returns information about the cache directory.
func (c *Cache) GetStats() (Stats, error) {
	stats := Stats{Dir: c.dir}
	entries, err := c.scan()
	if err != nil {
		return stats, err
	}
	for _, e := range entries {
		stats.Entries++
		stats.TotalBytes += e.Size
		if e.ModTime.After(stats.Newest) {
			stats.Newest = e.ModTime
		}
	}
	return stats, nil
}

// Clear removes all archive entries in the cache directory. Files without the
// archive extension are left alone.
func (c *Cache) Clear() error {
	entries, err := c.scan()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.Remove(e.Path); err != nil {
			return NewOperationalError(err, "removing cache entry %s", e.Path)
		}
	}
	return nil
}

// scan lists archive files in the cache directory. A directory that does not
// exist yet is an empty cache, not an error.
func (c *Cache) scan() ([]Entry, error) {
	dirents, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewOperationalError(err, "reading cache directory %s", c.dir)
	}
	var entries []Entry
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), Extension) {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    d.Name(),
			Path:    filepath.Join(c.dir, d.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return entries, nil
}
