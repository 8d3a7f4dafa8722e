package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEntry creates a fake archive file with a controlled mtime.
func writeEntry(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("archive"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestResolve_ExactHit(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "linux-primes"+Extension, time.Now())

	c := New(dir)
	m, err := c.Resolve("linux-primes", nil)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "linux-primes", m.Key)
	assert.True(t, m.Exact)
	assert.Equal(t, "linux-primes"+Extension, m.Entry.Name)
}

func TestResolve_FirstCandidateWins(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeEntry(t, dir, "v1-deps"+Extension, base)
	// v2 is newer, but v1 comes first in the candidate list.
	writeEntry(t, dir, "v2-deps"+Extension, base.Add(30*time.Minute))

	c := New(dir)
	m, err := c.Resolve("v3-deps", []string{"v1-deps", "v2-deps"})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "v1-deps", m.Key)
	assert.False(t, m.Exact)
}

func TestResolve_LatestWinsWithinCandidate(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeEntry(t, dir, "deps-old"+Extension, base)
	writeEntry(t, dir, "deps-new"+Extension, base.Add(10*time.Minute))

	c := New(dir)
	m, err := c.Resolve("nomatch", []string{"deps"})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "deps", m.Key)
	assert.False(t, m.Exact)
	assert.Equal(t, "deps-new"+Extension, m.Entry.Name)
}

func TestResolve_PrefixMatching(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "foobar"+Extension, time.Now())

	c := New(dir)
	m, err := c.Resolve("foo", nil)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.True(t, m.Exact)
	assert.Equal(t, "foobar"+Extension, m.Entry.Name)
}

func TestResolve_CandidateIsSanitized(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, Sanitize("feat/branch")+Extension, time.Now())

	c := New(dir)
	m, err := c.Resolve("feat/branch", nil)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "feat/branch", m.Key)
	assert.True(t, m.Exact)
}

func TestResolve_Miss(t *testing.T) {
	c := New(t.TempDir())
	m, err := c.Resolve("absent", []string{"also-absent"})
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestResolve_MissingDirIsMiss(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "never-created"))
	m, err := c.Resolve("key", nil)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestResolve_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deps"+Extension+".tmp"), []byte("partial"), 0o644))

	c := New(dir)
	m, err := c.Resolve("deps", nil)
	require.NoError(t, err)
	assert.Nil(t, m, "in-flight temp files must not resolve")
}

func TestEntryPath(t *testing.T) {
	c := New("/var/cache/stash/repo")
	assert.Equal(t, "/var/cache/stash/repo/feat_branch"+Extension, c.EntryPath("feat/branch"))
}

func TestList_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeEntry(t, dir, "a"+Extension, base)
	writeEntry(t, dir, "b"+Extension, base.Add(20*time.Minute))
	writeEntry(t, dir, "c"+Extension, base.Add(10*time.Minute))

	c := New(dir)
	entries, err := c.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "b"+Extension, entries[0].Name)
	assert.Equal(t, "c"+Extension, entries[1].Name)
	assert.Equal(t, "a"+Extension, entries[2].Name)
}

func TestGetStats(t *testing.T) {
	dir := t.TempDir()

	c := New(dir)
	stats, err := c.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Entries)
	assert.True(t, stats.Newest.IsZero())

	newest := time.Now()
	writeEntry(t, dir, "k1"+Extension, newest.Add(-time.Minute))
	writeEntry(t, dir, "k2"+Extension, newest)

	stats, err = c.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Entries)
	assert.Greater(t, stats.TotalBytes, int64(0))
	assert.Equal(t, dir, stats.Dir)
	assert.WithinDuration(t, newest, stats.Newest, time.Second)
}

func TestClear_LeavesForeignFiles(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "k1"+Extension, time.Now())
	writeEntry(t, dir, "k2"+Extension, time.Now())
	stray := filepath.Join(dir, "README.txt")
	require.NoError(t, os.WriteFile(stray, []byte("not an entry"), 0o644))

	c := New(dir)
	require.NoError(t, c.Clear())

	entries, err := c.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = os.Stat(stray)
	assert.NoError(t, err, "non-archive files must survive Clear")
}

func TestClear_MissingDir(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "never-created"))
	require.NoError(t, c.Clear())
}
