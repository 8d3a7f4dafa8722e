package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dshills/stash/internal/archive"
	"github.com/dshills/stash/internal/cache"
)

// TextWriter outputs human-readable listings.
type TextWriter struct{}

func (t *TextWriter) WriteStats(w io.Writer, stats cache.Stats) error {
	ew := &errWriter{w: w}
	ew.printf("Cache directory: %s\n", stats.Dir)
	ew.printf("Entries: %d\n", stats.Entries)
	ew.printf("Total size: %s\n", humanBytes(stats.TotalBytes))
	if !stats.Newest.IsZero() {
		ew.printf("Newest entry: %s\n", stats.Newest.Format(time.RFC3339))
	}
	return ew.err
}

func (t *TextWriter) WriteEntries(w io.Writer, entries []cache.Entry) error {
	ew := &errWriter{w: w}
	if len(entries) == 0 {
		ew.println("No cache entries.")
		return ew.err
	}
	for _, e := range entries {
		ew.printf("%-12s %s  %s\n", humanBytes(e.Size), e.ModTime.Format(time.RFC3339), e.Name)
	}
	return ew.err
}

func (t *TextWriter) WriteListing(w io.Writer, name string, files []archive.FileInfo) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n", name)
	ew.println(strings.Repeat("─", 40))
	for _, f := range files {
		if f.Dir {
			ew.printf("%-12s %s\n", "-", f.Name)
			continue
		}
		ew.printf("%-12s %s\n", humanBytes(f.Size), f.Name)
	}
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
