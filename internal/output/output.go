package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/stash/internal/archive"
	"github.com/dshills/stash/internal/cache"
)

// Writer renders cache inspection results in a specific format.
type Writer interface {
	WriteStats(w io.Writer, stats cache.Stats) error
	WriteEntries(w io.Writer, entries []cache.Entry) error
	WriteListing(w io.Writer, name string, files []archive.FileInfo) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteStats writes stats to outPath (stdout when empty) in format.
func WriteStats(stats cache.Stats, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	return withOutput(outPath, func(w io.Writer) error {
		return writer.WriteStats(w, stats)
	})
}

// WriteEntries writes an entry listing to outPath (stdout when empty) in
// format.
func WriteEntries(entries []cache.Entry, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	return withOutput(outPath, func(w io.Writer) error {
		return writer.WriteEntries(w, entries)
	})
}

// WriteListing writes an archive content listing to outPath (stdout when
// empty) in format.
func WriteListing(name string, files []archive.FileInfo, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	return withOutput(outPath, func(w io.Writer) error {
		return writer.WriteListing(w, name, files)
	})
}

func withOutput(outPath string, fn func(io.Writer) error) error {
	if outPath == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return fn(f)
}
