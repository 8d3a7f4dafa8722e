package archive

import (
	"archive/tar"
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/dshills/stash/internal/cache"
)

// FileInfo describes one file inside a cache entry.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Dir  bool   `json:"dir,omitempty"`
}

// Inspect reads the archive at path in-process and returns its file listing.
// It decodes the zstd stream and walks the tar headers directly, so the
// external tools are not required.
func Inspect(path string) ([]FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cache.NewOperationalError(err, "opening archive %s", path)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, cache.NewOperationalError(err, "reading zstd stream from %s", path)
	}
	defer dec.Close()

	tr := tar.NewReader(dec)
	var files []FileInfo
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, cache.NewOperationalError(err, "reading tar stream from %s", path)
		}
		files = append(files, FileInfo{
			Name: hdr.Name,
			Size: hdr.Size,
			Dir:  hdr.Typeflag == tar.TypeDir,
		})
	}
	return files, nil
}
