package archive

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/stash/internal/cache"
)

// Fixed pipeline command templates. Pack streams tar into zstd; unpack
// streams zstd into tar. Both tools must be present on the host.
func packCommands(parent, base, dest string) (archiver, compressor []string) {
	return []string{"tar", "-cf", "-", "-C", parent, base},
		[]string{"zstd", "-q", "-f", "-o", dest}
}

func unpackCommands(src, destParent string) (compressor, archiver []string) {
	return []string{"zstd", "-dc", src},
		[]string{"tar", "-xf", "-", "-C", destParent}
}

// Save validates its inputs, packs the first of paths, and writes the archive
// into c's directory under key. Additional paths are accepted but ignored;
// the restore destination depends on exactly one path being meaningful, so
// this is a contract, not an omission. Returns the entry path on success.
func Save(ctx context.Context, c *cache.Cache, paths []string, key string, log zerolog.Logger) (string, error) {
	if err := cache.ValidateKey(key); err != nil {
		return "", err
	}
	if err := cache.ValidatePaths(paths); err != nil {
		return "", err
	}
	dest := c.EntryPath(key)
	if err := Pack(ctx, paths[0], dest, log); err != nil {
		return "", err
	}
	return dest, nil
}

// Restore validates its inputs, resolves primary and restoreKeys against c,
// and unpacks the resolved archive into the parent directory of the first
// path, overwriting existing files. A miss returns (nil, nil) and touches
// nothing. Match.Exact distinguishes a primary-key hit from a fallback hit.
func Restore(ctx context.Context, c *cache.Cache, paths []string, primary string, restoreKeys []string, log zerolog.Logger) (*cache.Match, error) {
	if err := cache.ValidateKey(primary); err != nil {
		return nil, err
	}
	for _, k := range restoreKeys {
		if err := cache.ValidateKey(k); err != nil {
			return nil, err
		}
	}
	if err := cache.ValidatePaths(paths); err != nil {
		return nil, err
	}

	m, err := c.Resolve(primary, restoreKeys)
	if err != nil || m == nil {
		return nil, err
	}

	dest := filepath.Dir(filepath.Clean(paths[0]))
	if err := Unpack(ctx, m.Entry.Path, dest, log); err != nil {
		return nil, err
	}
	return m, nil
}

// Pack archives the contents of dir into dest. The archive carries a single
// top-level directory named after dir's basename, so unpacking into dir's
// parent recreates it in place. The pipeline writes to a temporary file that
// is renamed over dest only on success, so a concurrent restore never sees a
// partially written entry.
func Pack(ctx context.Context, dir, dest string, log zerolog.Logger) error {
	cacheDir := filepath.Dir(dest)
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return cache.NewOperationalError(err, "creating cache directory %s", cacheDir)
	}

	clean := filepath.Clean(dir)
	parent := filepath.Dir(clean)
	base := filepath.Base(clean)

	tmp := dest + ".tmp"
	archiver, compressor := packCommands(parent, base, tmp)
	if err := runPipeline(ctx, archiver, compressor, log); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dest); err != nil {
		return cache.NewOperationalError(err, "publishing archive %s", dest)
	}
	return nil
}

// Unpack extracts the archive at src into destParent, overwriting any
// existing files at the destination.
func Unpack(ctx context.Context, src, destParent string, log zerolog.Logger) error {
	compressor, archiver := unpackCommands(src, destParent)
	return runPipeline(ctx, compressor, archiver, log)
}

// runPipeline runs producer | consumer, relaying each diagnostic line to the
// logging sink as it arrives: stderr from both stages at warn level, the
// consumer's stdout at info level. It returns after both processes have
// exited; a non-zero exit from either stage is an operational error. No
// internal timeout: a hung tool hangs the call.
func runPipeline(ctx context.Context, producerArgs, consumerArgs []string, log zerolog.Logger) error {
	producer := exec.CommandContext(ctx, producerArgs[0], producerArgs[1:]...)
	consumer := exec.CommandContext(ctx, consumerArgs[0], consumerArgs[1:]...)

	log.Debug().
		Str("cmd", strings.Join(producerArgs, " ")+" | "+strings.Join(consumerArgs, " ")).
		Msg("running pipeline")

	pr, pw := io.Pipe()
	producer.Stdout = pw
	consumer.Stdin = pr

	prodErr := newLineWriter(func(line string) { log.Warn().Str("tool", producerArgs[0]).Msg(line) })
	consErr := newLineWriter(func(line string) { log.Warn().Str("tool", consumerArgs[0]).Msg(line) })
	consOut := newLineWriter(func(line string) { log.Info().Str("tool", consumerArgs[0]).Msg(line) })
	producer.Stderr = prodErr
	consumer.Stderr = consErr
	consumer.Stdout = consOut

	if err := producer.Start(); err != nil {
		return cache.NewOperationalError(err, "starting %s", producerArgs[0])
	}
	if err := consumer.Start(); err != nil {
		_ = producer.Process.Kill()
		_ = producer.Wait()
		return cache.NewOperationalError(err, "starting %s", consumerArgs[0])
	}

	var killedProducer bool
	var g errgroup.Group
	g.Go(func() error {
		err := consumer.Wait()
		// If the consumer dies early, unblock the producer's stdout writes
		// and take the producer down with it.
		pr.CloseWithError(io.ErrClosedPipe)
		if err != nil {
			killedProducer = true
			_ = producer.Process.Kill()
		}
		return err
	})

	producerErr := producer.Wait()
	pw.Close() // EOF for the consumer
	consumerErr := g.Wait()

	prodErr.flush()
	consErr.flush()
	consOut.flush()

	if producerErr != nil && !killedProducer {
		return cache.NewOperationalError(producerErr, "%s failed", producerArgs[0])
	}
	if consumerErr != nil {
		return cache.NewOperationalError(consumerErr, "%s failed", consumerArgs[0])
	}
	if producerErr != nil {
		return cache.NewOperationalError(producerErr, "%s failed", producerArgs[0])
	}
	return nil
}

// lineWriter buffers written bytes and dispatches each complete line to emit.
// Each instance is written to by a single stream.
type lineWriter struct {
	buf  []byte
	emit func(string)
}

func newLineWriter(emit func(string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	lw.buf = append(lw.buf, p...)
	for {
		i := bytes.IndexByte(lw.buf, '\n')
		if i < 0 {
			break
		}
		lw.emit(string(lw.buf[:i]))
		lw.buf = lw.buf[i+1:]
	}
	return len(p), nil
}

// flush emits any trailing partial line.
func (lw *lineWriter) flush() {
	if len(lw.buf) > 0 {
		lw.emit(string(lw.buf))
		lw.buf = nil
	}
}
