package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/durack1/durolib/internal/config"
)

// CompressedSuffix marks report files written through zstd.
const CompressedSuffix = ".zst"

// IsStdout reports whether path designates standard output.
func IsStdout(path string) bool { return path == "" || path == "-" }

// FormatFromPath infers a report format from the file extension, ignoring
// a trailing [CompressedSuffix]. Unknown extensions are text.
func FormatFromPath(path string) config.OutputFormat {
	switch strings.ToLower(filepath.Ext(strings.TrimSuffix(path, CompressedSuffix))) {
	case ".json":
		return config.FormatJSON
	case ".yaml", ".yml":
		return config.FormatYAML
	case ".toml":
		return config.FormatTOML
	}
	return config.FormatText
}

// WriteFile writes doc to path, creating parent directories. The write is
// staged in a temporary file and renamed into place.
func WriteFile(path string, format config.OutputFormat, doc Document) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	var w io.Writer = tmp
	var zw *zstd.Encoder
	if strings.HasSuffix(path, CompressedSuffix) {
		zw, err = zstd.NewWriter(tmp)
		if err != nil {
			return err
		}
		w = zw
	}
	if err = Write(w, format, doc); err != nil {
		if zw != nil {
			_ = zw.Close()
		}
		return fmt.Errorf("encode report: %w", err)
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return err
		}
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ReadFile reads a report written by [WriteFile].
func ReadFile(path string, format config.OutputFormat) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, CompressedSuffix) {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return Document{}, err
		}
		defer zr.Close()
		r = zr
	}
	return Read(r, format)
}
