package probe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultNcdump is the header dump tool looked up on PATH.
const DefaultNcdump = "ncdump"

// Prober reads creation dates from CDML and netCDF datasets. The zero
// value uses [DefaultNcdump].
type Prober struct {
	NcdumpPath string
}

// NewProber returns a Prober that runs ncdumpPath for netCDF headers. An
// empty path selects [DefaultNcdump].
func NewProber(ncdumpPath string) *Prober {
	return &Prober{NcdumpPath: ncdumpPath}
}

// CreationDate opens path read-only, reads its creation_date global
// attribute and releases the handle before returning. Every failure is an
// [*AccessError].
func (p *Prober) CreationDate(ctx context.Context, path string) (Date, error) {
	raw, err := p.rawCreationDate(ctx, path)
	if err != nil {
		return 0, &AccessError{Path: path, Err: err}
	}
	d, err := ParseCreationDate(raw)
	if err != nil {
		return 0, &AccessError{Path: path, Err: err}
	}
	return d, nil
}

func (p *Prober) rawCreationDate(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return readCDML(path)
	case ".nc", ".nc4", ".cdf":
		return readNetCDFHeader(ctx, p.ncdump(), path)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

func (p *Prober) ncdump() string {
	if p.NcdumpPath == "" {
		return DefaultNcdump
	}
	return p.NcdumpPath
}
