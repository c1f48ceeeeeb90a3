// Package check provides system diagnostics (the check command) and
// pre-run dependency validation (CheckDeps) for ncdump and the run catalog.
package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/durack1/durolib/internal/catalog"
	"github.com/durack1/durolib/internal/config"
)

// Sentinel errors returned by CheckDeps and CatalogWritable.
var (
	ErrNcdumpNotFound    = errors.New("ncdump not found")
	ErrCatalogUnwritable = errors.New("catalog not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// netCDFExtensions are the inputs that need ncdump.
var netCDFExtensions = map[string]bool{".nc": true, ".nc4": true, ".cdf": true}

var reLibraryVersion = regexp.MustCompile(`netcdf library version (\S+)`)

// RunCheck runs the interactive check flow and returns the number of
// failed checks. It does not stop on failure.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) int {
	log.Info("=== System Check ===")

	failed := 0
	if !checkNcdump(ctx, cfg.NcdumpPath, log) {
		failed++
	}
	if !checkCatalog(ctx, cfg.Catalog, log) {
		failed++
	}
	if !checkInputDir(cfg, log) {
		failed++
	}
	return failed
}

// checkNcdump verifies the ncdump binary resolves and logs its library
// version. ncdump prints its version banner when run without arguments.
func checkNcdump(ctx context.Context, bin string, log Logger) bool {
	path, err := exec.LookPath(bin)
	if err != nil {
		log.Error("ncdump not found (%s); netCDF inputs cannot be read", bin)
		return false
	}
	out, _ := exec.CommandContext(ctx, path).CombinedOutput()
	if m := reLibraryVersion.FindSubmatch(out); m != nil {
		log.Success("ncdump: %s (netCDF %s)", path, m[1])
	} else {
		log.Success("ncdump: %s", path)
	}
	return true
}

func checkCatalog(ctx context.Context, path string, log Logger) bool {
	if path == "" {
		log.Info("Catalog: disabled")
		return true
	}
	if err := CatalogWritable(ctx, path); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Catalog: %s", path)
	return true
}

func checkInputDir(cfg *config.Config, log Logger) bool {
	if cfg.InputDir == "" {
		log.Info("Input directory: not set")
		return true
	}
	fi, err := os.Stat(cfg.InputDir)
	if err != nil || !fi.IsDir() {
		log.Error("Input directory not found: %s", cfg.InputDir)
		return false
	}
	log.Success("Input directory: %s (extensions %s)", cfg.InputDir, strings.Join(cfg.Extensions, " "))
	return true
}

// CatalogWritable opens, creating if needed, the catalog at path and runs
// a read against it.
func CatalogWritable(ctx context.Context, path string) error {
	c, err := catalog.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCatalogUnwritable, path, err)
	}
	defer c.Close()
	if _, err := c.ListRuns(ctx, 1); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCatalogUnwritable, path, err)
	}
	return nil
}

// CheckDeps is the pre-run validation: when any path is a netCDF file the
// configured ncdump binary must resolve. CDML-only runs need nothing.
func CheckDeps(cfg *config.Config, paths []string) error {
	for _, p := range paths {
		if !netCDFExtensions[strings.ToLower(filepath.Ext(p))] {
			continue
		}
		if _, err := exec.LookPath(cfg.NcdumpPath); err != nil {
			return fmt.Errorf("%w: %s (needed for %s)", ErrNcdumpNotFound, cfg.NcdumpPath, filepath.Base(p))
		}
		return nil
	}
	return nil
}
