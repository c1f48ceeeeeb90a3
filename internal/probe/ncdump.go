package probe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// Global attributes are printed with a bare leading colon; variable
// attributes carry the variable name before it.
var reGlobalCreationDate = regexp.MustCompile(`(?m)^\s*:creation_date\s*=\s*"([^"]*)"\s*;`)

// Pre-compiled regexes for classifying ncdump stderr. Checked in order by
// classifyNcdumpFailure; the first match wins.
var (
	reNcdumpMissingFile = regexp.MustCompile(`No such file or directory`)
	reNcdumpNotNetCDF   = regexp.MustCompile(`(?i)NetCDF: (Unknown file format|Not a valid ID|HDF error)`)
)

// readNetCDFHeader runs `ncdump -h path`. stderr is captured silently and
// used to classify failures.
func readNetCDFHeader(ctx context.Context, ncdump, path string) (string, error) {
	cmd := exec.CommandContext(ctx, ncdump, "-h", path)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", classifyNcdumpFailure(ncdump, stderr.String(), err)
	}
	return ParseHeader(out)
}

// classifyNcdumpFailure maps a failed ncdump run onto os.ErrNotExist or
// ErrUnsupportedFormat where stderr allows, keeping the message.
func classifyNcdumpFailure(ncdump, stderr string, err error) error {
	msg := strings.TrimSpace(stderr)
	switch {
	case reNcdumpMissingFile.MatchString(msg):
		return fmt.Errorf("%w: %s", os.ErrNotExist, msg)
	case reNcdumpNotNetCDF.MatchString(msg):
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, msg)
	case msg != "":
		return fmt.Errorf("%s -h: %w: %s", ncdump, err, msg)
	}
	return fmt.Errorf("%s -h: %w", ncdump, err)
}

// ParseHeader extracts the global creation_date from `ncdump -h` output.
// Exported for testing without a real ncdump binary.
func ParseHeader(data []byte) (string, error) {
	m := reGlobalCreationDate.FindSubmatch(data)
	if m == nil {
		return "", ErrNoCreationDate
	}
	return string(m[1]), nil
}
