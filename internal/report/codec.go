package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/durack1/durolib/internal/config"
)

// Write encodes doc to w in the given format.
func Write(w io.Writer, format config.OutputFormat, doc Document) error {
	switch format {
	case config.FormatText, "":
		bw := bufio.NewWriter(w)
		for _, p := range doc.Files {
			if _, err := bw.WriteString(p + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("unsupported report format %q", format)
}

// Read decodes a report previously produced by [Write]. Text reports yield
// a Document with only Files set.
func Read(r io.Reader, format config.OutputFormat) (Document, error) {
	var doc Document
	switch format {
	case config.FormatText, "":
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				doc.Files = append(doc.Files, line)
			}
		}
		return doc, sc.Err()
	case config.FormatJSON:
		err := json.NewDecoder(r).Decode(&doc)
		return doc, err
	case config.FormatYAML:
		err := yaml.NewDecoder(r).Decode(&doc)
		return doc, err
	case config.FormatTOML:
		_, err := toml.NewDecoder(r).Decode(&doc)
		return doc, err
	}
	return doc, fmt.Errorf("unsupported report format %q", format)
}
