package probe

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

func readCDML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ParseCDML(f)
}

// ParseCDML scans a CDML document for the dataset-level creation_date.
// The value may be an attribute of the root <dataset> element or the text
// of a child <attr name="creation_date"> element. Reading stops at the
// first hit. Exported for testing without files on disk.
func ParseCDML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", ErrNoCreationDate
		}
		if err != nil {
			return "", fmt.Errorf("parse CDML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case depth == 1 && t.Name.Local == "dataset":
				if v, ok := attrValue(t, "creation_date"); ok {
					return v, nil
				}
			case depth == 2 && t.Name.Local == "attr":
				if name, _ := attrValue(t, "name"); name != "creation_date" {
					continue
				}
				var v struct {
					Text string `xml:",chardata"`
				}
				if err := dec.DecodeElement(&v, &t); err != nil {
					return "", fmt.Errorf("parse CDML: %w", err)
				}
				return strings.TrimSpace(v.Text), nil
			}
		case xml.EndElement:
			depth--
			if depth == 0 {
				return "", ErrNoCreationDate
			}
		}
	}
}

func attrValue(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
