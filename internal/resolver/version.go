package resolver

import (
	"regexp"
	"strconv"
)

// Ordinal scaling for version tokens. Changing these values changes which
// duplicate is selected in existing archives.
const (
	// DateStampScale lifts any v<digits> version above every plain integer.
	DateStampScale = 1e9
	// SequenceScale lifts single-digit publication numbers above larger,
	// date-like integers.
	SequenceScale = 1e8
	sequenceLimit = 10

	LatestOrdinal  = 0
	UnknownOrdinal = -1
)

const latestToken = "latest"

var reDateStamp = regexp.MustCompile(`v([0-9]+)`)

// VersionOrdinal maps a version token to a comparable value; higher is
// newer. The boolean is false for tokens that fit none of the known
// encodings, which rank below "latest".
func VersionOrdinal(token string) (float64, bool) {
	if token == latestToken {
		return LatestOrdinal, true
	}
	if n, err := strconv.ParseUint(token, 10, 64); err == nil {
		v := float64(n)
		if n < sequenceLimit {
			v *= SequenceScale
		}
		return v, true
	}
	if m := reDateStamp.FindStringSubmatch(token); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return n * DateStampScale, true
		}
	}
	return UnknownOrdinal, false
}
