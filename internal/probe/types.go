package probe

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Date is a creation date normalised to the integer YYYYMMDD. Larger is
// more recent.
type Date int

// Year returns the four-digit year.
func (d Date) Year() int { return int(d) / 10000 }

func (d Date) String() string { return fmt.Sprintf("%08d", int(d)) }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	n := int(d)
	return time.Date(n/10000, time.Month(n/100%100), n%100, 0, 0, 0, 0, time.UTC)
}

var (
	reYear      = regexp.MustCompile(`^[0-9]{4}$`)
	reDateDigit = regexp.MustCompile(`^[0-9]{8}$`)
)

// ParseCreationDate normalises a creation_date attribute value.
//
// Most archives store "2012-02-13T00:40:33Z", which yields 20120213. Some
// older files store free text such as "Thu Aug 11 22:49:09 EST 2011";
// when the value starts with a letter only its trailing year is kept and
// the result is YYYY0101.
func ParseCreationDate(raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrBadCreationDate)
	}

	if r, _ := utf8.DecodeRuneInString(s); unicode.IsLetter(r) {
		fields := strings.Fields(s)
		year := fields[len(fields)-1]
		if !reYear.MatchString(year) {
			return 0, fmt.Errorf("%w: %q has no trailing year", ErrBadCreationDate, raw)
		}
		n, _ := strconv.Atoi(year)
		return Date(n*10000 + 101), nil
	}

	datePart := s
	if i := strings.IndexAny(s, "T "); i >= 0 {
		datePart = s[:i]
	}
	digits := strings.ReplaceAll(datePart, "-", "")
	if !reDateDigit.MatchString(digits) {
		return 0, fmt.Errorf("%w: %q", ErrBadCreationDate, raw)
	}
	if _, err := time.Parse("20060102", digits); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCreationDate, raw)
	}
	n, _ := strconv.Atoi(digits)
	return Date(n), nil
}
