package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/durack1/durolib/internal/term"
)

const (
	labelKey     = "label"
	labelSuccess = "SUCCESS"
	timeLayout   = "2006-01-02 15:04:05"
)

// lineFormatter renders "2006-01-02 15:04:05 [LEVEL] message key=value".
type lineFormatter struct {
	palette term.Palette
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	label := levelLabel(e.Level)
	if v, ok := e.Data[labelKey].(string); ok {
		label = v
	}

	var b bytes.Buffer
	b.WriteString(e.Time.Format(timeLayout))
	b.WriteByte(' ')
	b.WriteString(f.palette.Wrap(f.color(label), "["+label+"]"))
	b.WriteByte(' ')
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k != labelKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *lineFormatter) color(label string) string {
	switch label {
	case "ERROR", "FATAL", "PANIC":
		return f.palette.Red
	case "WARN":
		return f.palette.Yellow
	case labelSuccess:
		return f.palette.Green
	case "DEBUG", "TRACE":
		return f.palette.Cyan
	}
	return f.palette.Blue
}

func levelLabel(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(l.String())
}
