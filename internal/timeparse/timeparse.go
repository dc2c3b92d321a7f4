package timeparse

import (
	"fmt"
	"strings"
	"time"
)

// Accepted forms of ISO 8601 extended: seconds precision, optional fractional
// seconds, optional numeric UTC offset (or Z).
var layouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
}

// ParseError reports which field carried the unparsable timestamp.
type ParseError struct {
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s format: %q is not ISO 8601", e.Field, e.Value)
}

// Parse converts ISO 8601 text into an instant. Offset-bearing values are
// normalized to UTC; naive values are taken as UTC so all instants stay
// comparable.
func Parse(field, text string) (time.Time, error) {
	for _, layout := range layouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ParseError{Field: field, Value: text}
}

// Format renders an instant as naive ISO 8601 with seconds precision,
// appending the fractional part only when non-zero. Round-trips with Parse.
func Format(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05")
	if ns := t.Nanosecond(); ns != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", ns), "0")
	}
	return s
}
