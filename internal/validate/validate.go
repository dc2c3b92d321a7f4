package validate

import (
	"fmt"
	"strings"
	"time"

	"eventscheduler/internal/timeparse"
)

// Validation messages are part of the API contract; handlers join them with
// ", " into the error body.
const (
	MsgTitleInvalid       = "Title must be a non-empty string."
	MsgDescriptionInvalid = "Description must be a string."
)

var requiredFields = []string{"title", "description", "start_time", "end_time"}

// Patch carries the normalized values of whichever fields the payload
// supplied. A nil pointer means the field was either not supplied or failed
// validation, so callers can merge it onto an existing event safely.
type Patch struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// Validate checks a decoded JSON payload for event creation (isUpdate=false,
// all fields required) or partial update (isUpdate=true, only supplied fields
// checked). It returns the normalized patch and the deduplicated list of
// human-readable error messages; the patch is only trustworthy when the list
// is empty. The start<end ordering rule is deliberately not checked here —
// the store must apply it to the merged result.
func Validate(data map[string]any, isUpdate bool) (Patch, []string) {
	var patch Patch
	var errs []string

	if !isUpdate {
		for _, field := range requiredFields {
			if _, ok := data[field]; !ok {
				errs = append(errs, fmt.Sprintf("Missing required field: '%s'", field))
			}
		}
	}

	if raw, ok := data["title"]; ok {
		title, isString := raw.(string)
		if !isString || strings.TrimSpace(title) == "" {
			errs = append(errs, MsgTitleInvalid)
		} else {
			trimmed := strings.TrimSpace(title)
			patch.Title = &trimmed
		}
	}

	if raw, ok := data["description"]; ok {
		desc, isString := raw.(string)
		if !isString {
			errs = append(errs, MsgDescriptionInvalid)
		} else {
			trimmed := strings.TrimSpace(desc)
			patch.Description = &trimmed
		}
	}

	patch.StartTime, errs = checkTime(data, "start_time", errs)
	patch.EndTime, errs = checkTime(data, "end_time", errs)

	return patch, dedup(errs)
}

func checkTime(data map[string]any, field string, errs []string) (*time.Time, []string) {
	raw, ok := data[field]
	if !ok {
		return nil, errs
	}
	text, isString := raw.(string)
	if !isString {
		return nil, append(errs, fmt.Sprintf("%s must be a string.", field))
	}
	t, err := timeparse.Parse(field, text)
	if err != nil {
		return nil, append(errs, fmt.Sprintf("Invalid %s format. Use ISO 8601 (YYYY-MM-DDTHH:MM:SS).", field))
	}
	return &t, errs
}

func dedup(msgs []string) []string {
	if len(msgs) < 2 {
		return msgs
	}
	seen := make(map[string]struct{}, len(msgs))
	out := msgs[:0]
	for _, m := range msgs {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
