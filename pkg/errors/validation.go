package errors

import (
	"slices"
	"strings"
)

// ValidateChoice checks that value is one of allowed, comparing case-insensitively
// after trimming whitespace. It returns the normalized (lower-case) value.
//
// An empty value is rejected; callers that want a default must substitute it
// before validating. The returned error carries code and names the field and
// the accepted values so it can be shown to a user unchanged.
func ValidateChoice(code Code, field, value string, allowed ...string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", New(code, "%s cannot be empty", field)
	}
	if !slices.Contains(allowed, v) {
		return "", New(code, "invalid %s %q (want one of: %s)", field, value, strings.Join(allowed, ", "))
	}
	return v, nil
}

// ValidateNonNegative rejects negative integer settings such as depth limits.
func ValidateNonNegative(code Code, field string, value int) error {
	if value < 0 {
		return New(code, "%s must be >= 0, got %d", field, value)
	}
	return nil
}
