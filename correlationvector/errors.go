package correlationvector

import "fmt"

// FormatReason classifies why a received value failed strict validation.
type FormatReason string

const (
	// FormatNullOrOversized marks values that are empty or longer than the
	// version allows.
	FormatNullOrOversized FormatReason = "null_or_oversized"
	// FormatBadBaseLength marks values whose leading segment does not match
	// the version's base length, or that carry no extension at all.
	FormatBadBaseLength FormatReason = "bad_base_length"
	// FormatBadExtensionValue marks values with a segment that does not
	// parse as a non-negative integer.
	FormatBadExtensionValue FormatReason = "bad_extension_value"
)

// FormatError reports a strict validation failure. Reason names the rule
// that was broken and Value carries the offending input, so callers can
// branch with errors.As.
type FormatError struct {
	Reason FormatReason
	Value  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("correlation vector %q is invalid: %s", e.Value, e.Reason)
}
