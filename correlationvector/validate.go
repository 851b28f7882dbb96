package correlationvector

import (
	"strconv"
	"strings"
)

// Validate checks that value is a well formed correlation vector of the
// given version: non-empty, within the version's length ceiling, a leading
// segment of exactly the version's base length, and at least one numeric
// extension segment. A single trailing termination sign is allowed and
// ignored.
//
// Parse never validates on its own; generators opt in with
// StrictValidation, and tooling can call this directly.
func Validate(value string, version Version) error {
	trimmed := strings.TrimSuffix(value, TerminationSign)
	if trimmed == "" || len(trimmed) > version.MaxLength() {
		return &FormatError{Reason: FormatNullOrOversized, Value: value}
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 || len(parts[0]) != version.BaseLength() {
		return &FormatError{Reason: FormatBadBaseLength, Value: value}
	}

	// Spin segments may occupy a full uint64; only the trailing extension
	// is capped at uint32, and that by Parse rather than here.
	for _, part := range parts[1:] {
		if _, err := strconv.ParseUint(part, 10, 64); err != nil {
			return &FormatError{Reason: FormatBadExtensionValue, Value: value}
		}
	}

	return nil
}
