// Package correlationvector implements hierarchical correlation vectors,
// the compact tracing identifiers carried between services in the MS-CV
// metadata field. A vector renders as a random base64 base followed by dot
// separated counter segments; each hop derives its own vector from the one
// it received, and the rendered value stays within a hard length ceiling by
// freezing instead of growing.
package correlationvector

import (
	"strconv"
	"strings"
)

const (
	// HeaderName is the canonical metadata field correlation vectors travel in.
	HeaderName = "MS-CV"

	// TerminationSign is appended to a vector that must not grow any further.
	TerminationSign = "!"

	// base64Chars is the alphabet fresh bases are drawn from.
	base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// maxExtension is the ceiling of the extension counter.
	maxExtension = 1<<32 - 1
)

// Vector is one correlation vector: a base, a sibling counter and the
// version that bounds both. A Vector belongs to a single logical operation;
// Increment mutates it without internal locking.
type Vector struct {
	base      string
	extension uint32
	version   Version
	immutable bool
}

// Base returns the leading segment chain: the random root plus any spin
// segments, without the trailing extension.
func (v *Vector) Base() string { return v.base }

// Extension returns the trailing sibling counter.
func (v *Vector) Extension() uint32 { return v.extension }

// Version returns the encoding version the vector was built under.
func (v *Vector) Version() Version { return v.version }

// Immutable reports whether the vector is frozen. A frozen vector renders
// with a trailing termination sign and never changes again.
func (v *Vector) Immutable() bool { return v.immutable }

// Value renders the vector for the wire: base, dot, extension, and the
// termination sign when frozen.
func (v *Vector) Value() string {
	value := v.base + "." + strconv.FormatUint(uint64(v.extension), 10)
	if v.immutable {
		value += TerminationSign
	}
	return value
}

// String renders like Value.
func (v *Vector) String() string { return v.Value() }

// Increment advances the extension by one and returns the new rendering.
// Frozen vectors and counters already at the maximum are left as they are.
// If one more increment would push the rendering past the version's ceiling
// the vector freezes with its current extension instead.
func (v *Vector) Increment() string {
	if v.immutable || v.extension == maxExtension {
		return v.Value()
	}
	if oversized(v.base, v.extension+1, v.version) {
		v.immutable = true
		return v.Value()
	}
	v.extension++
	return v.Value()
}

// MarshalText renders the vector for text based encodings.
func (v *Vector) MarshalText() ([]byte, error) {
	return []byte(v.Value()), nil
}

// UnmarshalText rebuilds the vector from a rendered value, with the same
// lenient rules as Parse.
func (v *Vector) UnmarshalText(text []byte) error {
	*v = *Parse(string(text))
	return nil
}

// isTerminated reports whether a wire value carries the termination sign.
func isTerminated(value string) bool {
	return strings.HasSuffix(value, TerminationSign)
}

// oversized reports whether base joined with extension would render longer
// than the version's ceiling. This gates every operation that grows a
// vector.
func oversized(base string, extension uint32, version Version) bool {
	return len(base)+1+decimalDigits(extension) > version.MaxLength()
}

func decimalDigits(n uint32) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}
