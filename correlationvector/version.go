package correlationvector

import (
	"fmt"
	"strings"
)

// Version selects the encoding rules for a vector: how long the random base
// is and how long the rendered value may grow before it freezes.
type Version int

const (
	// V1 vectors carry a 16 character base and may grow to 63 characters.
	V1 Version = 1
	// V2 vectors carry a 22 character base and may grow to 127 characters.
	V2 Version = 2
)

// DefaultVersion is used whenever a version is neither given nor inferable.
const DefaultVersion = V1

const (
	v1BaseLength = 16
	v1MaxLength  = 63
	v2BaseLength = 22
	v2MaxLength  = 127
)

// BaseLength returns the number of characters in a generated base of this
// version.
func (v Version) BaseLength() int {
	if v == V2 {
		return v2BaseLength
	}
	return v1BaseLength
}

// MaxLength returns the rendered length ceiling for this version, not
// counting the termination sign.
func (v Version) MaxLength() int {
	if v == V2 {
		return v2MaxLength
	}
	return v1MaxLength
}

func (v Version) String() string {
	if v == V2 {
		return "v2"
	}
	return "v1"
}

// ParseVersion maps the spellings "v1" and "v2" (or bare "1" and "2") onto
// a Version.
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(s) {
	case "v1", "1":
		return V1, nil
	case "v2", "2":
		return V2, nil
	}
	return 0, fmt.Errorf("unknown correlation vector version %q", s)
}

// InferVersion guesses the version of a received value from the length of
// its leading segment. Unrecognized shapes fall back to V1 rather than
// failing.
func InferVersion(value string) Version {
	switch strings.Index(value, ".") {
	case v1BaseLength:
		return V1
	case v2BaseLength:
		return V2
	}
	return V1
}
