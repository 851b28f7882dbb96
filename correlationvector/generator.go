package correlationvector

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options configure a Generator. The zero value yields V1 vectors with
// lenient validation, default spin parameters, crypto/rand entropy and the
// system clock.
type Options struct {
	// Version is the version New mints and Parse falls back to. Zero means V1.
	Version Version

	// StrictValidation makes Extend and Spin reject malformed input with a
	// FormatError instead of reinterpreting it.
	StrictValidation bool

	// Spin overrides the spin segment parameters. Nil means
	// DefaultSpinParameters.
	Spin *SpinParameters

	// Entropy is the source of random bytes for bases and spin segments.
	// Nil means crypto/rand.Reader.
	Entropy io.Reader

	// Now is the clock spin segments sample. Nil means time.Now.
	Now func() time.Time
}

// Generator mints and derives correlation vectors under one fixed
// configuration. A Generator is safe for concurrent use as long as its
// entropy source is; the vectors it produces are not.
type Generator struct {
	version Version
	strict  bool
	spin    SpinParameters
	entropy io.Reader
	now     func() time.Time
}

// NewGenerator builds a Generator from opts.
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		version: opts.Version,
		strict:  opts.StrictValidation,
		spin:    DefaultSpinParameters(),
		entropy: opts.Entropy,
		now:     opts.Now,
	}
	if g.version != V1 && g.version != V2 {
		g.version = DefaultVersion
	}
	if opts.Spin != nil {
		g.spin = *opts.Spin
	}
	if g.entropy == nil {
		g.entropy = rand.Reader
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// New mints a fresh vector at the generator's default version: a random
// base and a zero extension.
func (g *Generator) New() *Vector {
	return g.NewWithVersion(g.version)
}

// NewWithVersion mints a fresh vector at an explicit version.
func (g *Generator) NewWithVersion(version Version) *Vector {
	if version != V1 && version != V2 {
		version = DefaultVersion
	}
	return &Vector{base: g.randomBase(version), version: version}
}

// NewFromUUID mints a V2 vector whose base is the unpadded base64 encoding
// of the UUID's sixteen bytes, which is exactly the V2 base length.
func (g *Generator) NewFromUUID(id uuid.UUID) *Vector {
	return &Vector{base: base64.RawStdEncoding.EncodeToString(id[:]), version: V2}
}

// Extend derives the vector for a new operation from a received wire value:
// the whole received value becomes the base of a vector with a zero
// extension. Terminated input passes through frozen, and input too long to
// take another segment freezes instead of growing. With StrictValidation
// malformed input yields a FormatError.
func (g *Generator) Extend(received string) (*Vector, error) {
	if isTerminated(received) {
		return g.Parse(received), nil
	}

	version := InferVersion(received)
	if g.strict {
		if err := Validate(received, version); err != nil {
			return nil, err
		}
	}

	if oversized(received, 0, version) {
		return g.Parse(received + TerminationSign), nil
	}

	return &Vector{base: received, version: version}, nil
}

// Spin derives a vector whose base is the received value plus a segment
// mixing the clock with fresh entropy, so values spun from the same parent
// sort roughly by when they were created. Terminated input passes through
// frozen, and when the new segment does not fit the received value freezes
// instead. With StrictValidation malformed input yields a FormatError.
func (g *Generator) Spin(received string) (*Vector, error) {
	if isTerminated(received) {
		return g.Parse(received), nil
	}

	version := InferVersion(received)
	if g.strict {
		if err := Validate(received, version); err != nil {
			return nil, err
		}
	}

	base := received + "." + strconv.FormatUint(g.spinSegment(), 10)
	if oversized(base, 0, version) {
		return g.Parse(received + TerminationSign), nil
	}

	return &Vector{base: base, version: version}, nil
}

// Parse rebuilds a vector from a wire value. Empty or structurally
// unparseable input falls back to a fresh vector; otherwise the value
// splits at its last dot, the version is inferred from the whole value and
// a trailing termination sign carries over as the immutable flag.
func (g *Generator) Parse(value string) *Vector {
	if value == "" {
		return g.New()
	}

	lastDot := strings.LastIndex(value, ".")
	if lastDot < 1 {
		return g.New()
	}

	tail := strings.TrimSuffix(value[lastDot+1:], TerminationSign)
	extension, err := strconv.ParseUint(tail, 10, 32)
	if err != nil {
		return g.New()
	}

	return &Vector{
		base:      value[:lastDot],
		extension: uint32(extension),
		version:   InferVersion(value),
		immutable: isTerminated(value),
	}
}

// spinSegment derives the value Spin appends: the clock's 100ns tick count
// shifted down by the interval, with the entropy bytes in the low bits,
// truncated to the parameters' total width.
func (g *Generator) spinSegment() uint64 {
	value := uint64(g.now().UnixNano()/100) >> g.spin.ticksToDrop()

	if bytes := g.spin.entropyBytes(); bytes > 0 {
		bits := uint(bytes * 8)
		value = value<<bits | g.randomBits(bits-1)
	}

	if total := g.spin.totalBits(); total < 64 {
		value &= 1<<total - 1
	}

	return value
}

// randomBits returns a uniformly random value of the given width, at most
// 63 bits.
func (g *Generator) randomBits(bits uint) uint64 {
	buf := make([]byte, (bits+7)/8)
	g.fill(buf)

	var value uint64
	for _, b := range buf {
		value = value<<8 | uint64(b)
	}
	return value & (1<<bits - 1)
}

// randomBase draws a fresh base of the version's length from the base64
// alphabet.
func (g *Generator) randomBase(version Version) string {
	buf := make([]byte, version.BaseLength())
	g.fill(buf)

	for i, b := range buf {
		buf[i] = base64Chars[int(b)%len(base64Chars)]
	}
	return string(buf)
}

// fill reads random bytes from the entropy source. A failing source
// degrades to time seeded bytes rather than failing vector creation.
func (g *Generator) fill(buf []byte) {
	if _, err := io.ReadFull(g.entropy, buf); err == nil {
		return
	}

	seed := uint64(g.now().UnixNano())
	for i := range buf {
		seed = seed*6364136223846793005 + 1442695040888963407
		buf[i] = byte(seed >> 56)
	}
}

// defaultGenerator backs the package level helpers: V1, lenient validation,
// default spin parameters.
var defaultGenerator = NewGenerator(Options{})

// New mints a fresh V1 vector.
func New() *Vector { return defaultGenerator.New() }

// NewWithVersion mints a fresh vector at an explicit version.
func NewWithVersion(version Version) *Vector { return defaultGenerator.NewWithVersion(version) }

// NewFromUUID mints a V2 vector seeded from a UUID.
func NewFromUUID(id uuid.UUID) *Vector { return defaultGenerator.NewFromUUID(id) }

// Extend derives a vector for a new operation from a received wire value.
func Extend(received string) (*Vector, error) { return defaultGenerator.Extend(received) }

// Spin derives a time and entropy stamped vector from a received wire value.
func Spin(received string) (*Vector, error) { return defaultGenerator.Spin(received) }

// Parse rebuilds a vector from a wire value.
func Parse(value string) *Vector { return defaultGenerator.Parse(value) }
