package correlationvector

// SpinCounterInterval selects which bits of the wall clock feed a spin
// segment, trading tick rate against how soon the counter wraps.
type SpinCounterInterval string

const (
	// SpinCounterIntervalCoarse drops the low 24 bits of the 100ns tick
	// count, so the counter ticks roughly every 1.67 seconds.
	SpinCounterIntervalCoarse SpinCounterInterval = "coarse"
	// SpinCounterIntervalFine drops the low 16 bits, so the counter ticks
	// roughly every 6.5 milliseconds.
	SpinCounterIntervalFine SpinCounterInterval = "fine"
)

// SpinCounterPeriodicity caps how many counter bits a spin segment keeps
// before the counter wraps around.
type SpinCounterPeriodicity string

const (
	// SpinCounterPeriodicityNone keeps no counter bits.
	SpinCounterPeriodicityNone SpinCounterPeriodicity = "none"
	// SpinCounterPeriodicityShort keeps 16 counter bits.
	SpinCounterPeriodicityShort SpinCounterPeriodicity = "short"
	// SpinCounterPeriodicityMedium keeps 24 counter bits.
	SpinCounterPeriodicityMedium SpinCounterPeriodicity = "medium"
	// SpinCounterPeriodicityLong keeps 32 counter bits.
	SpinCounterPeriodicityLong SpinCounterPeriodicity = "long"
)

// SpinEntropy is the number of random bytes mixed into a spin segment.
// Values outside 0 through 4 are clamped.
type SpinEntropy int

const (
	SpinEntropyNone  SpinEntropy = 0
	SpinEntropyOne   SpinEntropy = 1
	SpinEntropyTwo   SpinEntropy = 2
	SpinEntropyThree SpinEntropy = 3
	SpinEntropyFour  SpinEntropy = 4
)

// SpinParameters shape the segment Spin appends to a base: which clock bits
// are kept, how many of them, and how much randomness is mixed in.
type SpinParameters struct {
	Interval    SpinCounterInterval
	Periodicity SpinCounterPeriodicity
	Entropy     SpinEntropy
}

// DefaultSpinParameters returns the parameters used when a caller supplies
// none: coarse interval, short periodicity, two bytes of entropy.
func DefaultSpinParameters() SpinParameters {
	return SpinParameters{
		Interval:    SpinCounterIntervalCoarse,
		Periodicity: SpinCounterPeriodicityShort,
		Entropy:     SpinEntropyTwo,
	}
}

// ticksToDrop returns how many low bits of the 100ns tick count the
// interval discards. Unrecognized intervals count as coarse.
func (p SpinParameters) ticksToDrop() uint {
	if p.Interval == SpinCounterIntervalFine {
		return 16
	}
	return 24
}

// counterBits returns how many bits of the shifted tick count the
// periodicity keeps. Unrecognized periodicities count as short.
func (p SpinParameters) counterBits() uint {
	switch p.Periodicity {
	case SpinCounterPeriodicityNone:
		return 0
	case SpinCounterPeriodicityMedium:
		return 24
	case SpinCounterPeriodicityLong:
		return 32
	}
	return 16
}

// totalBits returns the full width of a spin segment, counter plus entropy.
func (p SpinParameters) totalBits() uint {
	return p.counterBits() + uint(p.entropyBytes())*8
}

func (p SpinParameters) entropyBytes() int {
	switch {
	case p.Entropy < SpinEntropyNone:
		return 0
	case p.Entropy > SpinEntropyFour:
		return 4
	}
	return int(p.Entropy)
}
