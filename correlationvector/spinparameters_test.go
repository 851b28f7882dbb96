package correlationvector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSpinParameters(t *testing.T) {
	p := DefaultSpinParameters()

	require.Equal(t, SpinCounterIntervalCoarse, p.Interval)
	require.Equal(t, SpinCounterPeriodicityShort, p.Periodicity)
	require.Equal(t, SpinEntropyTwo, p.Entropy)
}

func TestTicksToDrop(t *testing.T) {
	testCases := []struct {
		desc     string
		interval SpinCounterInterval
		expected uint
	}{
		{desc: "coarse drops 24 bits", interval: SpinCounterIntervalCoarse, expected: 24},
		{desc: "fine drops 16 bits", interval: SpinCounterIntervalFine, expected: 16},
		{desc: "unknown intervals count as coarse", interval: SpinCounterInterval("hourly"), expected: 24},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, SpinParameters{Interval: tc.interval}.ticksToDrop())
		})
	}
}

func TestCounterBits(t *testing.T) {
	testCases := []struct {
		desc        string
		periodicity SpinCounterPeriodicity
		expected    uint
	}{
		{desc: "none keeps no counter bits", periodicity: SpinCounterPeriodicityNone, expected: 0},
		{desc: "short keeps 16 bits", periodicity: SpinCounterPeriodicityShort, expected: 16},
		{desc: "medium keeps 24 bits", periodicity: SpinCounterPeriodicityMedium, expected: 24},
		{desc: "long keeps 32 bits", periodicity: SpinCounterPeriodicityLong, expected: 32},
		{desc: "unknown periodicities count as short", periodicity: SpinCounterPeriodicity("weekly"), expected: 16},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, SpinParameters{Periodicity: tc.periodicity}.counterBits())
		})
	}
}

func TestTotalBits(t *testing.T) {
	require.Equal(t, uint(32), DefaultSpinParameters().totalBits())

	full := SpinParameters{Periodicity: SpinCounterPeriodicityLong, Entropy: SpinEntropyFour}
	require.Equal(t, uint(64), full.totalBits())

	empty := SpinParameters{Periodicity: SpinCounterPeriodicityNone, Entropy: SpinEntropyNone}
	require.Equal(t, uint(0), empty.totalBits())
}

func TestEntropyBytesClamped(t *testing.T) {
	require.Equal(t, 4, SpinParameters{Entropy: SpinEntropy(9)}.entropyBytes())
	require.Equal(t, 0, SpinParameters{Entropy: SpinEntropy(-1)}.entropyBytes())
	require.Equal(t, 3, SpinParameters{Entropy: SpinEntropyThree}.entropyBytes())
}
