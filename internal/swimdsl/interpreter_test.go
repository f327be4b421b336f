package swimdsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWorkout = `pool 25
duration 40
title Tuesday Threshold

warmup:
  400 FR easy
  4x50 kick @1:10

main:
  # hold best average
  10x100 FR @1:30 thresh
  5x200 FR @3:00 thresh

Cooldown:
  200 choice easy
`

func TestInterpret_SampleWorkout(t *testing.T) {
	w := Interpret(sampleWorkout)

	require.Empty(t, w.Errors)
	require.Len(t, w.Sets, 5)

	require.NotNil(t, w.Header.PoolLengthMeters)
	assert.Equal(t, 25, *w.Header.PoolLengthMeters)
	require.NotNil(t, w.Header.Title)
	assert.Equal(t, "Tuesday Threshold", *w.Header.Title)
	assert.Nil(t, w.Header.Focus)

	assert.Equal(t, "warmup", w.Sets[0].Section)
	assert.Equal(t, 6, w.Sets[0].LineNumber)
	assert.Equal(t, "cooldown", w.Sets[4].Section)

	assert.Equal(t, 2800, w.Totals.TotalDistanceMeters)
	assert.Equal(t, map[string]int{"warmup": 600, "main": 2000, "cooldown": 200}, w.Totals.DistanceBySection)
	assert.Equal(t, map[string]int{"easy": 600, "unknown": 200, "thresh": 2000}, w.Totals.DistanceByIntensity)

	// 3 of 5 sets carry a send-off: (4*70 + 10*90 + 5*180) / 60
	require.NotNil(t, w.Totals.EstimatedMinutes)
	assert.InDelta(t, 2080.0/60, *w.Totals.EstimatedMinutes, 1e-9)
	assert.Empty(t, w.Warnings)
}

func TestInterpret_TotalsConsistent(t *testing.T) {
	w := Interpret("warmup:\n300 FR\n0x50 BK easy\nmain:\n8x25 FL @0:30 fast\n3x100 IM\nfoo bar baz qux quux\n")

	sum := 0
	for _, s := range w.Sets {
		sum += s.Reps * s.DistanceMeters
	}
	bySection, byIntensity := 0, 0
	for _, d := range w.Totals.DistanceBySection {
		bySection += d
	}
	for _, d := range w.Totals.DistanceByIntensity {
		byIntensity += d
	}

	assert.Equal(t, sum, w.Totals.TotalDistanceMeters)
	assert.Equal(t, sum, bySection)
	assert.Equal(t, sum, byIntensity)
	assert.Len(t, w.Errors, 2)
}

func TestInterpret_SingleSetSendOffEstimate(t *testing.T) {
	w := Interpret("4x50 FR @1:00")

	require.Empty(t, w.Errors)
	require.Len(t, w.Sets, 1)
	assert.Equal(t, DefaultSection, w.Sets[0].Section)
	require.NotNil(t, w.Totals.EstimatedMinutes)
	assert.InDelta(t, 4.0, *w.Totals.EstimatedMinutes, 1e-9)
}

func TestInterpret_EstimateThreshold(t *testing.T) {
	// 1 of 3 with send-off: falls back to pace, 600 m at 90s/100
	w := Interpret("200 FR\n200 FR\n2x100 FR @2:00")
	require.NotNil(t, w.Totals.EstimatedMinutes)
	assert.InDelta(t, 9.0, *w.Totals.EstimatedMinutes, 1e-9)

	// 2 of 3 qualifies: only the sets with send-off count
	w = Interpret("200 FR\n2x100 FR @2:00\n2x100 FR @2:00")
	require.NotNil(t, w.Totals.EstimatedMinutes)
	assert.InDelta(t, 8.0, *w.Totals.EstimatedMinutes, 1e-9)
}

func TestInterpret_NoSetsNoEstimate(t *testing.T) {
	w := Interpret("pool 25\nduration 30\n# nothing yet\n")
	assert.Empty(t, w.Sets)
	assert.Nil(t, w.Totals.EstimatedMinutes)
	assert.Empty(t, w.Warnings)
	assert.Equal(t, 0, w.Totals.TotalDistanceMeters)
}

func TestInterpret_VarianceWarning(t *testing.T) {
	// 45 minutes of send-offs against a 30 minute plan
	w := Interpret("duration 30\n15x100 FR @3:00")
	require.Len(t, w.Warnings, 1)
	assert.Contains(t, w.Warnings[0], "exceeds")
	assert.Contains(t, w.Warnings[0], "45.0")
	assert.Contains(t, w.Warnings[0], "15.0")

	w = Interpret("duration 30\n7x100 FR @5:00")
	assert.Empty(t, w.Warnings)

	w = Interpret("duration 60\n10x100 FR @2:00")
	require.Len(t, w.Warnings, 1)
	assert.Contains(t, w.Warnings[0], "falls short of")
	assert.Contains(t, w.Warnings[0], "40.0")
}

func TestInterpret_VarianceBoundaryIsStrict(t *testing.T) {
	w := Interpret("duration 30\n10x100 FR @4:00")
	require.NotNil(t, w.Totals.EstimatedMinutes)
	assert.InDelta(t, 40.0, *w.Totals.EstimatedMinutes, 1e-9)
	assert.Empty(t, w.Warnings)
}

func TestInterpret_UnrecognizedLine(t *testing.T) {
	w := Interpret("pool 25\n\nthis is not a set\n")

	assert.Empty(t, w.Sets)
	require.Len(t, w.Errors, 1)
	assert.Equal(t, 3, w.Errors[0].LineNumber)
}

func TestInterpret_CRLFAndHeaderAnywhere(t *testing.T) {
	w := Interpret("main:\r\n4x100 FR @1:40\r\npool 50\r\n")

	require.Empty(t, w.Errors)
	require.Len(t, w.Sets, 1)
	assert.Equal(t, "4x100 FR @1:40", w.Sets[0].Raw)
	require.NotNil(t, w.Header.PoolLengthMeters)
	assert.Equal(t, 50, *w.Header.PoolLengthMeters)
}

func TestInterpret_ZeroSendOffIsPresent(t *testing.T) {
	w := Interpret("4x50 FR @0")
	require.Len(t, w.Sets, 1)
	require.NotNil(t, w.Sets[0].SendOffSeconds)
	assert.Equal(t, 0, *w.Sets[0].SendOffSeconds)
	require.NotNil(t, w.Totals.EstimatedMinutes)
	assert.Equal(t, 0.0, *w.Totals.EstimatedMinutes)
}

func TestInterpret_OversizedSetKeepsTotalsSane(t *testing.T) {
	w := Interpret("4000000000x4000000000 FR\n4x100 FR")
	require.Len(t, w.Sets, 2)
	require.Len(t, w.Errors, 2)
	assert.Equal(t, 1, w.Errors[0].LineNumber)
	assert.Equal(t, 400, w.Totals.TotalDistanceMeters)
	require.NotNil(t, w.Totals.EstimatedMinutes)
	assert.InDelta(t, 6.0, *w.Totals.EstimatedMinutes, 1e-9)
}
