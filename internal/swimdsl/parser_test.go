package swimdsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_Classification(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind lineKind
		errs int
	}{
		{"blank", "   ", lineIgnored, 0},
		{"comment", "  # hold pace", lineIgnored, 0},
		{"section", "Warmup:", lineSection, 0},
		{"empty section", "  :", lineInvalid, 1},
		{"pool", "pool 25m", lineHeader, 0},
		{"pool without number", "pool long course", lineHeader, 1},
		{"title", "title Tuesday AM", lineHeader, 0},
		{"set", "4x50 FR @1:00", lineSet, 0},
		{"garbage", "this is not a set", lineInvalid, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseLine(tt.line, 1, DefaultSection)
			assert.Equal(t, tt.kind, res.kind)
			assert.Len(t, res.errs, tt.errs)
		})
	}
}

func TestParseLine_SectionLowercased(t *testing.T) {
	res := parseLine("  Main Set :", 3, "warmup")
	assert.Equal(t, lineSection, res.kind)
	assert.Equal(t, "main set", res.section)
}

func TestParseLine_HeaderDirectives(t *testing.T) {
	var h WorkoutHeader
	for _, line := range []string{"pool 50", "DURATION: about 60 minutes", "title  Long Course Day", "focus threshold", "profile"} {
		res := parseLine(line, 1, DefaultSection)
		require.Equal(t, lineHeader, res.kind, line)
		require.Empty(t, res.errs, line)
		res.header(&h)
	}

	require.NotNil(t, h.PoolLengthMeters)
	assert.Equal(t, 50, *h.PoolLengthMeters)
	require.NotNil(t, h.PlannedDurationMinutes)
	assert.Equal(t, 60, *h.PlannedDurationMinutes)
	require.NotNil(t, h.Title)
	assert.Equal(t, "Long Course Day", *h.Title)
	require.NotNil(t, h.Focus)
	assert.Equal(t, "threshold", *h.Focus)
	require.NotNil(t, h.Profile)
	assert.Equal(t, "", *h.Profile)
}

func TestParseLine_SetFields(t *testing.T) {
	res := parseLine("  10x100 FR @1:30 thresh", 7, "main")
	require.Equal(t, lineSet, res.kind)
	require.Empty(t, res.errs)

	s := res.set
	assert.Equal(t, "main", s.Section)
	assert.Equal(t, 10, s.Reps)
	assert.Equal(t, 100, s.DistanceMeters)
	assert.Equal(t, "FR", s.Stroke)
	require.NotNil(t, s.SendOffSeconds)
	assert.Equal(t, 90, *s.SendOffSeconds)
	require.NotNil(t, s.Intensity)
	assert.Equal(t, "thresh", *s.Intensity)
	assert.Equal(t, 7, s.LineNumber)
	assert.Equal(t, "  10x100 FR @1:30 thresh", s.Raw)
}

func TestParseLine_SetDefaults(t *testing.T) {
	res := parseLine("400 choice", 1, "cooldown")
	require.Equal(t, lineSet, res.kind)
	assert.Equal(t, 1, res.set.Reps)
	assert.Nil(t, res.set.SendOffSeconds)
	assert.Nil(t, res.set.Intensity)

	res = parseLine("200 FR easy", 1, "warmup")
	require.Equal(t, lineSet, res.kind)
	assert.Nil(t, res.set.SendOffSeconds)
	require.NotNil(t, res.set.Intensity)
	assert.Equal(t, "easy", *res.set.Intensity)
}

func TestParseLine_ClampedFields(t *testing.T) {
	res := parseLine("0x50 FR", 2, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Equal(t, 0, res.set.Reps)
	assert.Len(t, res.errs, 1)

	res = parseLine("ax50 FR", 2, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Equal(t, 0, res.set.Reps)
	assert.Len(t, res.errs, 1)

	res = parseLine("4x0 FR", 2, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Equal(t, 4, res.set.Reps)
	assert.Equal(t, 0, res.set.DistanceMeters)
	assert.Len(t, res.errs, 1)
}

func TestParseLine_OutOfRangeFields(t *testing.T) {
	res := parseLine("4000000000x4000000000 FR", 3, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Equal(t, 0, res.set.Reps)
	assert.Equal(t, 0, res.set.DistanceMeters)
	require.Len(t, res.errs, 2)
	assert.Contains(t, res.errs[0], "reps")
	assert.Contains(t, res.errs[0], "out of range")
	assert.Contains(t, res.errs[1], "distance")

	res = parseLine("99999999999999999999x50 FR", 3, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Equal(t, 0, res.set.Reps)
	assert.Equal(t, 50, res.set.DistanceMeters)
	require.Len(t, res.errs, 1)
	assert.Contains(t, res.errs[0], "out of range")

	res = parseLine("4x50 FR @99999999", 3, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Nil(t, res.set.SendOffSeconds)
	require.Len(t, res.errs, 1)
	assert.Contains(t, res.errs[0], "out of range")

	res = parseLine("1000x100000 FR", 3, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Empty(t, res.errs)
	assert.Equal(t, 100000000, res.set.Distance())
}

func TestParseLine_NegativeDistanceClamped(t *testing.T) {
	res := parseLine("4x-50 FR", 5, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Equal(t, 4, res.set.Reps)
	assert.Equal(t, 0, res.set.DistanceMeters)
	require.Len(t, res.errs, 1)
	assert.Contains(t, res.errs[0], "invalid distance")
}

func TestParseLine_UnicodeWhitespace(t *testing.T) {
	res := parseLine("4x50\u00a0FR\u2003easy", 1, "main")
	require.Equal(t, lineSet, res.kind)
	assert.Empty(t, res.errs)
	assert.Equal(t, "FR", res.set.Stroke)
	require.NotNil(t, res.set.Intensity)
	assert.Equal(t, "easy", *res.set.Intensity)
	assert.Equal(t, "4x50\u00a0FR\u2003easy", res.set.Raw)
}

func TestParseLine_BadSendOffKeepsSet(t *testing.T) {
	res := parseLine("4x50 FR @1:75 fast", 4, "main")
	require.Equal(t, lineSet, res.kind)
	require.Len(t, res.errs, 1)
	assert.Contains(t, res.errs[0], "send-off")
	assert.Nil(t, res.set.SendOffSeconds)
	require.NotNil(t, res.set.Intensity)
	assert.Equal(t, "fast", *res.set.Intensity)
}

func TestParseLine_Rejects(t *testing.T) {
	for _, line := range []string{
		"4x50",
		"4x50 FR @",
		"4x50 FR @1:00 easy extra",
		"fifty FR",
		"4 x 50 FR",
	} {
		res := parseLine(line, 1, "main")
		assert.Equal(t, lineInvalid, res.kind, line)
		assert.Nil(t, res.set, line)
		assert.Len(t, res.errs, 1, line)
	}
}
