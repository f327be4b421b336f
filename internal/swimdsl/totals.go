package swimdsl

import (
	"fmt"
	"math"
)

const (
	// fallbackPaceSecondsPer100 is used when too few sets carry a send-off.
	fallbackPaceSecondsPer100 = 90.0
	// varianceThresholdMinutes is the allowed gap between plan and estimate.
	varianceThresholdMinutes = 10.0
)

// ComputeTotals aggregates distance over all sets.
func ComputeTotals(sets []SetInterval) WorkoutTotals {
	totals := WorkoutTotals{
		DistanceBySection:   make(map[string]int),
		DistanceByIntensity: make(map[string]int),
	}
	for _, s := range sets {
		d := s.Distance()
		totals.TotalDistanceMeters += d
		totals.DistanceBySection[s.Section] += d

		intensity := UnknownIntensity
		if s.Intensity != nil {
			intensity = *s.Intensity
		}
		totals.DistanceByIntensity[intensity] += d
	}
	totals.EstimatedMinutes = EstimateMinutes(sets, totals.TotalDistanceMeters)
	return totals
}

// EstimateMinutes returns nil when there are no sets, or when no send-off based
// estimate applies and the total distance is zero.
//
// Send-offs are trusted once at least half the sets carry one (2 of 3 qualifies,
// 1 of 3 does not); sets without a send-off are then left out of the estimate.
func EstimateMinutes(sets []SetInterval, totalDistance int) *float64 {
	if len(sets) == 0 {
		return nil
	}

	withSendOff := 0
	sendOffSeconds := 0
	for _, s := range sets {
		if s.SendOffSeconds == nil {
			continue
		}
		withSendOff++
		sendOffSeconds += s.Reps * *s.SendOffSeconds
	}

	if 2*withSendOff >= len(sets) {
		minutes := float64(sendOffSeconds) / 60
		return &minutes
	}
	if totalDistance > 0 {
		minutes := float64(totalDistance) / 100 * fallbackPaceSecondsPer100 / 60
		return &minutes
	}
	return nil
}

// VarianceWarnings compares the estimate against the planned duration.
func VarianceWarnings(header WorkoutHeader, totals WorkoutTotals) []string {
	if header.PlannedDurationMinutes == nil || totals.EstimatedMinutes == nil {
		return nil
	}
	planned := float64(*header.PlannedDurationMinutes)
	estimate := *totals.EstimatedMinutes
	diff := estimate - planned
	if math.Abs(diff) <= varianceThresholdMinutes {
		return nil
	}
	direction := "exceeds"
	if diff < 0 {
		direction = "falls short of"
	}
	return []string{fmt.Sprintf(
		"estimated duration %.1f min %s planned %d min by %.1f min",
		estimate, direction, *header.PlannedDurationMinutes, math.Abs(diff),
	)}
}
