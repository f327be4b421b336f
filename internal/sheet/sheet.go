// Package sheet lays out an interpreted workout as a printable plain-text sheet.
package sheet

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/swimdsl"
)

const ContentType = "text/plain; charset=utf-8"

// Render builds the sheet for view. The coach view adds the totals breakdown and
// diagnostics; the swimmer view is just the sets.
func Render(title string, w *swimdsl.InterpretedWorkout, view domain.SheetView) []byte {
	var buf bytes.Buffer

	if title == "" && w.Header.Title != nil {
		title = *w.Header.Title
	}
	if title == "" {
		title = "Workout"
	}
	buf.WriteString(title + "\n")
	buf.WriteString(strings.Repeat("=", len(title)) + "\n")
	if line := headerLine(w.Header); line != "" {
		buf.WriteString(line + "\n")
	}
	buf.WriteString("\n")

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, section := range sectionOrder(w.Sets) {
		if view == domain.ViewCoach {
			fmt.Fprintf(tw, "%s\t%d\n", strings.ToUpper(section), w.Totals.DistanceBySection[section])
		} else {
			fmt.Fprintf(tw, "%s\t\n", strings.ToUpper(section))
		}
		for _, s := range w.Sets {
			if s.Section == section {
				fmt.Fprintf(tw, "  %s\t\n", setText(s))
			}
		}
		fmt.Fprintln(tw, "\t")
	}
	tw.Flush()

	fmt.Fprintf(&buf, "Total: %d\n", w.Totals.TotalDistanceMeters)
	if w.Totals.EstimatedMinutes != nil {
		fmt.Fprintf(&buf, "Estimated: %.1f min\n", *w.Totals.EstimatedMinutes)
	}

	if view != domain.ViewCoach {
		return buf.Bytes()
	}

	if len(w.Totals.DistanceByIntensity) > 0 {
		buf.WriteString("By intensity: " + intensityLine(w.Totals.DistanceByIntensity) + "\n")
	}
	if len(w.Warnings) > 0 {
		buf.WriteString("\nWarnings:\n")
		for _, warning := range w.Warnings {
			buf.WriteString("  - " + warning + "\n")
		}
	}
	if len(w.Errors) > 0 {
		buf.WriteString("\nLine errors:\n")
		for _, e := range w.Errors {
			buf.WriteString("  - " + e.Error() + "\n")
		}
	}
	return buf.Bytes()
}

func headerLine(h swimdsl.WorkoutHeader) string {
	var parts []string
	if h.PoolLengthMeters != nil {
		parts = append(parts, fmt.Sprintf("Pool %d", *h.PoolLengthMeters))
	}
	if h.PlannedDurationMinutes != nil {
		parts = append(parts, fmt.Sprintf("Planned %d min", *h.PlannedDurationMinutes))
	}
	if h.Focus != nil && *h.Focus != "" {
		parts = append(parts, "Focus "+*h.Focus)
	}
	if h.Profile != nil && *h.Profile != "" {
		parts = append(parts, "Profile "+*h.Profile)
	}
	return strings.Join(parts, " | ")
}

// sectionOrder lists sections in the order they first appear.
func sectionOrder(sets []swimdsl.SetInterval) []string {
	seen := make(map[string]bool)
	var order []string
	for _, s := range sets {
		if !seen[s.Section] {
			seen[s.Section] = true
			order = append(order, s.Section)
		}
	}
	return order
}

func setText(s swimdsl.SetInterval) string {
	var sb strings.Builder
	if s.Reps != 1 {
		fmt.Fprintf(&sb, "%dx", s.Reps)
	}
	fmt.Fprintf(&sb, "%d %s", s.DistanceMeters, s.Stroke)
	if s.SendOffSeconds != nil {
		sb.WriteString(" @" + swimdsl.FormatTime(float64(*s.SendOffSeconds)))
	}
	if s.Intensity != nil {
		sb.WriteString(" " + *s.Intensity)
	}
	return sb.String()
}

func intensityLine(byIntensity map[string]int) string {
	keys := make([]string, 0, len(byIntensity))
	for k := range byIntensity {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %d", k, byIntensity[k])
	}
	return strings.Join(parts, ", ")
}
