// Package generator builds workout shorthand from high-level constraints using a
// static per-focus template catalog scaled to a distance target.
package generator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"swimset/swim-app/internal/swimdsl"
)

const (
	MinTargetDistance = 1500
	MaxTargetDistance = 6000

	// maxRepsGrowth caps a single line at this multiple of its baseline reps.
	maxRepsGrowth = 3
	// sendOffStep is the granularity of rescaled send-off times.
	sendOffStep = 5
)

var ErrInvalidConstraints = errors.New("invalid generator constraints")

// Constraints describe the workout to generate. Nil pointers mean "not provided".
type Constraints struct {
	PoolLengthMeters      int
	TargetDistanceMeters  *int
	TargetDurationMinutes *int
	Focus                 Focus
	Profile               Profile
	Title                 *string
}

// Block is a template line after pool normalization and volume scaling.
type Block struct {
	Section        Section
	Reps           int
	Distance       int
	Stroke         string
	SendOffSeconds *int
	Intensity      string
	Comment        string
}

// Meters is the block's contribution to the workout total.
func (b Block) Meters() int {
	return b.Reps * b.Distance
}

func (c Constraints) validate() error {
	if c.PoolLengthMeters <= 0 {
		return fmt.Errorf("%w: pool length must be positive", ErrInvalidConstraints)
	}
	if !c.Focus.Valid() {
		return fmt.Errorf("%w: unknown focus %q", ErrInvalidConstraints, c.Focus)
	}
	if _, ok := c.Profile.Factor(); !ok {
		return fmt.Errorf("%w: unknown profile %q", ErrInvalidConstraints, c.Profile)
	}
	return nil
}

// normalizeDistance rounds d up to the next multiple of the pool length.
func normalizeDistance(d, pool int) int {
	return (d + pool - 1) / pool * pool
}

// TargetDistance returns the clamped total the template will be scaled towards.
func TargetDistance(c Constraints, nominal int) int {
	return int(math.Round(targetMeters(c, nominal)))
}

// targetMeters is TargetDistance before rounding; Plan scales by it directly.
func targetMeters(c Constraints, nominal int) float64 {
	var target float64
	if c.TargetDistanceMeters != nil && *c.TargetDistanceMeters > 0 {
		target = float64(*c.TargetDistanceMeters)
	} else {
		factor, _ := c.Profile.Factor()
		target = float64(nominal) * factor
	}
	return math.Max(MinTargetDistance, math.Min(MaxTargetDistance, target))
}

// Plan scales the focus template to the constraints without rendering it.
func Plan(c Constraints) ([]Block, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	lines := Template(c.Focus)
	normalized := make([]int, len(lines))
	nominal := 0
	for i, l := range lines {
		normalized[i] = normalizeDistance(l.Distance, c.PoolLengthMeters)
		nominal += l.BaseReps * normalized[i]
	}
	if nominal == 0 {
		return nil, fmt.Errorf("%w: empty template for focus %q", ErrInvalidConstraints, c.Focus)
	}

	scale := targetMeters(c, nominal) / float64(nominal)

	blocks := make([]Block, 0, len(lines))
	for i, l := range lines {
		reps := int(math.Round(float64(l.BaseReps) * scale))
		if reps < 1 {
			reps = 1
		}
		if reps > l.BaseReps*maxRepsGrowth {
			reps = l.BaseReps * maxRepsGrowth
		}

		b := Block{
			Section:   l.Section,
			Reps:      reps,
			Distance:  normalized[i],
			Stroke:    l.Stroke,
			Intensity: l.Intensity,
			Comment:   l.Comment,
		}
		if l.SendOffSeconds > 0 {
			secs := scaleSendOff(l.SendOffSeconds, l.Distance, normalized[i])
			b.SendOffSeconds = &secs
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// scaleSendOff stretches a send-off written for the nominal distance to the
// pool-normalized one, keeping it on a 5 second grid.
func scaleSendOff(secs, nominal, normalized int) int {
	if nominal == normalized {
		return secs
	}
	scaled := float64(secs) * float64(normalized) / float64(nominal)
	steps := int(math.Round(scaled / sendOffStep))
	if steps < 1 {
		steps = 1
	}
	return steps * sendOffStep
}

// Generate renders a workout for c as shorthand the interpreter accepts without errors.
func Generate(c Constraints) (string, error) {
	blocks, err := Plan(c)
	if err != nil {
		return "", err
	}
	return Render(c, blocks), nil
}

// Render writes the header and blocks as shorthand text.
func Render(c Constraints, blocks []Block) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "pool %d\n", c.PoolLengthMeters)
	if c.TargetDurationMinutes != nil && *c.TargetDurationMinutes > 0 {
		fmt.Fprintf(&sb, "duration %d\n", *c.TargetDurationMinutes)
	}
	if c.Title != nil {
		if title := cleanTitle(*c.Title); title != "" {
			fmt.Fprintf(&sb, "title %s\n", title)
		}
	}
	fmt.Fprintf(&sb, "focus %s\n", c.Focus)
	fmt.Fprintf(&sb, "profile %s\n", c.Profile)
	sb.WriteString("\n")

	for _, section := range Sections {
		wrote := false
		for _, b := range blocks {
			if b.Section != section {
				continue
			}
			if !wrote {
				fmt.Fprintf(&sb, "%s:\n", section)
				wrote = true
			}
			if b.Comment != "" {
				fmt.Fprintf(&sb, "  # %s\n", b.Comment)
			}
			fmt.Fprintf(&sb, "  %s\n", setLine(b))
		}
		if wrote {
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func setLine(b Block) string {
	var sb strings.Builder
	if b.Reps != 1 {
		fmt.Fprintf(&sb, "%dx", b.Reps)
	}
	fmt.Fprintf(&sb, "%d %s", b.Distance, b.Stroke)
	if b.SendOffSeconds != nil {
		fmt.Fprintf(&sb, " @%s", swimdsl.FormatTime(float64(*b.SendOffSeconds)))
	}
	if b.Intensity != "" {
		fmt.Fprintf(&sb, " %s", b.Intensity)
	}
	return sb.String()
}

// cleanTitle keeps a title on one line and stops it reading as a section header.
func cleanTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	return strings.TrimRight(title, ": ")
}
