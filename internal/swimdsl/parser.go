package swimdsl

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type lineKind int

const (
	lineIgnored lineKind = iota
	lineSection
	lineHeader
	lineSet
	lineInvalid
)

var (
	// setLineRe matches: [<reps>x]<distance> <stroke>[ @<time>][ <intensity>]
	setLineRe = regexp.MustCompile(`^(?:(\S+?)[xX])?(-?\d+)\s+(\S+)(?:\s+@(\S+))?(?:\s+([^@\s]\S*))?$`)

	firstIntRe = regexp.MustCompile(`\d+`)

	errEmptySection = errors.New("empty section name")
)

// Upper bounds on set fields; larger values are reported and clamped to 0.
const (
	maxReps           = 1000
	maxDistanceMeters = 100000
	maxSendOffSeconds = 24 * 60 * 60
)

// headerUpdate sets one field of the header being accumulated.
type headerUpdate func(h *WorkoutHeader)

// headerHandler turns the remainder of a directive line into a header update.
type headerHandler func(rest string) (headerUpdate, error)

var headerHandlers = map[string]headerHandler{
	"pool": intDirective("pool", func(h *WorkoutHeader, n int) {
		h.PoolLengthMeters = &n
	}),
	"duration": intDirective("duration", func(h *WorkoutHeader, n int) {
		h.PlannedDurationMinutes = &n
	}),
	"title": textDirective(func(h *WorkoutHeader, s string) {
		h.Title = &s
	}),
	"focus": textDirective(func(h *WorkoutHeader, s string) {
		h.Focus = &s
	}),
	"profile": textDirective(func(h *WorkoutHeader, s string) {
		h.Profile = &s
	}),
}

func intDirective(key string, set func(h *WorkoutHeader, n int)) headerHandler {
	return func(rest string) (headerUpdate, error) {
		digits := firstIntRe.FindString(rest)
		if digits == "" {
			return nil, fmt.Errorf("%s: expected an integer", key)
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, fmt.Errorf("%s: integer %q out of range", key, digits)
		}
		return func(h *WorkoutHeader) { set(h, n) }, nil
	}
}

func textDirective(set func(h *WorkoutHeader, s string)) headerHandler {
	return func(rest string) (headerUpdate, error) {
		return func(h *WorkoutHeader) { set(h, rest) }, nil
	}
}

// lineResult is what a single line contributes to the document.
type lineResult struct {
	kind    lineKind
	section string
	header  headerUpdate
	set     *SetInterval
	errs    []string
}

// parseLine classifies one raw line. section is the active section before this line.
func parseLine(raw string, lineNumber int, section string) lineResult {
	// Collapse all Unicode whitespace so tokens never carry e.g. a no-break space.
	line := strings.Join(strings.Fields(raw), " ")

	if line == "" || strings.HasPrefix(line, "#") {
		return lineResult{kind: lineIgnored}
	}

	if strings.HasSuffix(line, ":") {
		name := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(line, ":")))
		if name == "" {
			return lineResult{kind: lineInvalid, errs: []string{errEmptySection.Error()}}
		}
		return lineResult{kind: lineSection, section: name}
	}

	if res, ok := parseHeader(line); ok {
		return res
	}

	return parseSet(line, raw, lineNumber, section)
}

func parseHeader(line string) (lineResult, bool) {
	key, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		key, rest = line[:i], line[i+1:]
	}
	key = strings.TrimSuffix(strings.ToLower(key), ":")

	handler, ok := headerHandlers[key]
	if !ok {
		return lineResult{}, false
	}
	update, err := handler(strings.TrimSpace(rest))
	if err != nil {
		return lineResult{kind: lineHeader, errs: []string{err.Error()}}, true
	}
	return lineResult{kind: lineHeader, header: update}, true
}

func parseSet(line, raw string, lineNumber int, section string) lineResult {
	m := setLineRe.FindStringSubmatch(line)
	if m == nil {
		return lineResult{
			kind: lineInvalid,
			errs: []string{fmt.Sprintf("unrecognized line %q", line)},
		}
	}

	var errs []string
	set := &SetInterval{
		Section:    section,
		Reps:       1,
		Stroke:     m[3],
		Raw:        raw,
		LineNumber: lineNumber,
	}

	if m[1] != "" {
		reps, err := strconv.Atoi(m[1])
		switch {
		case err != nil && !isDigits(m[1]), err == nil && reps <= 0:
			errs = append(errs, fmt.Sprintf("invalid reps %q", m[1]))
			reps = 0
		case err != nil || reps > maxReps:
			errs = append(errs, fmt.Sprintf("reps %s out of range (max %d)", m[1], maxReps))
			reps = 0
		}
		set.Reps = reps
	}

	distance, err := strconv.Atoi(m[2])
	switch {
	case err == nil && distance <= 0:
		errs = append(errs, fmt.Sprintf("invalid distance %q", m[2]))
		distance = 0
	case err != nil || distance > maxDistanceMeters:
		errs = append(errs, fmt.Sprintf("distance %s out of range (max %d)", m[2], maxDistanceMeters))
		distance = 0
	}
	set.DistanceMeters = distance

	if m[4] != "" {
		if secs, ok := ParseTime(m[4]); ok && secs <= maxSendOffSeconds {
			set.SendOffSeconds = &secs
		} else if ok {
			errs = append(errs, fmt.Sprintf("send-off %q out of range (max %s)", m[4], FormatTime(maxSendOffSeconds)))
		} else {
			errs = append(errs, fmt.Sprintf("invalid send-off time %q", m[4]))
		}
	}

	if m[5] != "" {
		intensity := m[5]
		set.Intensity = &intensity
	}

	return lineResult{kind: lineSet, set: set, errs: errs}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
