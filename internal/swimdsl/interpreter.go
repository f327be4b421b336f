package swimdsl

import "strings"

// accumulator collects the fold over a document's lines. One per Interpret call.
type accumulator struct {
	section string
	header  WorkoutHeader
	sets    []SetInterval
	errs    []ParseError
}

func newAccumulator() *accumulator {
	return &accumulator{
		section: DefaultSection,
		sets:    []SetInterval{},
		errs:    []ParseError{},
	}
}

func (a *accumulator) apply(res lineResult, lineNumber int) {
	switch res.kind {
	case lineSection:
		a.section = res.section
	case lineHeader:
		if res.header != nil {
			res.header(&a.header)
		}
	case lineSet:
		a.sets = append(a.sets, *res.set)
	}
	for _, msg := range res.errs {
		a.errs = append(a.errs, ParseError{LineNumber: lineNumber, Message: msg})
	}
}

// Interpret parses a whole shorthand document. It never fails: malformed lines
// show up in Errors and the rest of the document is still interpreted.
func Interpret(text string) *InterpretedWorkout {
	acc := newAccumulator()
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		lineNumber := i + 1
		acc.apply(parseLine(raw, lineNumber, acc.section), lineNumber)
	}

	totals := ComputeTotals(acc.sets)
	warnings := VarianceWarnings(acc.header, totals)
	if warnings == nil {
		warnings = []string{}
	}

	return &InterpretedWorkout{
		Header:   acc.header,
		Sets:     acc.sets,
		Totals:   totals,
		Errors:   acc.errs,
		Warnings: warnings,
	}
}
