package swimdsl

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	// minSecRe matches "1:40", "12:05", "0:05"
	minSecRe = regexp.MustCompile(`^(\d+):(\d{2})$`)
	// bareSecondsRe matches a plain second count like "45"
	bareSecondsRe = regexp.MustCompile(`^\d+$`)
)

// ParseTime converts a send-off token into seconds. ok is false for anything that
// is neither M:SS (seconds 0-59) nor a bare non-negative integer.
func ParseTime(text string) (seconds int, ok bool) {
	if m := minSecRe.FindStringSubmatch(text); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		secs, err := strconv.Atoi(m[2])
		if err != nil || secs > 59 {
			return 0, false
		}
		if minutes > (math.MaxInt-secs)/60 {
			return 0, false
		}
		return minutes*60 + secs, true
	}
	if bareSecondsRe.MatchString(text) {
		secs, err := strconv.Atoi(text)
		if err != nil {
			return 0, false
		}
		return secs, true
	}
	return 0, false
}

// FormatTime renders seconds as M:SS, rounding to the nearest whole second.
func FormatTime(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
