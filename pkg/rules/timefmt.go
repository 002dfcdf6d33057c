// timefmt.go implements the time-formatting category: am/pm lowercased with
// periods stripped, ":00" dropped, and time ranges joined with an en dash.
package rules

import (
	"regexp"
	"strconv"
	"strings"
)

// timePart matches one clock time with optional minutes and a meridiem in any
// of its written forms (AM, a.m., Pm, ...). A trailing dot is consumed only
// in the dotted form, so the sentence period after "3 PM." survives.
// Boundary checks are done by hand because a trailing period defeats \b.
const timePart = `(\d{1,2})(?::(\d{2}))?\s*([AaPp])(?:\.[Mm]\.?|[Mm])`

var (
	timeRangePattern  = regexp.MustCompile(`(?i)` + timePart + `\s*(?:[-–—]|\bto\b)\s*` + timePart)
	singleTimePattern = regexp.MustCompile(`(?i)` + timePart)
)

// Ranges and single times are handled by one rule so the finder itself keeps
// their spans disjoint: a time inside an already-matched range is never a
// separate candidate.
func timeRules() []Rule {
	return []Rule{{
		Name:     "time_format",
		Category: CategoryTime,
		Scope:    ScopeCopy,
		Find:     findTimes,
	}}
}

func findTimes(text string) []Match {
	var out []Match

	for _, m := range timeRangePattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if !standaloneToken(text, start, end) {
			continue
		}
		from, ok1 := formatClock(text, m, 1)
		to, ok2 := formatClock(text, m, 4)
		if !ok1 || !ok2 {
			continue
		}
		replacement := from + "–" + to
		if replacement == text[start:end] {
			continue
		}
		out = append(out, Match{
			Start:       start,
			End:         end,
			Rule:        "time_format",
			Category:    CategoryTime,
			CategoryKey: CategoryTime.Key(),
			Original:    text[start:end],
			Replacement: replacement,
		})
	}

	for _, m := range singleTimePattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if !standaloneToken(text, start, end) {
			continue
		}
		if insideAny(out, start, end) {
			continue
		}
		formatted, ok := formatClock(text, m, 1)
		if !ok || formatted == text[start:end] {
			continue
		}
		out = append(out, Match{
			Start:       start,
			End:         end,
			Rule:        "time_format",
			Category:    CategoryTime,
			CategoryKey: CategoryTime.Key(),
			Original:    text[start:end],
			Replacement: formatted,
		})
	}

	return out
}

// formatClock renders the groupIdx-th clock reading of a submatch index slice
// in house style: "3 pm", "9:30 am". Reports ok=false for impossible times.
func formatClock(text string, m []int, group int) (string, bool) {
	hourStr := submatch(text, m, group)
	minuteStr := submatch(text, m, group+1)
	meridiem := submatch(text, m, group+2)

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return "", false
	}
	suffix := "am"
	if strings.EqualFold(meridiem, "p") {
		suffix = "pm"
	}
	if minuteStr == "" || minuteStr == "00" {
		return strconv.Itoa(hour) + " " + suffix, true
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute > 59 {
		return "", false
	}
	return strconv.Itoa(hour) + ":" + minuteStr + " " + suffix, true
}

func submatch(text string, m []int, group int) string {
	lo, hi := m[2*group], m[2*group+1]
	if lo < 0 {
		return ""
	}
	return text[lo:hi]
}

func insideAny(matches []Match, start, end int) bool {
	for _, m := range matches {
		if start < m.End && m.Start < end {
			return true
		}
	}
	return false
}
