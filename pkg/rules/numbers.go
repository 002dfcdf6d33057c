// numbers.go implements the number-formatting category: standalone 1-9 are
// spelled out, integers of 1,000 and above gain locale-aware thousands
// separators, and anything that is not a freestanding quantity is left alone.
package rules

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberWords = [...]string{
	1: "one", 2: "two", 3: "three", 4: "four", 5: "five",
	6: "six", 7: "seven", 8: "eight", 9: "nine",
}

func numberRules(locale string) []Rule {
	tag := language.AmericanEnglish
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	printer := message.NewPrinter(tag)

	return []Rule{{
		Name:     "number_format",
		Category: CategoryNumber,
		Scope:    ScopeCopy,
		Find:     numberFinder(printer),
	}}
}

func numberFinder(printer *message.Printer) FindFunc {
	return func(text string) []Match {
		var out []Match
		for start := 0; start < len(text); {
			if !isDigit(text[start]) {
				start++
				continue
			}
			end := start
			for end < len(text) && isDigit(text[end]) {
				end++
			}
			if m, ok := numberMatch(printer, text, start, end); ok {
				out = append(out, m)
			}
			start = end
		}
		return out
	}
}

// numberMatch decides what, if anything, to do with the digit run at
// text[start:end].
func numberMatch(printer *message.Printer, text string, start, end int) (Match, bool) {
	digits := text[start:end]

	// Part of a larger alphanumeric token (model numbers, IDs).
	if !standaloneToken(text, start, end) {
		return Match{}, false
	}
	// Decimal fractions, already-separated thousands, and clock times:
	// a dot, comma, or colon joining this run to another digit means the run
	// is only a piece of a larger number.
	if joinedToDigit(text, start, end) {
		return Match{}, false
	}
	// Currency and percentages keep their numerals.
	if start > 0 && text[start-1] == '$' {
		return Match{}, false
	}
	if end < len(text) && text[end] == '%' {
		return Match{}, false
	}
	// Clock hours keep their numerals; the time category owns them.
	if followedByMeridiem(text, end) {
		return Match{}, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return Match{}, false
	}

	switch {
	case n >= 1 && n <= 9:
		return Match{
			Start:       start,
			End:         end,
			Rule:        "number_format",
			Category:    CategoryNumber,
			CategoryKey: CategoryNumber.Key(),
			Original:    digits,
			Replacement: numberWords[n],
		}, true

	case n >= 1000:
		// Years and bare phone numbers stay as written.
		if n > 1900 && n < 2100 {
			return Match{}, false
		}
		if len(digits) == 10 || len(digits) == 11 && digits[0] == '1' {
			return Match{}, false
		}
		formatted := printer.Sprintf("%d", n)
		if formatted == digits {
			return Match{}, false
		}
		return Match{
			Start:       start,
			End:         end,
			Rule:        "number_format",
			Category:    CategoryNumber,
			CategoryKey: CategoryNumber.Key(),
			Original:    digits,
			Replacement: formatted,
		}, true
	}

	return Match{}, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// joinedToDigit reports whether the digit run connects through '.', ',' or
// ':' to a neighboring digit on either side.
func joinedToDigit(text string, start, end int) bool {
	if start >= 2 && isJoiner(text[start-1]) && isDigit(text[start-2]) {
		return true
	}
	if end+1 < len(text) && isJoiner(text[end]) && isDigit(text[end+1]) {
		return true
	}
	return false
}

func isJoiner(b byte) bool {
	return b == '.' || b == ',' || b == ':'
}

// followedByMeridiem reports whether the run reads as a clock hour:
// optionally spaced "am"/"pm" follows in any case.
func followedByMeridiem(text string, end int) bool {
	rest := text[end:]
	rest = strings.TrimLeft(rest, " ")
	if len(rest) < 2 {
		return false
	}
	head := strings.ToLower(rest[:2])
	if head != "am" && head != "pm" {
		return false
	}
	return len(rest) == 2 || !isWordByte(rest[2])
}
