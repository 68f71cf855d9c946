package textutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

var nonNumericRegex = regexp.MustCompile(`[^0-9.\-+]`)

// ExtractNumber pulls a numeric value out of arbitrary text: currency
// strings ("$652.05"), point deltas ("+34 pts", "-168 pts"), plain
// counts. Returns nil when no number remains after stripping.
func ExtractNumber(text string) *float64 {
	stripped := nonNumericRegex.ReplaceAllString(text, "")
	if stripped == "" {
		return nil
	}
	n, err := strconv.ParseFloat(stripped, 64)
	if err != nil || math.IsNaN(n) {
		return nil
	}
	return &n
}

var dateRegex = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

// ParseDate finds an MM/DD/YYYY shaped substring anywhere in the input
// and reformats it as YYYY-MM-DD. There is deliberately no calendar
// validation: "13/45/2025" becomes "2025-13-45". The site renders real
// dates; this is a reformat, not a parse.
func ParseDate(text string) *string {
	groups := dateRegex.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	month, _ := strconv.Atoi(groups[1])
	day, _ := strconv.Atoi(groups[2])
	out := fmt.Sprintf("%s-%02d-%02d", groups[3], month, day)
	return &out
}

// CleanText trims the input and collapses the site's "--" placeholder
// (and the empty string) to nil. Anything else is returned verbatim,
// currency and percent formatting included.
func CleanText(text string) *string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "--" {
		return nil
	}
	return &trimmed
}

// narrative phrase patterns for the score commentary blurbs.
// increases capture an optional leading +, decreases capture the
// digits after a - and negate them.
var (
	scoreIncreaseRegex  = regexp.MustCompile(`(?i)score\s+(?:went\s+up|increased)(?:\s+by)?\s+\+?(\d+)`)
	scoreDecreaseRegex  = regexp.MustCompile(`(?i)score\s+(?:went\s+down|decreased)(?:\s+by)?\s+-(\d+)`)
	boostPotentialRegex = regexp.MustCompile(`(?i)could\s+(?:boost|raise|increase)\s+(?:your\s+score\s+)?by\s+\+?(\d+)`)
	scoreBoostRegex     = regexp.MustCompile(`(?i)boost(?:ed)?\s+your\s+score\s+by\s+\+?(\d+)`)
)

// ParseScoreProgress reads a point delta out of a "your score went
// up/down by N pts" sentence. Nil when neither phrase matches.
func ParseScoreProgress(text string) *int {
	if groups := scoreIncreaseRegex.FindStringSubmatch(text); groups != nil {
		n, err := strconv.Atoi(groups[1])
		if err != nil {
			return nil
		}
		return &n
	}
	if groups := scoreDecreaseRegex.FindStringSubmatch(text); groups != nil {
		n, err := strconv.Atoi(groups[1])
		if err != nil {
			return nil
		}
		n = -n
		return &n
	}
	return nil
}

// ParseBoostPotential reads the advertised potential gain out of a
// "could boost your score by N" sentence.
func ParseBoostPotential(text string) *int {
	groups := boostPotentialRegex.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	n, err := strconv.Atoi(groups[1])
	if err != nil {
		return nil
	}
	return &n
}

// ParseScoreBoost reads the realized gain out of a "boosted your score
// by N" sentence.
func ParseScoreBoost(text string) *int {
	groups := scoreBoostRegex.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	n, err := strconv.Atoi(groups[1])
	if err != nil {
		return nil
	}
	return &n
}
