// Package command implements the audio-marker command lexer and parser:
// normalizing the fuzzy spoken vocabulary between a "slate" and its
// matching "done", and parsing that normalized token stream into a
// structured model.ParsedCommands.
package command

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var foldCase = cases.Fold()

// numberWords maps spoken number words zero..twenty to their integer
// value.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19, "twenty": 20,
}

// scoreLevels lists the four recognized quality/score words, in
// ascending order.
var scoreLevels = []string{"skip", "fair", "good", "best"}

// scoreScale maps a score word to its numeric level.
var scoreScale = map[string]int{
	"skip": 0,
	"fair": 1,
	"good": 2,
	"best": 3,
}

// doneVariants lists every normalized token accepted as "done" (the
// normalization map's variants plus "doone") and is recognized
// mid-stream as a terminator while scanning for retroactive
// actions or other variable-length argument lists.
var doneVariants = map[string]bool{
	"done": true, "don": true, "dun": true, "dunn": true, "doan": true, "doone": true,
}

// normalizationMap is the fuzzy/phonetic variant table. Keys are the
// canonical token; values are every spoken variant (including the
// canonical form itself) that should collapse to that key.
var normalizationMap = map[string][]string{
	"slate":   {"slate", "state", "slait", "slayt", "sleight"},
	"done":    {"done", "don", "dun", "dunn", "doan"},
	"broll":   {"broll", "b roll", "b-roll", "b_roll", "be roll"},
	"cta":     {"cta", "c t a", "see t a", "see tea"},
	"best":    {"best", "best take"},
	"select":  {"select", "selected"},
	"backup":  {"backup", "back up"},
	"coh":     {"coh", "c o h", "cold open hook"},
	"ch":      {"ch", "c h", "cold hook"},
	"psh":     {"psh", "p s h", "pattern shift hook"},
	"tph":     {"tph", "t p h", "third person hook"},
	"warp":    {"warp", "speed warp"},
	"dissolve": {"dissolve", "cross dissolve"},
	"fade":    {"fade", "fade out", "fade in"},
}

// variantToCanonical is normalizationMap inverted for O(1) lookup.
var variantToCanonical = buildVariantIndex()

func buildVariantIndex() map[string]string {
	idx := make(map[string]string)
	for canonical, variants := range normalizationMap {
		for _, v := range variants {
			idx[v] = canonical
		}
	}
	return idx
}

// NormalizeWord strips surrounding whitespace and trailing sentence
// punctuation, folds case, and resolves phonetic/phrasal variants to
// their canonical token.
func NormalizeWord(word string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(word), ".,!?;:")
	folded := foldCase.String(trimmed)
	if canon, ok := variantToCanonical[folded]; ok {
		return canon
	}
	return folded
}

// IsSlate reports whether a normalized word is the slate delimiter.
func IsSlate(normalized string) bool { return normalized == "slate" }

// IsDone reports whether a raw (not-yet-normalized) word is any
// recognized "done" variant once case-folded and stripped.
func IsDone(word string) bool {
	n := NormalizeWord(word)
	return n == "done" || doneVariants[n]
}

// ParseNumber resolves a single normalized token to an integer, via the
// number-word table first and a direct digit-string parse second.
func ParseNumber(word string) (int, bool) {
	w := foldCase.String(strings.TrimSpace(word))
	if n, ok := numberWords[w]; ok {
		return n, true
	}
	if n, err := strconv.Atoi(w); err == nil {
		return n, true
	}
	return 0, false
}

// ParseDecimalNumber parses an "<integer> point <digit> [<digit>
// [<digit>]]" sequence starting at words[startIdx], returning the
// resulting float and the index just past the last consumed token.
// Words must be the ORIGINAL (non-normalized) token slice; this function
// does its own per-token folding.
func ParseDecimalNumber(words []string, startIdx int) (float64, int, bool) {
	if startIdx >= len(words) {
		return 0, startIdx, false
	}

	first := foldCase.String(strings.TrimSpace(words[startIdx]))
	integerPart, ok := ParseNumber(first)
	if !ok {
		return 0, startIdx, false
	}

	if startIdx+1 >= len(words) {
		return float64(integerPart), startIdx + 1, true
	}

	if foldCase.String(strings.TrimSpace(words[startIdx+1])) != "point" {
		return float64(integerPart), startIdx + 1, true
	}

	if startIdx+2 >= len(words) {
		return float64(integerPart), startIdx + 2, true
	}

	const maxDecimalDigits = 3
	var decimalDigits []int
	j := startIdx + 2
	for j < len(words) && len(decimalDigits) < maxDecimalDigits {
		digitWord := foldCase.String(strings.TrimSpace(words[j]))
		digit, ok := ParseNumber(digitWord)
		if !ok || digit < 0 || digit > 9 {
			break
		}
		decimalDigits = append(decimalDigits, digit)
		j++
	}

	if len(decimalDigits) == 0 {
		return float64(integerPart), startIdx + 2, true
	}

	decimalValue := 0.0
	for i, digit := range decimalDigits {
		decimalValue += float64(digit) / pow10(i+1)
	}
	return float64(integerPart) + decimalValue, j, true
}

func pow10(n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// langTag is unused directly but documents the fold locale (root/
// language-neutral), kept as a named value so future per-language
// lexers have an obvious extension point.
var langTag = language.Und
