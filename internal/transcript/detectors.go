package transcript

import (
	"regexp"
	"strings"

	"roughcut/internal/model"
)

var featureKeywords = compileAll(
	`\bfeature\b`, `\bhas\b`, `\bincludes\b`, `\bcomes with\b`,
	`\bspec\b`, `\bspecification\b`, `\bcapability\b`, `\bcan\b`,
	`\bsupports\b`, `\boffers\b`, `\bprovides\b`, `\bequipped with\b`,
)

var prosKeywords = compileAll(
	`\bgreat\b`, `\bexcellent\b`, `\blove\b`, `\bbest\b`, `\bamazing\b`,
	`\bfantastic\b`, `\bperfect\b`, `\boutstanding\b`, `\bimpressive\b`,
	`\bpro\b`, `\badvantage\b`, `\bplus\b`, `\bgood\b`, `\bstrong\b`,
)

var consKeywords = compileAll(
	`\bbut\b`, `\bhowever\b`, `\bissue\b`, `\bproblem\b`, `\bdisappointing\b`,
	`\bweak\b`, `\bpoor\b`, `\bbad\b`, `\bcon\b`, `\bdisadvantage\b`,
	`\bminus\b`, `\bconcern\b`, `\bworried\b`, `\bunfortunately\b`,
)

var revealKeywords = compileAll(
	`\bwow\b`, `\blook at this\b`, `\bhere it is\b`, `\bhere we go\b`,
	`\bcheck this out\b`, `\bamazing\b`, `\bincredible\b`, `\bunbox\b`,
	`\bopening\b`, `\bfirst look\b`, `\binitial thoughts\b`, `\bopening it\b`,
)

var comparisonKeywords = compileAll(
	`\bvs\b`, `\bversus\b`, `\bcompared to\b`, `\bcompared with\b`,
	`\bbetter than\b`, `\bworse than\b`, `\bfaster than\b`, `\bslower than\b`,
	`\bmore\b.*\bthan\b`, `\bless\b.*\bthan\b`, `\bdifference\b`,
)

var conceptKeywords = compileAll(
	`\blet me explain\b`, `\bhere's how\b`, `\bthe concept is\b`, `\bbasically\b`,
	`\bin simple terms\b`, `\bwhat this means\b`, `\bto understand\b`, `\bthink of it\b`,
	`\bimagine\b`, `\bessentially\b`, `\bthe idea is\b`, `\bconcept\b`,
)

var revealEmphasisWords = []string{"wow", "amazing", "incredible"}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func matchesAny(patterns []*regexp.Regexp, lower string) bool {
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

func segmentFromEntry(sourceFile string, e model.SRTEntry, segType string, score float64) model.Segment {
	return model.Segment{
		SourceFile:  sourceFile,
		StartTime:   e.Start,
		EndTime:     e.End,
		Text:        e.Text,
		SegmentType: segType,
		Score:       score,
	}
}

// DetectFeatureMentions finds product-feature descriptions.
func DetectFeatureMentions(sourceFile string, entries []model.SRTEntry) []model.Segment {
	var out []model.Segment
	for _, e := range entries {
		if matchesAny(featureKeywords, strings.ToLower(e.Text)) {
			out = append(out, segmentFromEntry(sourceFile, e, "feature", 0.7))
		}
	}
	return out
}

// DetectProsCons finds positive (pro) and negative (con) statements,
// returned as two independent lists; a single entry may appear in
// both if it matches both keyword sets.
func DetectProsCons(sourceFile string, entries []model.SRTEntry) (pros, cons []model.Segment) {
	for _, e := range entries {
		lower := strings.ToLower(e.Text)
		if matchesAny(prosKeywords, lower) {
			pros = append(pros, segmentFromEntry(sourceFile, e, "pro", 0.6))
		}
		if matchesAny(consKeywords, lower) {
			cons = append(cons, segmentFromEntry(sourceFile, e, "con", 0.6))
		}
	}
	return pros, cons
}

// DetectReveals finds unboxing/first-look reveal moments, boosting the
// score for lines carrying strong emotional emphasis words.
func DetectReveals(sourceFile string, entries []model.SRTEntry) []model.Segment {
	var out []model.Segment
	for _, e := range entries {
		lower := strings.ToLower(e.Text)
		if !matchesAny(revealKeywords, lower) {
			continue
		}
		score := 0.6
		for _, w := range revealEmphasisWords {
			if strings.Contains(lower, w) {
				score = 0.8
				break
			}
		}
		out = append(out, segmentFromEntry(sourceFile, e, "reveal", score))
	}
	return out
}

// DetectComparisons finds side-by-side comparison statements.
func DetectComparisons(sourceFile string, entries []model.SRTEntry) []model.Segment {
	var out []model.Segment
	for _, e := range entries {
		if matchesAny(comparisonKeywords, strings.ToLower(e.Text)) {
			out = append(out, segmentFromEntry(sourceFile, e, "comparison", 0.7))
		}
	}
	return out
}

// DetectConcepts finds concept-introduction/explanation segments.
func DetectConcepts(sourceFile string, entries []model.SRTEntry) []model.Segment {
	var out []model.Segment
	for _, e := range entries {
		if matchesAny(conceptKeywords, strings.ToLower(e.Text)) {
			out = append(out, segmentFromEntry(sourceFile, e, "concept", 0.7))
		}
	}
	return out
}
