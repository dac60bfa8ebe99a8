package transcript

import (
	"testing"

	"roughcut/internal/model"
)

func TestQuoteImportanceUniquenessBonus(t *testing.T) {
	a := New()
	first := a.QuoteImportance("I visited Paris in 2019 and it changed everything about how I see the world")
	a.seen["i visited paris in 2019 and it changed everything about how i see the world"] = true
	second := a.QuoteImportance("I visited Paris in 2019 and it changed everything about how I see the world")
	if second >= first {
		t.Fatalf("expected repeated quote to score lower, got first=%v second=%v", first, second)
	}
}

func TestQuoteImportanceFillerPenalty(t *testing.T) {
	a := New()
	score := a.QuoteImportance("um so like you know actually I mean basically um it was fine")
	if score > 60 {
		t.Fatalf("expected heavy filler penalty to cap score low, got %v", score)
	}
}

func TestQuoteImportanceQuestionBonus(t *testing.T) {
	a := New()
	withQ := a.QuoteImportance("What happened next?")
	a2 := New()
	withoutQ := a2.QuoteImportance("What happened next")
	if withQ <= withoutQ {
		t.Fatalf("expected question mark to add points: with=%v without=%v", withQ, withoutQ)
	}
}

func TestExtractQuotesFiltersByImportance(t *testing.T) {
	a := New()
	entries := []model.SRTEntry{
		{Text: "ok", Start: 0, End: 1},
		{Text: "In 2021 Sarah Connor discovered something truly remarkable about the future of the project", Start: 1, End: 6},
	}
	quotes := a.ExtractQuotes(0, entries, 50)
	if len(quotes) != 1 {
		t.Fatalf("expected exactly one quote above threshold, got %d", len(quotes))
	}
}

func TestTopicDetectionBuckets(t *testing.T) {
	cases := map[string]string{
		"let me introduce the background of this project": "introduction",
		"we had a big problem with the challenge":          "problem",
		"I remember the story of when I was young":         "personal_stories",
		"the research study showed clear evidence":         "expert_opinions",
		"here is the solution to fix and improve this":     "solutions",
		"in conclusion, to summarize and wrap up":           "conclusion",
		"the weather today is pleasant":                     "general",
	}
	for text, want := range cases {
		if got := DetectTopic(text); got != want {
			t.Errorf("DetectTopic(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestFindNaturalEditPointsGapAndSentenceBoost(t *testing.T) {
	entries := []model.SRTEntry{
		{Text: "This is the end of a thought.", Start: 0, End: 2.0},
		{Text: "Now a new thought begins", Start: 2.6, End: 4.0},
	}
	points := FindNaturalEditPoints(entries)
	if len(points) != 1 {
		t.Fatalf("expected one edit point, got %d", len(points))
	}
	if points[0].Confidence <= 0.3 {
		t.Fatalf("expected sentence-end boost to raise confidence, got %v", points[0].Confidence)
	}
}

func TestFindNaturalEditPointsIgnoresShortGaps(t *testing.T) {
	entries := []model.SRTEntry{
		{Text: "one", Start: 0, End: 1.0},
		{Text: "two", Start: 1.1, End: 2.0},
	}
	if points := FindNaturalEditPoints(entries); len(points) != 0 {
		t.Fatalf("expected no edit points for a sub-threshold gap, got %d", len(points))
	}
}

func TestDetectFeatureMentions(t *testing.T) {
	entries := []model.SRTEntry{
		{Text: "This camera has a great feature set", Start: 0, End: 2},
		{Text: "The weather is nice today", Start: 2, End: 4},
	}
	segs := DetectFeatureMentions("clip.mov", entries)
	if len(segs) != 1 || segs[0].SegmentType != "feature" {
		t.Fatalf("expected exactly one feature segment, got %+v", segs)
	}
}

func TestDetectProsConsBothSides(t *testing.T) {
	entries := []model.SRTEntry{
		{Text: "It's great but there's an issue with battery life", Start: 0, End: 3},
	}
	pros, cons := DetectProsCons("clip.mov", entries)
	if len(pros) != 1 || len(cons) != 1 {
		t.Fatalf("expected the same line to register as both pro and con, got pros=%d cons=%d", len(pros), len(cons))
	}
}

func TestDetectRevealsEmphasisBoost(t *testing.T) {
	entries := []model.SRTEntry{
		{Text: "Wow, look at this, here it is!", Start: 0, End: 2},
	}
	segs := DetectReveals("clip.mov", entries)
	if len(segs) != 1 || segs[0].Score != 0.8 {
		t.Fatalf("expected emphasis-boosted reveal score 0.8, got %+v", segs)
	}
}

func TestKeywordsCappedAtTwenty(t *testing.T) {
	a := New()
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike november oscar papa quebec romeo sierra tango uniform victor whiskey"
	kws := a.Keywords(text)
	if len(kws) > 20 {
		t.Fatalf("expected at most 20 keywords, got %d", len(kws))
	}
}
