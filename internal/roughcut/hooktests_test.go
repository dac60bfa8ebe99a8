package roughcut

import (
	"testing"

	"roughcut/internal/model"
)

func TestGenerateHookCandidatesFindsHookPhrase(t *testing.T) {
	clip := model.ClipAnalysis{
		FilePath: "hook.mov",
		IsHook:   true,
		Entries: []model.SRTEntry{
			{Text: "In this video I'm going to show you exactly how this works.", Start: 0, End: 8},
		},
	}
	candidates := GenerateHookCandidates([]model.ClipAnalysis{clip}, func(model.ClipAnalysis, float64, float64) float64 { return 0.8 }, 5)
	if len(candidates) != 1 {
		t.Fatalf("expected one hook candidate, got %d", len(candidates))
	}
	if candidates[0].Label != "value_prop" {
		t.Fatalf("expected value_prop hook type, got %q", candidates[0].Label)
	}
}

func TestGenerateHookCandidatesRespectsMaxHooks(t *testing.T) {
	var entries []model.SRTEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, model.SRTEntry{
			Text:  "Here's how this amazing thing works in this tutorial",
			Start: float64(i) * 8,
			End:   float64(i)*8 + 6,
		})
	}
	clip := model.ClipAnalysis{FilePath: "hook.mov", IsHook: true, Entries: entries}
	candidates := GenerateHookCandidates([]model.ClipAnalysis{clip}, func(model.ClipAnalysis, float64, float64) float64 { return 0.9 }, 3)
	if len(candidates) > 3 {
		t.Fatalf("expected at most 3 candidates, got %d", len(candidates))
	}
}

func TestClarityScorePenalizesFillers(t *testing.T) {
	clean := clarityScore("This is a clear and well structured sentence about the topic.")
	filler := clarityScore("um so like you know basically actually um it was fine")
	if filler >= clean {
		t.Fatalf("expected filler-heavy text to score lower: clean=%v filler=%v", clean, filler)
	}
}
