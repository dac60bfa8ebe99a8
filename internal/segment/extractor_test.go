package segment

import (
	"testing"

	"roughcut/internal/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestExtractOpensSegmentAtStartMarkerAndBoundsItAtTheNextMarker(t *testing.T) {
	words := []model.Word{
		{Word: "one", Start: 2.0, End: 2.3},
		{Word: "two", Start: 2.5, End: 2.8},
		{Word: "three", Start: 6.0, End: 6.3},
	}
	markers := []model.AudioMarker{
		{Timestamp: 0, MarkerType: model.MarkerStart, CutPoint: 2.0, DoneTime: 1.5, SourceFile: "a.mov"},
		{Timestamp: 5.0, MarkerType: model.MarkerStart, CutPoint: 6.0, DoneTime: 4.5, SourceFile: "a.mov"},
	}

	segs := Extract(markers, words, "a.mov", 0)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	first := segs[0]
	if first.StartTime != 2.0 {
		t.Fatalf("expected first segment to start at 2.0, got %v", first.StartTime)
	}
	wantEnd := words[1].End + segmentTailPadding
	if first.EndTime != wantEnd {
		t.Fatalf("expected first segment to end at %v, got %v", wantEnd, first.EndTime)
	}
	if first.Text != "one two" {
		t.Fatalf("expected joined text %q, got %q", "one two", first.Text)
	}
}

func TestExtractTrailingSegmentFallsBackToClipDuration(t *testing.T) {
	words := []model.Word{
		{Word: "hello", Start: 2.0, End: 2.3},
	}
	markers := []model.AudioMarker{
		{Timestamp: 0, MarkerType: model.MarkerStart, CutPoint: 2.0, SourceFile: "a.mov"},
	}
	segs := Extract(markers, words, "a.mov", 12.0)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].EndTime != 12.0 {
		t.Fatalf("expected trailing segment to end at the clip duration 12.0, got %v", segs[0].EndTime)
	}
}

func TestExtractAppliesRetroactiveRemoveToThePreviousSegment(t *testing.T) {
	words := []model.Word{
		{Word: "keep", Start: 2.0, End: 2.3},
		{Word: "toss", Start: 6.0, End: 6.3},
	}
	markers := []model.AudioMarker{
		{Timestamp: 0, MarkerType: model.MarkerStart, CutPoint: 2.0, SourceFile: "a.mov"},
		{Timestamp: 5.0, MarkerType: model.MarkerStart, CutPoint: 6.0, SourceFile: "a.mov"},
		{
			Timestamp:  9.0,
			MarkerType: model.MarkerRetroactive,
			DoneTime:   9.5,
			SourceFile: "a.mov",
			ParsedCommands: model.ParsedCommands{
				RetroactiveActions: []string{"remove"},
			},
		},
	}
	segs := Extract(markers, words, "a.mov", 10.0)
	if len(segs) != 1 {
		t.Fatalf("expected the removed segment to be dropped, got %d segments", len(segs))
	}
	if segs[0].Text != "keep" {
		t.Fatalf("expected the surviving segment to be the first one, got %q", segs[0].Text)
	}
}

func TestExtractAppliesRetroactiveScoreAndDemotesEarlierBest(t *testing.T) {
	words := []model.Word{
		{Word: "first", Start: 2.0, End: 2.3},
		{Word: "second", Start: 6.0, End: 6.3},
	}
	markers := []model.AudioMarker{
		{Timestamp: 0, MarkerType: model.MarkerStart, CutPoint: 2.0, SourceFile: "a.mov"},
		{
			Timestamp:  3.0,
			MarkerType: model.MarkerRetroactive,
			DoneTime:   3.5,
			SourceFile: "a.mov",
			ParsedCommands: model.ParsedCommands{
				RetroactiveActions: []string{"best"},
				Score:              model.QualityBest,
			},
		},
		{Timestamp: 5.0, MarkerType: model.MarkerStart, CutPoint: 6.0, SourceFile: "a.mov"},
		{
			Timestamp:  9.0,
			MarkerType: model.MarkerRetroactive,
			DoneTime:   9.5,
			SourceFile: "a.mov",
			ParsedCommands: model.ParsedCommands{
				RetroactiveActions: []string{"best"},
				Score:              model.QualityBest,
			},
		},
	}
	segs := Extract(markers, words, "a.mov", 10.0)
	if len(segs) != 2 {
		t.Fatalf("expected 2 surviving segments, got %d", len(segs))
	}
	var firstSeg, secondSeg *model.Segment
	for i := range segs {
		switch segs[i].Text {
		case "first":
			firstSeg = &segs[i]
		case "second":
			secondSeg = &segs[i]
		}
	}
	if firstSeg == nil || secondSeg == nil {
		t.Fatal("expected both segments to be present")
	}
	if firstSeg.QualityWord != model.QualityGood {
		t.Fatalf("expected the earlier best segment to be demoted to good, got %q", firstSeg.QualityWord)
	}
	if secondSeg.QualityWord != model.QualityBest {
		t.Fatalf("expected the later segment to keep best, got %q", secondSeg.QualityWord)
	}
}

func TestExtractOrdersSegmentsBySceneNumberThenTakeThenStartTime(t *testing.T) {
	words := []model.Word{
		{Word: "a", Start: 2.0, End: 2.3},
		{Word: "b", Start: 6.0, End: 6.3},
	}
	markers := []model.AudioMarker{
		{
			Timestamp: 5.0, MarkerType: model.MarkerStart, CutPoint: 6.0, SourceFile: "a.mov",
			ParsedCommands: model.ParsedCommands{SceneNumber: floatPtr(1), Take: intPtr(1)},
		},
		{
			Timestamp: 0, MarkerType: model.MarkerStart, CutPoint: 2.0, SourceFile: "a.mov",
			ParsedCommands: model.ParsedCommands{SceneNumber: floatPtr(1), Take: intPtr(2)},
		},
	}
	segs := Extract(markers, words, "a.mov", 10.0)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Text != "b" || segs[1].Text != "a" {
		t.Fatalf("expected take 1 (\"b\") before take 2 (\"a\"), got order %q, %q", segs[0].Text, segs[1].Text)
	}
}

func TestExtractReturnsNilForNoMarkers(t *testing.T) {
	if segs := Extract(nil, nil, "a.mov", 0); segs != nil {
		t.Fatalf("expected nil segments for no markers, got %v", segs)
	}
}
