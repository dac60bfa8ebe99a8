package roughcut

import (
	"testing"

	"roughcut/internal/model"
)

func TestCreateRoughCutErrorsWithNoClips(t *testing.T) {
	e := New(nil, nil)
	if _, err := e.CreateRoughCut(StyleEpisode, nil, false, false); err == nil {
		t.Fatal("expected an error when no clips have been analyzed")
	}
}

func TestCreateRoughCutUnknownStyle(t *testing.T) {
	e := New([]model.ClipAnalysis{{FilePath: "a.mov", Duration: 10}}, nil)
	if _, err := e.CreateRoughCut(CutStyle("bogus"), nil, false, false); err == nil {
		t.Fatal("expected an error for an unrecognized cut style")
	}
}

func TestCreateRoughCutMarkerBasedWhenMarkersPresent(t *testing.T) {
	clip := model.ClipAnalysis{
		FilePath: "a.mov", Duration: 20,
		Markers: []model.AudioMarker{{Timestamp: 1, MarkerType: model.MarkerStart}},
		BestMoments: []model.Segment{
			{SourceFile: "a.mov", StartTime: 1, EndTime: 5, SegmentType: "content"},
		},
	}
	e := New([]model.ClipAnalysis{clip}, nil)
	plan, err := e.CreateRoughCut(StyleEpisode, nil, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Segments) != 1 {
		t.Fatalf("expected the single marker-derived segment to pass through, got %d", len(plan.Segments))
	}
}

func TestCreateRoughCutQualityBasedRespectsMinSegment(t *testing.T) {
	clip := model.ClipAnalysis{
		FilePath: "a.mov", Duration: 60,
		BestMoments: []model.Segment{
			{SourceFile: "a.mov", StartTime: 0, EndTime: 0.5, Score: 0.9},   // below EPISODE's 2s minimum
			{SourceFile: "a.mov", StartTime: 5, EndTime: 10, Score: 0.9},    // 5s, valid
		},
	}
	e := New([]model.ClipAnalysis{clip}, nil)
	target := 30.0
	plan, err := e.CreateRoughCut(StyleEpisode, &target, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, seg := range plan.Segments {
		if seg.Duration() < styleTable[StyleEpisode].MinSegment {
			t.Fatalf("expected no segment shorter than the style minimum, got %+v", seg)
		}
	}
	foundShort := false
	for _, r := range plan.RemovedSegments {
		if r.Reason == model.ReasonTooShort {
			foundShort = true
		}
	}
	if !foundShort {
		t.Fatal("expected the sub-minimum segment to be recorded as removed")
	}
}

func TestCreateRoughCutSmartDocumentaryPath(t *testing.T) {
	clip := model.ClipAnalysis{
		FilePath: "a.mov", Duration: 120, HasSpeech: true,
		Entries: []model.SRTEntry{
			{Text: "In 2020 I discovered something that changed my entire perspective on life.", Start: 0, End: 5},
			{Text: "It was a real problem that took years to solve.", Start: 6, End: 10},
		},
	}
	e := New([]model.ClipAnalysis{clip}, nil)
	plan, err := e.CreateRoughCut(StyleDOC, nil, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Style != string(StyleDOC) {
		t.Fatalf("expected plan style %q, got %q", StyleDOC, plan.Style)
	}
}
