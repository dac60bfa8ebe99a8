package roughcut

import (
	"testing"

	"roughcut/internal/model"
)

func TestMergeAdjacentSegmentsWithinGap(t *testing.T) {
	segs := []model.Segment{
		{SourceFile: "a.mov", StartTime: 0, EndTime: 5, Text: "hello", Score: 0.5},
		{SourceFile: "a.mov", StartTime: 5.5, EndTime: 10, Text: "world", Score: 0.8},
	}
	merged := mergeAdjacentSegments(segs, 1.0)
	if len(merged) != 1 {
		t.Fatalf("expected segments within gap threshold to merge, got %d", len(merged))
	}
	if merged[0].EndTime != 10 || merged[0].Score != 0.8 {
		t.Fatalf("expected merged segment to extend to 10 with max score, got %+v", merged[0])
	}
}

func TestMergeAdjacentSegmentsBeyondGapStaysSeparate(t *testing.T) {
	segs := []model.Segment{
		{SourceFile: "a.mov", StartTime: 0, EndTime: 5},
		{SourceFile: "a.mov", StartTime: 10, EndTime: 15},
	}
	merged := mergeAdjacentSegments(segs, 1.0)
	if len(merged) != 2 {
		t.Fatalf("expected segments beyond gap threshold to remain separate, got %d", len(merged))
	}
}

func TestMergeAdjacentSegmentsDifferentFilesStaySeparate(t *testing.T) {
	segs := []model.Segment{
		{SourceFile: "a.mov", StartTime: 0, EndTime: 5},
		{SourceFile: "b.mov", StartTime: 5.1, EndTime: 10},
	}
	merged := mergeAdjacentSegments(segs, 5.0)
	if len(merged) != 2 {
		t.Fatalf("expected different-file segments to stay separate regardless of gap, got %d", len(merged))
	}
}

func TestDeduplicateSegmentsDropsHighOverlap(t *testing.T) {
	segs := []model.Segment{
		{SourceFile: "a.mov", StartTime: 0, EndTime: 10, Score: 0.9},
		{SourceFile: "a.mov", StartTime: 1, EndTime: 9, Score: 0.5},
	}
	kept := deduplicateSegments(segs, 0.3)
	if len(kept) != 1 {
		t.Fatalf("expected heavily overlapping lower-score segment to be dropped, got %d", len(kept))
	}
	if kept[0].Score != 0.9 {
		t.Fatalf("expected the higher-score segment to win, got %+v", kept[0])
	}
}

func TestDeduplicateSegmentsKeepsDistantSegments(t *testing.T) {
	segs := []model.Segment{
		{SourceFile: "a.mov", StartTime: 0, EndTime: 5, Score: 0.9},
		{SourceFile: "a.mov", StartTime: 20, EndTime: 25, Score: 0.5},
	}
	kept := deduplicateSegments(segs, 0.3)
	if len(kept) != 2 {
		t.Fatalf("expected non-overlapping segments to both survive, got %d", len(kept))
	}
}

func TestDeduplicateSegmentsNormalizedVariantTreatedAsSameSource(t *testing.T) {
	segs := []model.Segment{
		{SourceFile: "clip.mov", StartTime: 0, EndTime: 10, Score: 0.6},
		{SourceFile: "clip_normalized.mov", StartTime: 0, EndTime: 10, Score: 0.9},
	}
	kept := deduplicateSegments(segs, 0.3)
	if len(kept) != 1 {
		t.Fatalf("expected normalized/original pair to dedupe as one source, got %d", len(kept))
	}
	if kept[0].SourceFile != "clip_normalized.mov" {
		t.Fatalf("expected the higher-scored normalized variant to be kept, got %q", kept[0].SourceFile)
	}
}

func TestTruncateOversizedTracksRemainder(t *testing.T) {
	segs := []model.Segment{{SourceFile: "a.mov", StartTime: 0, EndTime: 100, Score: 0.8}}
	kept, removed := truncateOversized(segs, 30.0)
	if len(kept) != 1 || kept[0].EndTime != 30 {
		t.Fatalf("expected kept segment truncated to 30s, got %+v", kept)
	}
	if len(removed) != 1 || removed[0].Reason != model.ReasonTruncatedRemainder {
		t.Fatalf("expected one truncated-remainder removal, got %+v", removed)
	}
	if removed[0].Segment.StartTime != 30 || removed[0].Segment.EndTime != 100 {
		t.Fatalf("expected remainder to span 30..100, got %+v", removed[0].Segment)
	}
}

func TestTruncateOversizedLeavesShortSegmentsAlone(t *testing.T) {
	segs := []model.Segment{{SourceFile: "a.mov", StartTime: 0, EndTime: 10}}
	kept, removed := truncateOversized(segs, 30.0)
	if len(kept) != 1 || len(removed) != 0 {
		t.Fatalf("expected no truncation for a segment under the limit, got kept=%+v removed=%+v", kept, removed)
	}
}

func TestOrganizeByStructureDocSmallSetFallsIntoMainStory(t *testing.T) {
	segs := []model.Segment{
		{SourceFile: "a.mov", StartTime: 0, EndTime: 5},
		{SourceFile: "a.mov", StartTime: 5, EndTime: 10},
	}
	structure, _ := organizeByStructure(segs, StyleDOC)
	if len(structure["main_story"]) != 2 {
		t.Fatalf("expected small segment sets to collapse into main_story, got %+v", structure)
	}
}

func TestOrganizeByStructureDocLargeSetFillsAllSections(t *testing.T) {
	var segs []model.Segment
	for i := 0; i < 9; i++ {
		segs = append(segs, model.Segment{SourceFile: "a.mov", StartTime: float64(i) * 10, EndTime: float64(i)*10 + 5})
	}
	structure, _ := organizeByStructure(segs, StyleDOC)
	for _, section := range []string{"opening", "context", "main_story", "reflection", "closing"} {
		if len(structure[section]) == 0 {
			t.Errorf("expected section %q to be populated for a large segment set", section)
		}
	}
}
