package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roughcut/internal/model"
)

func TestRenderPlanWritesSegmentsAndRemovedFootage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "preview.html")

	plan := &model.RoughCutPlan{
		Style:         "doc",
		TotalDuration: 12.5,
		Segments: []model.Segment{
			{SourceFile: "a.mov", StartTime: 0, EndTime: 4, Text: "hello there", Topic: "intro", SegmentType: "hook"},
		},
		RemovedSegments: []model.RemovedSegment{
			{Segment: model.Segment{SourceFile: "b.mov"}, Reason: model.RemovalReason("low_quality"), OriginalScore: 0.2},
		},
	}

	path, err := RenderPlan(out, "demo", plan)
	if err != nil {
		t.Fatalf("RenderPlan returned error: %v", err)
	}
	if path != out {
		t.Fatalf("expected path %q, got %q", out, path)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected report file to exist: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "a.mov") {
		t.Fatal("expected report to mention the segment's source file")
	}
	if !strings.Contains(html, "hello there") {
		t.Fatal("expected report to include segment text")
	}
	if !strings.Contains(html, "b.mov") {
		t.Fatal("expected report to list removed footage")
	}
}

func TestRenderPlanCreatesMissingParentDirectory(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "preview.html")

	plan := &model.RoughCutPlan{Style: "doc"}
	if _, err := RenderPlan(out, "demo", plan); err != nil {
		t.Fatalf("RenderPlan returned error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected report file to exist: %v", err)
	}
}
