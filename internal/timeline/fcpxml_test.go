package timeline

import (
	"strings"
	"testing"

	"roughcut/internal/model"
)

func TestBuildFCPXMLProducesNoteFromMetadata(t *testing.T) {
	scene := 3.0
	take := 2
	segments := []model.Segment{
		{SourceFile: "a.mov", StartTime: 0, EndTime: 5, Topic: "intro", SegmentType: "quote", SceneNumber: &scene, Take: &take},
	}
	out, err := BuildFCPXML("Rough Cut", segments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "scene 3") || !strings.Contains(s, "take 2") {
		t.Fatalf("expected scene/take metadata in note: %s", s)
	}
	if !strings.Contains(s, "topic intro") {
		t.Fatal("expected topic metadata in note")
	}
}

func TestBuildFCPXMLOmitsEmptyNote(t *testing.T) {
	segments := []model.Segment{{SourceFile: "a.mov", StartTime: 0, EndTime: 5}}
	out, err := BuildFCPXML("Rough Cut", segments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "<note>") {
		t.Fatal("expected no note element when segment carries no metadata")
	}
}
