package fcpxml

import (
	"strings"
	"testing"
)

func TestBuildSharesOneAssetPerSourceFile(t *testing.T) {
	doc := Build("Rough Cut", []ClipInput{
		{SourceFile: "clip1.mov", StartTime: 0, EndTime: 5},
		{SourceFile: "clip1.mov", StartTime: 10, EndTime: 12},
		{SourceFile: "clip2.mov", StartTime: 0, EndTime: 3},
	})
	if len(doc.Resources.Assets) != 2 {
		t.Fatalf("expected one asset per distinct source file, got %d", len(doc.Resources.Assets))
	}
	if len(doc.Library.Events[0].Projects[0].Sequences[0].Spine.Items) != 3 {
		t.Fatalf("expected 3 spine items for 3 clips")
	}
}

func TestBuildOffsetsAccumulate(t *testing.T) {
	doc := Build("Rough Cut", []ClipInput{
		{SourceFile: "a.mov", StartTime: 0, EndTime: 5},
		{SourceFile: "a.mov", StartTime: 10, EndTime: 12},
	})
	items := doc.Library.Events[0].Projects[0].Sequences[0].Spine.Items
	first := items[0].(AssetClip)
	second := items[1].(AssetClip)
	if first.Offset != seconds(0) {
		t.Fatalf("expected first clip offset 0, got %q", first.Offset)
	}
	if second.Offset != seconds(5) {
		t.Fatalf("expected second clip offset to follow the first clip's duration, got %q", second.Offset)
	}
}

func TestMarshalProducesValidDoctype(t *testing.T) {
	doc := Build("Rough Cut", []ClipInput{{SourceFile: "a.mov", StartTime: 0, EndTime: 2}})
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<!DOCTYPE fcpxml>") {
		t.Fatal("expected a DOCTYPE preamble")
	}
	if !strings.Contains(s, `version="1.9"`) {
		t.Fatal("expected fcpxml version 1.9")
	}
	if !strings.Contains(s, "asset-clip") {
		t.Fatal("expected at least one asset-clip element")
	}
}

func TestMarshalAttachesNote(t *testing.T) {
	doc := Build("Rough Cut", []ClipInput{{SourceFile: "a.mov", StartTime: 0, EndTime: 2, Note: "scene 3, best take"}})
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "scene 3, best take") {
		t.Fatal("expected the note text to appear in the marshaled document")
	}
}
