package marker

import (
	"testing"

	"roughcut/internal/model"
)

func words(entries ...[3]interface{}) []model.Word {
	var ws []model.Word
	for _, e := range entries {
		ws = append(ws, model.Word{
			Word:  e[0].(string),
			Start: e[1].(float64),
			End:   e[2].(float64),
		})
	}
	return ws
}

func TestDetectStartMarkerWithSceneNumber(t *testing.T) {
	ws := words(
		[3]interface{}{"slate", 0.0, 0.5},
		[3]interface{}{"scene", 0.6, 0.9},
		[3]interface{}{"one", 1.0, 1.2},
		[3]interface{}{"done", 1.3, 1.5},
		[3]interface{}{"hello", 2.0, 2.3},
	)
	d := New(nil)
	markers := d.Detect(ws, "a.mov")
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	m := markers[0]
	if m.MarkerType != model.MarkerStart {
		t.Fatalf("expected START marker, got %q", m.MarkerType)
	}
	if m.ParsedCommands.SceneNumber == nil || *m.ParsedCommands.SceneNumber != 1 {
		t.Fatalf("expected scene number 1, got %v", m.ParsedCommands.SceneNumber)
	}
	wantCut := 2.0 - paddingBefore
	if m.CutPoint != wantCut {
		t.Fatalf("expected cut point %v, got %v", wantCut, m.CutPoint)
	}
}

func TestDetectRetroactiveMarkerFromApply(t *testing.T) {
	ws := words(
		[3]interface{}{"slate", 10.0, 10.5},
		[3]interface{}{"apply", 10.6, 10.9},
		[3]interface{}{"best", 11.0, 11.2},
		[3]interface{}{"done", 11.3, 11.5},
	)
	d := New(nil)
	markers := d.Detect(ws, "a.mov")
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	if markers[0].MarkerType != model.MarkerRetroactive {
		t.Fatalf("expected RETROACTIVE marker, got %q", markers[0].MarkerType)
	}
	if markers[0].CutPoint != markers[0].DoneTime {
		t.Fatalf("expected retroactive cut point to equal done time, got %v vs %v", markers[0].CutPoint, markers[0].DoneTime)
	}
}

func TestDetectStandaloneMarkerWithoutDoneUsesFallback(t *testing.T) {
	ws := words(
		[3]interface{}{"slate", 0.0, 0.5},
		[3]interface{}{"broll", 0.6, 0.9},
		[3]interface{}{"kitchen", 1.0, 1.3},
	)
	d := New(nil)
	markers := d.Detect(ws, "a.mov")
	if len(markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(markers))
	}
	m := markers[0]
	if m.MarkerType != model.MarkerStandalone {
		t.Fatalf("expected STANDALONE marker, got %q", m.MarkerType)
	}
	wantCut := m.DoneTime + standaloneFallback
	if m.CutPoint != wantCut {
		t.Fatalf("expected fallback cut point %v, got %v", wantCut, m.CutPoint)
	}
}

func TestDetectIgnoresBareSlateWithNoCommandsOrDone(t *testing.T) {
	ws := words(
		[3]interface{}{"slate", 0.0, 0.5},
	)
	d := New(nil)
	markers := d.Detect(ws, "a.mov")
	if len(markers) != 0 {
		t.Fatalf("expected no markers for a lone slate, got %d", len(markers))
	}
}

func TestDetectSkipsWordsBeyondMarkerWindow(t *testing.T) {
	ws := words(
		[3]interface{}{"slate", 0.0, 0.5},
		[3]interface{}{"scene", 20.0, 20.3},
		[3]interface{}{"one", 20.4, 20.6},
		[3]interface{}{"done", 20.7, 20.9},
	)
	d := New(nil)
	markers := d.Detect(ws, "a.mov")
	if len(markers) != 0 {
		t.Fatalf("expected the late done to fall outside the marker window, got %d markers", len(markers))
	}
}

func TestDetectEmptyTranscriptReturnsNoMarkers(t *testing.T) {
	d := New(nil)
	if markers := d.Detect(nil, "a.mov"); len(markers) != 0 {
		t.Fatalf("expected no markers for an empty transcript, got %d", len(markers))
	}
}
