package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"roughcut/internal/model"
)

func TestDiscoverPrefersNormalizedOverOriginal(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "interview.mov"), "x")
	mustWriteFile(t, filepath.Join(dir, "interview_normalized.mov"), "x")
	mustWriteFile(t, filepath.Join(dir, "broll.mov"), "x")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files (normalized wins, broll has no normalized twin), got %d: %v", len(files), files)
	}
	foundNormalized := false
	for _, f := range files {
		if filepath.Base(f) == "interview_normalized.mov" {
			foundNormalized = true
		}
		if filepath.Base(f) == "interview.mov" {
			t.Fatal("expected the non-normalized original to be excluded when a normalized twin exists")
		}
	}
	if !foundNormalized {
		t.Fatal("expected the normalized file to be kept")
	}
}

func TestDiscoverKeepsDistinctTakeNumbers(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "take (1).mov"), "x")
	mustWriteFile(t, filepath.Join(dir, "take (2).mov"), "x")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected both numbered takes kept as distinct clips, got %d: %v", len(files), files)
	}
}

func TestApplyFilenameConventionDetectsHookFlowAndTake(t *testing.T) {
	var a model.ClipAnalysis
	applyFilenameConvention(&a, "/footage/HOOK_CH_opening (2).mov")
	if !a.IsHook {
		t.Fatal("expected is_hook true")
	}
	if a.HookFlowType != "CH" {
		t.Fatalf("expected CH hook flow, got %q", a.HookFlowType)
	}
	if a.TakeNumber == nil || *a.TakeNumber != 2 {
		t.Fatalf("expected take number 2, got %v", a.TakeNumber)
	}
}

func TestApplyFilenameConventionDetectsStepAndTopic(t *testing.T) {
	var a model.ClipAnalysis
	applyFilenameConvention(&a, "/footage/STEP3_SETUP_install.mov")
	if a.StepNumber == nil || *a.StepNumber != 3 {
		t.Fatalf("expected step 3, got %v", a.StepNumber)
	}
	if a.TopicTag != "setup" {
		t.Fatalf("expected topic tag setup, got %q", a.TopicTag)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
