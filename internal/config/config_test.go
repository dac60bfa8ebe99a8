package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"roughcut/internal/config"
)

func TestLoadDefaultConfigExpandsPathsUnderTempHome(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected a resolved path even when no file exists")
	}
	if exists {
		t.Fatal("expected no config file to exist in a fresh temp HOME")
	}

	want := filepath.Join(tempHome, "roughcut", "projects")
	if cfg.ProjectsDir != want {
		t.Fatalf("unexpected projects dir: got %q want %q", cfg.ProjectsDir, want)
	}
	if cfg.WhisperModel != "base" {
		t.Fatalf("unexpected default whisper model: %q", cfg.WhisperModel)
	}
	if cfg.MaxTranscriptionWorkers != 4 {
		t.Fatalf("unexpected default worker count: %d", cfg.MaxTranscriptionWorkers)
	}
	if cfg.APIBind != "127.0.0.1:8787" {
		t.Fatalf("unexpected default api bind: %q", cfg.APIBind)
	}
}

func TestLoadReadsTOMLFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roughcut.toml")
	contents := `
whisper_model = "small"
max_transcription_workers = 8
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as existing")
	}
	if cfg.WhisperModel != "small" {
		t.Fatalf("expected whisper_model override, got %q", cfg.WhisperModel)
	}
	if cfg.MaxTranscriptionWorkers != 8 {
		t.Fatalf("expected max_transcription_workers override, got %d", cfg.MaxTranscriptionWorkers)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log_level override, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsUnsupportedLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roughcut.toml")
	if err := os.WriteFile(path, []byte(`log_format = "xml"`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected an error for an unsupported log_format")
	}
}

func TestFootagePathAndExportsPathDefaultUnderProject(t *testing.T) {
	cfg := config.Default()
	cfg.FootageDir = ""
	cfg.ExportsDir = ""

	project := filepath.Join("tmp", "demo_project")
	if got, want := cfg.FootagePath(project), filepath.Join(project, "01_footage"); got != want {
		t.Fatalf("unexpected footage path: got %q want %q", got, want)
	}
	if got, want := cfg.ExportsPath(project), filepath.Join(project, "03_exports", "rough_cuts"); got != want {
		t.Fatalf("unexpected exports path: got %q want %q", got, want)
	}
}

func TestCreateSampleWritesReadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "roughcut.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected sample file to exist: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty sample config")
	}
}
