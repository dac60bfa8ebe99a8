package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateSample writes a commented sample configuration file to path,
// creating parent directories as needed.
func CreateSample(path string) error {
	sample := `# roughcut configuration
# =======================

# Where project directories live. Each project directory is expected to
# contain a 01_footage subdirectory (unless footage_dir is set below)
# and gets a 03_exports/rough_cuts directory created for it on demand.
projects_dir = "~/roughcut/projects"

# Optional overrides; leave blank to use <project>/01_footage and
# <project>/03_exports/rough_cuts.
footage_dir = ""
exports_dir = ""

# Speech-to-text
whisper_binary = "whisper"
whisper_model = "base"
ffprobe_binary = "ffprobe"
language = "auto"

# Background services
max_transcription_workers = 4
scan_interval_seconds = 10
pre_handle_seconds = 0.5
post_handle_seconds = 0.5

# Status dashboard
api_bind = "127.0.0.1:8787"

# Open a rendered HTML preview in a browser tab after "roughcut cut"
preview_enabled = false

# Logging
log_format = "console"
log_level = "info"
`

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
