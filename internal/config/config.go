// Package config loads roughcut's TOML configuration file, the way
// five82-spindle's internal/config package loads spindle.toml: defaults
// first, then an optional file merged on top, then normalization and
// validation before the result is handed to the rest of the program.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every tunable the CLI and background services read.
type Config struct {
	ProjectsDir string `toml:"projects_dir"`
	FootageDir  string `toml:"footage_dir"`
	ExportsDir  string `toml:"exports_dir"`

	WhisperBinary string `toml:"whisper_binary"`
	WhisperModel  string `toml:"whisper_model"`
	FFprobeBinary string `toml:"ffprobe_binary"`
	Language      string `toml:"language"`

	MaxTranscriptionWorkers int     `toml:"max_transcription_workers"`
	ScanIntervalSeconds     int     `toml:"scan_interval_seconds"`
	PreHandleSeconds        float64 `toml:"pre_handle_seconds"`
	PostHandleSeconds       float64 `toml:"post_handle_seconds"`

	APIBind string `toml:"api_bind"`

	PreviewEnabled bool `toml:"preview_enabled"`

	LogFormat string `toml:"log_format"`
	LogLevel  string `toml:"log_level"`
}

const (
	defaultProjectsDir   = "~/roughcut/projects"
	defaultFootageDirSeg = "01_footage"
	defaultExportsDirSeg = "03_exports"

	defaultWhisperBinary = "whisper"
	defaultWhisperModel  = "base"
	defaultFFprobeBinary = "ffprobe"
	defaultLanguage      = "auto"

	defaultMaxTranscriptionWorkers = 4
	defaultScanIntervalSeconds     = 10
	defaultPreHandleSeconds        = 0.5
	defaultPostHandleSeconds       = 0.5

	defaultAPIBind = "127.0.0.1:8787"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with the repository's built-in
// defaults, before any file or environment override is applied.
func Default() Config {
	return Config{
		ProjectsDir:             defaultProjectsDir,
		WhisperBinary:           defaultWhisperBinary,
		WhisperModel:            defaultWhisperModel,
		FFprobeBinary:           defaultFFprobeBinary,
		Language:                defaultLanguage,
		MaxTranscriptionWorkers: defaultMaxTranscriptionWorkers,
		ScanIntervalSeconds:     defaultScanIntervalSeconds,
		PreHandleSeconds:        defaultPreHandleSeconds,
		PostHandleSeconds:       defaultPostHandleSeconds,
		APIBind:                 defaultAPIBind,
		LogFormat:               defaultLogFormat,
		LogLevel:                defaultLogLevel,
	}
}

// DefaultConfigPath returns ~/.config/roughcut/config.toml, expanded.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/roughcut/config.toml")
}

// Load locates, parses, normalizes and validates a configuration file.
// An empty path checks ./roughcut.toml and the user config directory, in
// that order, falling back to pure defaults if neither exists.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs("roughcut.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.ProjectsDir, err = ExpandPath(c.ProjectsDir); err != nil {
		return fmt.Errorf("projects_dir: %w", err)
	}
	if strings.TrimSpace(c.FootageDir) != "" {
		if c.FootageDir, err = ExpandPath(c.FootageDir); err != nil {
			return fmt.Errorf("footage_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.ExportsDir) != "" {
		if c.ExportsDir, err = ExpandPath(c.ExportsDir); err != nil {
			return fmt.Errorf("exports_dir: %w", err)
		}
	}

	c.WhisperBinary = strings.TrimSpace(c.WhisperBinary)
	if c.WhisperBinary == "" {
		c.WhisperBinary = defaultWhisperBinary
	}
	c.WhisperModel = strings.TrimSpace(c.WhisperModel)
	if c.WhisperModel == "" {
		c.WhisperModel = defaultWhisperModel
	}
	c.FFprobeBinary = strings.TrimSpace(c.FFprobeBinary)
	if c.FFprobeBinary == "" {
		c.FFprobeBinary = defaultFFprobeBinary
	}
	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		c.Language = defaultLanguage
	}

	if c.MaxTranscriptionWorkers <= 0 {
		c.MaxTranscriptionWorkers = defaultMaxTranscriptionWorkers
	}
	if c.ScanIntervalSeconds <= 0 {
		c.ScanIntervalSeconds = defaultScanIntervalSeconds
	}
	if c.PreHandleSeconds < 0 {
		c.PreHandleSeconds = defaultPreHandleSeconds
	}
	if c.PostHandleSeconds < 0 {
		c.PostHandleSeconds = defaultPostHandleSeconds
	}

	c.APIBind = strings.TrimSpace(c.APIBind)
	if c.APIBind == "" {
		c.APIBind = defaultAPIBind
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "":
		c.LogFormat = defaultLogFormat
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	return nil
}

// FootagePath returns the footage directory for a project, honoring an
// explicit FootageDir override and otherwise defaulting to
// <projectPath>/01_footage.
func (c *Config) FootagePath(projectPath string) string {
	if c.FootageDir != "" {
		return c.FootageDir
	}
	return filepath.Join(projectPath, defaultFootageDirSeg)
}

// ExportsPath returns the rough-cut export directory for a project.
func (c *Config) ExportsPath(projectPath string) string {
	if c.ExportsDir != "" {
		return c.ExportsDir
	}
	return filepath.Join(projectPath, defaultExportsDirSeg, "rough_cuts")
}

// ExpandPath resolves a leading "~" to the user's home directory and
// returns a cleaned absolute path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
