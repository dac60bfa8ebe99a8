package config

import "errors"

// Validate ensures the configuration is usable before anything tries to
// run background services or a CLI command against it.
func (c *Config) Validate() error {
	if c.ProjectsDir == "" {
		return errors.New("projects_dir must be set")
	}
	if c.MaxTranscriptionWorkers <= 0 {
		return errors.New("max_transcription_workers must be positive")
	}
	if c.ScanIntervalSeconds <= 0 {
		return errors.New("scan_interval_seconds must be positive")
	}
	if c.PreHandleSeconds < 0 || c.PostHandleSeconds < 0 {
		return errors.New("pre_handle_seconds and post_handle_seconds must be zero or positive")
	}
	if c.APIBind == "" {
		return errors.New("api_bind must be set")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.New("log_format must be \"console\" or \"json\"")
	}
	return nil
}
