package cmd

import (
	"strings"
	"sync"

	"roughcut/internal/config"
	"roughcut/internal/rclog"
)

// commandContext lazily loads and caches the configuration and logger
// shared by every subcommand, the way spindle's cmd/spindle/context.go
// avoids re-parsing roughcut.toml once per invocation.
type commandContext struct {
	configFlag string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *rclog.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) loggerFor(cfg *config.Config) *rclog.Logger {
	c.loggerOnce.Do(func() {
		level := "info"
		if cfg != nil {
			level = cfg.LogLevel
		}
		c.logger = rclog.New(nil, level)
	})
	return c.logger
}
