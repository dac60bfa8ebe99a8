package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"roughcut/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

func init() {
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand())
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Printf("Wrote sample configuration to %s\n", target)
			return nil
		},
	}
	cmd.Flags().StringVar(&targetPath, "path", "", "target file path (default: ~/.config/roughcut/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing file")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Load and validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, resolved, exists, err := config.Load(ctx.configFlag)
			if err != nil {
				return err
			}
			if !exists {
				fmt.Printf("No config file found; using defaults (would resolve to %s)\n", resolved)
			} else {
				fmt.Printf("Loaded config from %s\n", resolved)
			}
			fmt.Printf("projects_dir: %s\n", cfg.ProjectsDir)
			fmt.Printf("whisper_model: %s\n", cfg.WhisperModel)
			fmt.Printf("max_transcription_workers: %d\n", cfg.MaxTranscriptionWorkers)
			fmt.Printf("api_bind: %s\n", cfg.APIBind)
			return nil
		},
	}
}
