// Package cmd wires the roughcut CLI's cobra command tree, grounded on
// andrewarrow-cutlass's cmd/fcp.go and cmd/utils.go structure: one
// package-level *cobra.Command per verb, registered from an Execute
// entrypoint, with flag access via cmd.Flags().Get*.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roughcut",
	Short: "Audio marker driven rough-cut generator",
	Long: `roughcut turns a folder of raw footage and word-timestamped
transcripts into a rough-cut edit: it detects spoken cue phrases like
"slate ... done", parses the command language said between them, splits
footage into segments, ranks and orders them by style, and emits an
EDL or FCPXML cuts-only timeline ready to drop into an NLE.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var ctx = newCommandContext()

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "configuration file path (default: ./roughcut.toml or ~/.config/roughcut/config.toml)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(cutCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
