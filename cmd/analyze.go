package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roughcut/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <footage-dir>",
	Short: "Discover and analyze clips in a footage directory",
	Long: `analyze walks a footage directory, probes each video's duration,
applies filename-convention parsing (step number, topic tag, hook flow
type, take number, shot type), loads any sibling transcript, and runs
audio-marker detection on transcripts that carry word timestamps.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		logger := ctx.loggerFor(cfg)

		footageDir := args[0]
		files, err := analysis.Discover(footageDir)
		if err != nil {
			return fmt.Errorf("discover footage: %w", err)
		}
		if len(files) == 0 {
			fmt.Println("No video files found.")
			return nil
		}

		analyzer := analysis.New(logger)
		rows := make([][]string, 0, len(files))
		markerTotal := 0
		for _, f := range files {
			clip, err := analyzer.AnalyzeClip(context.Background(), f)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", f, err)
			}
			markerTotal += len(clip.Markers)
			rows = append(rows, []string{
				f,
				fmt.Sprintf("%.1fs", clip.Duration),
				clip.ShotType,
				clip.TopicTag,
				clip.HookFlowType,
				fmt.Sprintf("%d", len(clip.Markers)),
			})
		}

		fmt.Println(renderTable(
			[]string{"File", "Duration", "Shot", "Topic", "Hook Flow", "Markers"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignRight},
		))
		fmt.Printf("%d clips, %d markers detected\n", len(files), markerTotal)
		return nil
	},
}
