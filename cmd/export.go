package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"roughcut/internal/analysis"
	"roughcut/internal/model"
	"roughcut/internal/roughcut"
	"roughcut/internal/timeline"
)

var exportCmd = &cobra.Command{
	Use:   "export <footage-dir> [output-file]",
	Short: "Export a rough cut to an explicit EDL or FCPXML file",
	Long: `export runs the same analysis and rough-cut engine as "cut" but
writes a single named output file rather than the conventional
03_exports/rough_cuts layout, matching cutlass's "create-empty
[filename]"-style output/positional-argument precedence (the
--output flag wins over a positional filename, which wins over a
timestamped default).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		logger := ctx.loggerFor(cfg)

		footageDir := args[0]
		styleFlag, _ := cmd.Flags().GetString("style")
		format, _ := cmd.Flags().GetString("format")
		useMarkers, _ := cmd.Flags().GetBool("audio-markers")
		output, _ := cmd.Flags().GetString("output")

		style, ok := cutStyleByFlag[styleFlag]
		if !ok {
			return fmt.Errorf("unknown style %q", styleFlag)
		}

		var filename string
		switch {
		case output != "":
			filename = output
		case len(args) > 1:
			filename = args[1]
		default:
			ext := format
			filename = fmt.Sprintf("rough_cut_%d.%s", time.Now().Unix(), ext)
		}

		files, err := analysis.Discover(footageDir)
		if err != nil {
			return fmt.Errorf("discover footage: %w", err)
		}
		if len(files) == 0 {
			return errors.New("no video files found in footage directory")
		}

		analyzer := analysis.New(logger)
		clips := make([]model.ClipAnalysis, 0, len(files))
		for _, f := range files {
			clip, err := analyzer.AnalyzeClip(context.Background(), f)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", f, err)
			}
			clips = append(clips, clip)
		}

		engine := roughcut.New(clips, logger)
		plan, err := engine.CreateRoughCut(style, nil, false, useMarkers)
		if err != nil {
			return fmt.Errorf("create rough cut: %w", err)
		}

		if dir := filepath.Dir(filename); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}

		switch format {
		case "edl":
			clipDurations := make(map[string]float64, len(clips))
			for _, c := range clips {
				clipDurations[c.FilePath] = c.Duration
			}
			styleCfg, _ := roughcut.Config(style)
			edl := timeline.WriteEDL(fmt.Sprintf("Rough Cut: %s", styleFlag), plan.Segments, clipDurations, styleCfg.PreHandle, styleCfg.PostHandle)
			if err := os.WriteFile(filename, []byte(edl), 0o644); err != nil {
				return fmt.Errorf("write EDL: %w", err)
			}
		case "fcpxml":
			xml, err := timeline.BuildFCPXML(filepath.Base(footageDir), plan.Segments)
			if err != nil {
				return fmt.Errorf("build FCPXML: %w", err)
			}
			if err := os.WriteFile(filename, xml, 0o644); err != nil {
				return fmt.Errorf("write FCPXML: %w", err)
			}
		default:
			return fmt.Errorf("unknown format %q (want edl or fcpxml)", format)
		}

		fmt.Printf("Exported %s\n", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("style", "doc", "rough cut style")
	exportCmd.Flags().String("format", "edl", "output format: edl or fcpxml")
	exportCmd.Flags().Bool("audio-markers", false, "build the cut from audio-marker segments when any clip has markers")
	exportCmd.Flags().StringP("output", "o", "", "output file path (overrides the positional filename)")
}
