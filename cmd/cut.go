package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"roughcut/internal/analysis"
	"roughcut/internal/model"
	"roughcut/internal/preview"
	"roughcut/internal/roughcut"
	"roughcut/internal/timeline"
)

var cutStyleByFlag = map[string]roughcut.CutStyle{
	"doc":         roughcut.StyleDOC,
	"documentary": roughcut.StyleDOC,
	"interview":   roughcut.StyleInterview,
	"episode":     roughcut.StyleEpisode,
	"tutorial":    roughcut.StyleTutorial,
	"review":      roughcut.StyleReview,
	"unboxing":    roughcut.StyleUnboxing,
	"comparison":  roughcut.StyleComparison,
	"setup":       roughcut.StyleSetup,
	"explainer":   roughcut.StyleExplainer,
}

var cutCmd = &cobra.Command{
	Use:   "cut <footage-dir>",
	Short: "Generate a rough-cut EDL from analyzed footage",
	Long: `cut discovers clips in a footage directory, analyzes each one,
runs the rough-cut engine for the requested style, and writes an EDL
(and, with --fcpxml, an FCPXML cuts-only timeline) into <project>/03_exports/rough_cuts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		logger := ctx.loggerFor(cfg)

		footageDir := args[0]
		styleFlag, _ := cmd.Flags().GetString("style")
		useMarkers, _ := cmd.Flags().GetBool("audio-markers")
		smart, _ := cmd.Flags().GetBool("smart")
		wantFCPXML, _ := cmd.Flags().GetBool("fcpxml")
		wantPreview, _ := cmd.Flags().GetBool("preview")
		outDir, _ := cmd.Flags().GetString("out")

		style, ok := cutStyleByFlag[styleFlag]
		if !ok {
			return fmt.Errorf("unknown style %q", styleFlag)
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
		plan, err := engine.CreateRoughCut(style, nil, smart, useMarkers)
		if err != nil {
			return fmt.Errorf("create rough cut: %w", err)
		}

		if outDir == "" {
			outDir = filepath.Join(filepath.Dir(footageDir), "03_exports", "rough_cuts")
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		clipDurations := make(map[string]float64, len(clips))
		for _, c := range clips {
			clipDurations[c.FilePath] = c.Duration
		}
		styleCfg, _ := roughcut.Config(style)
		edl := timeline.WriteEDL(fmt.Sprintf("Rough Cut: %s", styleFlag), plan.Segments, clipDurations, styleCfg.PreHandle, styleCfg.PostHandle)
		edlPath := filepath.Join(outDir, fmt.Sprintf("rough_cut_%s.edl", styleFlag))
		if err := os.WriteFile(edlPath, []byte(edl), 0o644); err != nil {
			return fmt.Errorf("write EDL: %w", err)
		}
		fmt.Printf("Wrote %s (%d segments, %.1fs)\n", edlPath, len(plan.Segments), plan.TotalDuration)

		if len(plan.RemovedSegments) > 0 {
			removedPath := filepath.Join(outDir, fmt.Sprintf("rough_cut_%s_removed.edl", styleFlag))
			removedEDL := timeline.WriteRemovedEDL(fmt.Sprintf("Removed Footage: %s", styleFlag), plan.RemovedSegments)
			if err := os.WriteFile(removedPath, []byte(removedEDL), 0o644); err != nil {
				return fmt.Errorf("write removed-footage report: %w", err)
			}
			fmt.Printf("Wrote %s (%d removed segments)\n", removedPath, len(plan.RemovedSegments))
		}

		if wantFCPXML {
			xml, err := timeline.BuildFCPXML(filepath.Base(footageDir), plan.Segments)
			if err != nil {
				return fmt.Errorf("build FCPXML: %w", err)
			}
			xmlPath := filepath.Join(outDir, fmt.Sprintf("rough_cut_%s.fcpxml", styleFlag))
			if err := os.WriteFile(xmlPath, xml, 0o644); err != nil {
				return fmt.Errorf("write FCPXML: %w", err)
			}
			fmt.Printf("Wrote %s\n", xmlPath)
		}

		if wantPreview {
			reportPath := filepath.Join(outDir, fmt.Sprintf("rough_cut_%s_preview.html", styleFlag))
			if _, err := preview.RenderPlan(reportPath, filepath.Base(footageDir), plan); err != nil {
				return fmt.Errorf("render preview: %w", err)
			}
			session, err := preview.Open(reportPath)
			if err != nil {
				return fmt.Errorf("open preview: %w", err)
			}
			defer session.Close()
			fmt.Printf("Opened preview in browser: %s\n", reportPath)
			fmt.Println("Press enter to close the preview.")
			fmt.Scanln()
		}

		return nil
	},
}

func init() {
	cutCmd.Flags().String("style", "doc", "rough cut style: doc, interview, episode, tutorial, review, unboxing, comparison, setup, explainer")
	cutCmd.Flags().Bool("audio-markers", false, "build the cut from audio-marker segments when any clip has markers")
	cutCmd.Flags().Bool("smart", false, "enable smart-documentary narrative features (quote extraction, theme grouping, arc ordering)")
	cutCmd.Flags().Bool("fcpxml", false, "also write an FCPXML cuts-only timeline")
	cutCmd.Flags().Bool("preview", false, "render an HTML summary and open it in a browser tab")
	cutCmd.Flags().String("out", "", "output directory (default: <footage-dir>/../03_exports/rough_cuts)")
}
