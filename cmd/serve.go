package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"roughcut/internal/services"
	"roughcut/internal/statusui"
)

var serveCmd = &cobra.Command{
	Use:   "serve <project-dir> [project-dir...]",
	Short: "Watch project directories and run the transcription/rough-cut background pipeline",
	Long: `serve watches one or more project directories for new footage,
transcribes anything missing a transcript with a bounded worker pool,
and triggers a rough-cut job once every clip in a directory has been
transcribed, mirroring the original BackgroundServices daemon.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		logger := ctx.loggerFor(cfg)

		httpAddr, _ := cmd.Flags().GetString("http")

		svc := services.New(cfg.MaxTranscriptionWorkers, logger)
		for _, projectPath := range args {
			svc.WatchProject(projectPath, cfg.FootageDir)
		}

		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := svc.Start(runCtx); err != nil {
			return fmt.Errorf("start services: %w", err)
		}
		defer svc.Stop()

		if httpAddr != "" {
			srv := statusui.New(svc)
			go func() {
				if err := srv.Start(runCtx, httpAddr); err != nil {
					logger.Error("status server stopped", "err", err)
				}
			}()
			logger.Info("status dashboard listening", "addr", httpAddr)
		}

		logger.Info("watching projects", "count", len(args))

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("http", "", "bind address for the status dashboard, e.g. :8090 (disabled when empty)")
}
