package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roughcut/internal/analysis"
	"roughcut/internal/model"
	"roughcut/internal/rclog"
	"roughcut/internal/roughcut"
	"roughcut/internal/timeline"
	"roughcut/internal/transcribe"
)

const gracefulDrainTimeout = 30 * time.Second

// Start spins up maxWorkers transcription workers, one rough-cut
// worker, and the directory watcher, mirroring the original's
// start()'s thread layout.
func (s *Services) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("services: already running")
	}
	s.running = true
	s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1 + s.maxWorkers + 1)
	go s.directoryWatcher(runCtx)
	for i := 0; i < s.maxWorkers; i++ {
		go s.transcriptionWorker(runCtx, i)
	}
	go s.roughCutWorker(runCtx)

	return nil
}

// Stop signals every worker to exit, waits up to gracefulDrainTimeout
// for the transcription queue to drain, then cancels the remainder.
func (s *Services) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	deadline := time.Now().Add(gracefulDrainTimeout)
	for s.transcriptionQueue.len() > 0 && time.Now().Before(deadline) {
		time.Sleep(500 * time.Millisecond)
	}

	s.cancel()
	s.wg.Wait()
}

func (s *Services) transcriptionWorker(ctx context.Context, workerIndex int) {
	defer s.wg.Done()
	logger := s.logger.With("worker", fmt.Sprintf("transcription-%d", workerIndex))

	for {
		select {
		case <-ctx.Done():
			return
		case raw := <-s.transcriptionQueue.ch:
			job, ok := raw.(*TranscriptionJob)
			if !ok {
				continue
			}
			s.runTranscriptionJob(ctx, logger, job)
		}
	}
}

func (s *Services) runTranscriptionJob(ctx context.Context, logger *rclog.Logger, job *TranscriptionJob) {
	now := time.Now()
	s.mu.Lock()
	job.Status = model.JobRunning
	job.StartedAt = &now
	s.mu.Unlock()

	err := s.transcribeFn(ctx, job)

	completed := time.Now()
	s.mu.Lock()
	job.CompletedAt = &completed
	if err != nil {
		job.Status = model.JobFailed
		job.Error = err.Error()
		logger.Error("transcription failed", "file", job.VideoFile, "err", err)
	} else {
		job.Status = model.JobCompleted
		logger.Info("transcription completed", "file", job.VideoFile)
	}
	s.mu.Unlock()

	if err == nil {
		s.checkRoughCutTrigger(job.ProjectPath, filepath.Dir(job.VideoFile))
	}
}

func (s *Services) defaultTranscribe(ctx context.Context, job *TranscriptionJob) error {
	cli := transcribe.NewWhisperCLI("")
	result, err := cli.Transcribe(ctx, job.VideoFile, "base", "auto")
	if err != nil {
		return err
	}
	job.TranscriptPath = result.SRTPath
	return nil
}

// checkRoughCutTrigger queues a rough-cut job for footageDir once every
// video file in it has a transcript, per the original's
// _check_rough_cut_trigger.
func (s *Services) checkRoughCutTrigger(projectPath, footageDir string) {
	files, err := analysis.Discover(footageDir)
	if err != nil || len(files) == 0 {
		return
	}

	allTranscribed := true
	hasMarkers := false
	for _, f := range files {
		if s.needsTranscription(f) {
			allTranscribed = false
			break
		}
		clip, err := s.analyzer.AnalyzeClip(context.Background(), f)
		if err == nil && len(clip.Markers) > 0 {
			hasMarkers = true
		}
	}
	if !allTranscribed {
		return
	}

	job := newRoughCutJob(footageDir, projectPath, "doc", hasMarkers)
	s.mu.Lock()
	s.roughCutJobs[footageDir] = job
	s.mu.Unlock()
	s.roughCutQueue.enqueue(footageDir, job)
}

func (s *Services) roughCutWorker(ctx context.Context) {
	defer s.wg.Done()
	logger := s.logger.With("worker", "roughcut")

	for {
		select {
		case <-ctx.Done():
			return
		case raw := <-s.roughCutQueue.ch:
			job, ok := raw.(*RoughCutJob)
			if !ok {
				continue
			}
			s.runRoughCutJob(ctx, logger, job)
		}
	}
}

func (s *Services) runRoughCutJob(ctx context.Context, logger *rclog.Logger, job *RoughCutJob) {
	now := time.Now()
	s.mu.Lock()
	job.Status = model.JobRunning
	job.StartedAt = &now
	s.mu.Unlock()

	err := s.roughCutFn(ctx, job)

	completed := time.Now()
	s.mu.Lock()
	job.CompletedAt = &completed
	if err != nil {
		job.Status = model.JobFailed
		job.Error = err.Error()
		logger.Error("rough cut failed", "footage_dir", job.FootageDir, "err", err)
	} else {
		job.Status = model.JobCompleted
		logger.Info("rough cut completed", "footage_dir", job.FootageDir)
	}
	s.mu.Unlock()
}

var cutStyleByName = map[string]roughcut.CutStyle{
	"doc":         roughcut.StyleDOC,
	"documentary": roughcut.StyleDOC,
	"episode":     roughcut.StyleEpisode,
	"interview":   roughcut.StyleInterview,
	"tutorial":    roughcut.StyleEpisode,
}

func (s *Services) defaultRoughCut(ctx context.Context, job *RoughCutJob) error {
	files, err := analysis.Discover(job.FootageDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("services: no clips found in footage directory")
	}

	clips := make([]model.ClipAnalysis, 0, len(files))
	for _, f := range files {
		clip, err := s.analyzer.AnalyzeClip(ctx, f)
		if err != nil {
			return err
		}
		clips = append(clips, clip)
	}

	style, ok := cutStyleByName[job.Style]
	if !ok {
		style = roughcut.StyleDOC
	}

	engine := roughcut.New(clips, s.logger)
	plan, err := engine.CreateRoughCut(style, nil, style == roughcut.StyleDOC, job.UseAudioMarkers)
	if err != nil {
		return err
	}

	outputDir := filepath.Join(job.ProjectPath, "03_exports", "rough_cuts")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	edlPath := filepath.Join(outputDir, fmt.Sprintf("rough_cut_auto_%s.edl", job.Style))

	clipDurations := make(map[string]float64, len(clips))
	for _, c := range clips {
		clipDurations[c.FilePath] = c.Duration
	}
	cfg, _ := roughcut.Config(style)
	edl := timeline.WriteEDL("Rough Cut: "+job.Style, plan.Segments, clipDurations, cfg.PreHandle, cfg.PostHandle)
	if err := os.WriteFile(edlPath, []byte(edl), 0o644); err != nil {
		return err
	}

	job.EDLPath = edlPath
	return nil
}
