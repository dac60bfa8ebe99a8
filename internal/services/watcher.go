package services

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"roughcut/internal/analysis"
	"roughcut/internal/rclog"
)

const directoryScanInterval = 10 * time.Second

// watchedProject is one project directory under active supervision.
type watchedProject struct {
	projectPath string
	footageDir  string
	lock        *flock.Flock
}

// Services runs the transcription/rough-cut background pipeline: a
// directory watcher that queues new clips, a bounded transcription
// worker pool, and a single rough-cut worker, matching the original's
// BackgroundServices shape.
type Services struct {
	maxWorkers int
	logger     *rclog.Logger
	analyzer   *analysis.Analyzer

	transcribeFn func(ctx context.Context, job *TranscriptionJob) error
	roughCutFn   func(ctx context.Context, job *RoughCutJob) error

	mu               sync.RWMutex
	running          bool
	watchedProjects  map[string]*watchedProject
	transcriptionJobs map[string]*TranscriptionJob
	roughCutJobs      map[string]*RoughCutJob

	transcriptionQueue *jobTracker
	roughCutQueue      *jobTracker

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Services instance at construction time.
type Option func(*Services)

// WithTranscriber overrides how a TranscriptionJob is executed; tests
// use this to avoid shelling out to a real speech-to-text binary.
func WithTranscriber(fn func(ctx context.Context, job *TranscriptionJob) error) Option {
	return func(s *Services) { s.transcribeFn = fn }
}

// WithRoughCutRunner overrides how a RoughCutJob is executed.
func WithRoughCutRunner(fn func(ctx context.Context, job *RoughCutJob) error) Option {
	return func(s *Services) { s.roughCutFn = fn }
}

// New builds a Services with maxWorkers parallel transcription workers
// (the original's default is 4) and a single rough-cut worker.
func New(maxWorkers int, logger *rclog.Logger, opts ...Option) *Services {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if logger == nil {
		logger = rclog.Discard()
	}
	s := &Services{
		maxWorkers:        maxWorkers,
		logger:            logger,
		analyzer:          analysis.New(logger),
		watchedProjects:   make(map[string]*watchedProject),
		transcriptionJobs: make(map[string]*TranscriptionJob),
		roughCutJobs:      make(map[string]*RoughCutJob),
		transcriptionQueue: newJobTracker(256),
		roughCutQueue:      newJobTracker(64),
	}
	s.transcribeFn = s.defaultTranscribe
	s.roughCutFn = s.defaultRoughCut
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WatchProject starts watching projectPath for new video files under
// footageDir (defaulting to projectPath/01_footage) and immediately
// scans it for clips still missing a transcript.
func (s *Services) WatchProject(projectPath, footageDir string) {
	if footageDir == "" {
		footageDir = filepath.Join(projectPath, "01_footage")
	}
	lockPath := filepath.Join(projectPath, ".roughcut-watch.lock")

	project := &watchedProject{
		projectPath: projectPath,
		footageDir:  footageDir,
		lock:        flock.New(lockPath),
	}

	s.mu.Lock()
	s.watchedProjects[projectPath] = project
	s.mu.Unlock()

	s.scanAndQueueTranscriptions(project)
}

// StopWatching removes a project from the watch set. In-flight jobs for
// it are left to finish.
func (s *Services) StopWatching(projectPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.watchedProjects, projectPath)
}

// scanAndQueueTranscriptions lists footage and queues transcription jobs
// for clips that need one. The project's flock keeps two Services
// instances (e.g. a foreground CLI run and a long-lived daemon) from
// scanning the same project directory at once.
func (s *Services) scanAndQueueTranscriptions(project *watchedProject) {
	locked, err := project.lock.TryLock()
	if err != nil {
		s.logger.Warn("project lock failed", "project", project.projectPath, "err", err)
		return
	}
	if !locked {
		return
	}
	defer project.lock.Unlock()

	files, err := analysis.Discover(project.footageDir)
	if err != nil {
		s.logger.Warn("directory scan failed", "dir", project.footageDir, "err", err)
		return
	}
	for _, f := range files {
		if !s.needsTranscription(f) {
			continue
		}
		job := newTranscriptionJob(f, project.projectPath)
		s.mu.Lock()
		s.transcriptionJobs[f] = job
		s.mu.Unlock()
		s.transcriptionQueue.enqueue(f, job)
	}
}

func (s *Services) needsTranscription(videoFile string) bool {
	srtPath := withExtension(videoFile, ".srt")
	if fileExists(srtPath) {
		return false
	}
	stem := trimExtension(videoFile)
	if fileExists(stem+"_transcript.json") || fileExists(stem+".json") {
		return false
	}
	return true
}

func withExtension(path, ext string) string {
	return trimExtension(path) + ext
}

func trimExtension(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)]
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Services) directoryWatcher(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(directoryScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			projects := make([]*watchedProject, 0, len(s.watchedProjects))
			for _, p := range s.watchedProjects {
				projects = append(projects, p)
			}
			s.mu.RUnlock()

			for _, p := range projects {
				if _, err := os.Stat(p.footageDir); err != nil {
					continue
				}
				s.scanAndQueueTranscriptions(p)
			}
		}
	}
}
