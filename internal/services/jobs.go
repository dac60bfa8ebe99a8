// Package services runs the background pipeline that watches a
// project's footage directory, transcribes new clips, and triggers
// rough-cut generation once every clip in a directory has a transcript,
// the direct Go translation of the original's BackgroundServices.
package services

import (
	"time"

	"github.com/google/uuid"

	"roughcut/internal/model"
)

// TranscriptionJob tracks one clip's transcription run.
type TranscriptionJob struct {
	ID             string
	VideoFile      string
	ProjectPath    string
	Status         model.JobStatus
	StartedAt      *time.Time
	CompletedAt    *time.Time
	Error          string
	TranscriptPath string
}

// RoughCutJob tracks one rough-cut generation run over a footage
// directory.
type RoughCutJob struct {
	ID              string
	FootageDir      string
	ProjectPath     string
	Style           string
	UseAudioMarkers bool
	Status          model.JobStatus
	StartedAt       *time.Time
	CompletedAt     *time.Time
	Error           string
	EDLPath         string
}

func newTranscriptionJob(videoFile, projectPath string) *TranscriptionJob {
	return &TranscriptionJob{ID: uuid.NewString(), VideoFile: videoFile, ProjectPath: projectPath, Status: model.JobPending}
}

func newRoughCutJob(footageDir, projectPath, style string, useAudioMarkers bool) *RoughCutJob {
	return &RoughCutJob{
		ID:              uuid.NewString(),
		FootageDir:      footageDir,
		ProjectPath:     projectPath,
		Style:           style,
		UseAudioMarkers: useAudioMarkers,
		Status:          model.JobPending,
	}
}

