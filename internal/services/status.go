package services

import "roughcut/internal/model"

// CountsByStatus summarizes how many jobs of one kind sit in each
// JobStatus bucket.
type CountsByStatus struct {
	Pending   int
	Running   int
	Completed int
	Failed    int
}

// QueueSizes reports how many jobs are currently buffered, waiting for
// a free worker.
type QueueSizes struct {
	Transcription int
	RoughCut      int
}

// Status is the aggregate snapshot returned by GetStatus, mirroring the
// original's get_status().
type Status struct {
	Running          bool
	WatchedProjects  int
	Transcription    CountsByStatus
	RoughCut         CountsByStatus
	QueueSizes       QueueSizes
}

// GetStatus returns a point-in-time summary of every tracked job.
func (s *Services) GetStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := Status{
		Running:         s.running,
		WatchedProjects: len(s.watchedProjects),
		Transcription:   countByStatus(s.transcriptionJobs),
		RoughCut:        countRoughCutByStatus(s.roughCutJobs),
		QueueSizes: QueueSizes{
			Transcription: s.transcriptionQueue.len(),
			RoughCut:      s.roughCutQueue.len(),
		},
	}
	return status
}

func countByStatus(jobs map[string]*TranscriptionJob) CountsByStatus {
	var c CountsByStatus
	for _, j := range jobs {
		addStatus(&c, j.Status)
	}
	return c
}

func countRoughCutByStatus(jobs map[string]*RoughCutJob) CountsByStatus {
	var c CountsByStatus
	for _, j := range jobs {
		addStatus(&c, j.Status)
	}
	return c
}

func addStatus(c *CountsByStatus, status model.JobStatus) {
	switch status {
	case model.JobPending:
		c.Pending++
	case model.JobRunning:
		c.Running++
	case model.JobCompleted:
		c.Completed++
	case model.JobFailed:
		c.Failed++
	}
}

// JobDetails is the detailed per-job listing returned by GetJobDetails.
type JobDetails struct {
	TranscriptionJobs []TranscriptionJob
	RoughCutJobs      []RoughCutJob
}

// GetJobDetails returns a snapshot of every job's full record.
func (s *Services) GetJobDetails() JobDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details := JobDetails{}
	for _, j := range s.transcriptionJobs {
		details.TranscriptionJobs = append(details.TranscriptionJobs, *j)
	}
	for _, j := range s.roughCutJobs {
		details.RoughCutJobs = append(details.RoughCutJobs, *j)
	}
	return details
}
