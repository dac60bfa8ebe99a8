// Package model defines the shared data types that flow through the
// marker detector, segment extractor, transcript analyzer, and rough-cut
// engine.
package model

import "math"

// Word is a single word-level timestamp entry from a transcript.
type Word struct {
	Word  string
	Start float64
	End   float64
}

// SegmentEntry is a segment-level transcript entry (coarser than Word).
type SegmentEntry struct {
	ID    int
	Start float64
	End   float64
	Text  string
	Words []Word
}

// Transcript is the external, word-timestamped transcript contract
// described in spec section 6.
type Transcript struct {
	Text       string
	Language   string
	Duration   float64
	Words      []Word
	Segments   []SegmentEntry
	SourceFile string
}

// Quality is the marker-declared segment quality, ordered skip < fair <
// good < best.
type Quality string

const (
	QualitySkip  Quality = "skip"
	QualityFair  Quality = "fair"
	QualityGood  Quality = "good"
	QualityBest  Quality = "best"
	QualitySelect Quality = "select"
	QualityBackup Quality = "backup"
)

// ScoreLevels mirrors the fixed skip/fair/good/best -> 0..3 table.
var ScoreLevels = map[Quality]int{
	QualitySkip: 0,
	QualityFair: 1,
	QualityGood: 2,
	QualityBest: 3,
}

// TitleType is the optional title-case modifier recognized by the `title`
// keyword.
type TitleType string

const (
	TitleLower TitleType = "lower"
	TitleFull  TitleType = "full"
	TitleUpper TitleType = "upper"
)

// ParsedCommands is the parsed result of the token region between a
// `slate` and its matching `done`.
type ParsedCommands struct {
	Mark        bool
	Take        *int
	SceneNumber *float64
	SceneName   string
	Step        *int
	Order       *int
	SegmentType string
	Quality     Quality

	Hook string

	Title      string
	TitleType  TitleType
	TitleThird bool

	Effect        string
	EffectProduct string
	EffectName    string

	Transition          string
	TransitionProduct   string
	TransitionName      string
	TransitionGeneric   string

	Screen  string
	CTA     string
	Chapter string
	Broll   string

	Ending bool // deprecated, preserved as a documented no-op field

	Emotion string
	Energy  string

	RetroactiveActions []string
	Score              Quality
	ScoreLevel         int

	RawCommands []string
}

// EffectiveSceneNumber mirrors the legacy `order` keyword into
// SceneNumber when SceneNumber itself was never set.
func (p *ParsedCommands) EffectiveSceneNumber() *float64 {
	if p.SceneNumber != nil {
		return p.SceneNumber
	}
	if p.Order != nil {
		v := float64(*p.Order)
		return &v
	}
	return nil
}

// MarkerType classifies a detected audio marker.
type MarkerType string

const (
	MarkerStart       MarkerType = "START"
	MarkerRetroactive MarkerType = "RETROACTIVE"
	MarkerStandalone  MarkerType = "STANDALONE"
	MarkerEnd         MarkerType = "END" // deprecated, kept for compatibility tests
)

// AudioMarker is the immutable record produced by the marker detector.
type AudioMarker struct {
	Timestamp      float64
	MarkerType     MarkerType
	Commands       []string
	ParsedCommands ParsedCommands
	DoneTime       float64
	CutPoint       float64
	SourceFile     string
}

// SRTEntry is one cue from a parsed SRT subtitle file.
type SRTEntry struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// NaturalEditPoint is a candidate cut location found between transcript
// entries in the marker-free analysis fallback.
type NaturalEditPoint struct {
	Time       float64
	Confidence float64
}

// ClipAnalysis is the per-source-file analysis record.
type ClipAnalysis struct {
	FilePath           string
	Duration           float64
	TranscriptPath     string
	TranscriptJSONPath string
	Entries            []SRTEntry

	HasSpeech        bool
	IsScreenRecording bool
	IsHook           bool
	IsCTA            bool
	IsMistake        bool

	ShotType       string
	ContentType    string
	QualityScore   float64
	AudioLevel     float64
	IsShaky        bool
	ExposureRating float64

	StepNumber   *int
	TopicTag     string
	HookFlowType string
	TakeNumber   *int

	BestMoments    []Segment
	SilenceRegions [][2]float64
	FillerRegions  [][2]float64

	Markers []AudioMarker
}

// Segment is a non-crossing time range on a single source clip.
type Segment struct {
	SourceFile  string
	StartTime   float64
	EndTime     float64
	Text        string
	Speaker     string
	Topic       string
	Score       float64
	SegmentType string

	SceneNumber *float64
	SceneName   string
	Take        *int
	Order       *int
	Step        *int
	Emotion     string
	Energy      string
	Hook        string
	IsQuote     bool

	// QualityWord and QualityLevel carry the skip/fair/good/best marker
	// vocabulary (spec section 4.2/4.4), distinct from Score which is the
	// 0..1 transcript-analyzer importance score used by the quality-based
	// pipeline.
	QualityWord  Quality
	QualityLevel int

	RetroactiveActions []string

	markedForRemoval bool
}

// MarkForRemoval flags the segment to be dropped once all markers in a
// pass have been applied (retroactive remove/skip).
func (s *Segment) MarkForRemoval() { s.markedForRemoval = true }

// MarkedForRemoval reports whether a retroactive action removed this
// segment.
func (s *Segment) MarkedForRemoval() bool { return s.markedForRemoval }

// Duration returns EndTime - StartTime.
func (s Segment) Duration() float64 { return s.EndTime - s.StartTime }

// SortKey returns the (scene_number or +Inf, take or 0, start_time) tuple
// used to order segments for rough-cut assembly (spec section 4.4).
func (s Segment) SortKey() (float64, int, float64) {
	scene := math.Inf(1)
	if s.SceneNumber != nil {
		scene = *s.SceneNumber
	}
	take := 0
	if s.Take != nil {
		take = *s.Take
	}
	return scene, take, s.StartTime
}

// RemovalReason enumerates why a segment was dropped from a plan.
type RemovalReason string

const (
	ReasonTooShort                RemovalReason = "too_short"
	ReasonLowScore                RemovalReason = "low_score"
	ReasonDurationLimit           RemovalReason = "duration_limit"
	ReasonDuplicateOverlap        RemovalReason = "duplicate_overlap"
	ReasonTruncatedRemainder      RemovalReason = "truncated_remainder"
	ReasonNotSelectedForNarrative RemovalReason = "not_selected_for_narrative"
)

// RemovedSegment records a segment dropped from a plan along with why.
type RemovedSegment struct {
	Segment       Segment
	Reason        RemovalReason
	OriginalScore float64
}

// Theme groups related quotes for the narrative-arc (smart documentary)
// pipeline.
type Theme struct {
	Name     string
	Segments []Segment
}

// HookCandidate is a short opening segment considered for hook-test
// timeline generation.
type HookCandidate struct {
	Segment Segment
	Score   float64
	Label   string
}

// RoughCutPlan is the terminal artifact of the rough-cut engine.
type RoughCutPlan struct {
	Style           string
	Clips           []ClipAnalysis
	Segments        []Segment
	TotalDuration   float64
	Structure       map[string][]Segment
	StructureOrder  []string
	Themes          []Theme
	NarrativeArc    []string
	RemovedSegments []RemovedSegment
	HookCandidates  []HookCandidate
}

// Quote is an important line pulled out of a clip's transcript by the
// transcript analyzer. ClipIndex is an index into the caller's clip
// slice rather than an owning pointer, so Quote never creates a cycle
// back into ClipAnalysis.
type Quote struct {
	Text            string
	StartTime       float64
	EndTime         float64
	ImportanceScore float64
	Topic           string
	Emotion         string
	ClipIndex       int
}

// InterviewSegment is the full per-clip analysis bundle produced by the
// marker-free fallback pipeline.
type InterviewSegment struct {
	ClipIndex     int
	Transcript    string
	Quotes        []Quote
	Topics        []string
	EmotionScore  float64
	NaturalPauses []NaturalEditPoint
	Duration      float64
	Keywords      []string
}

// ScoringConfig gathers every threshold the transcript analyzer and
// rough-cut engine use, so tuning a cut's behavior means changing one
// struct instead of hunting scattered constants.
type ScoringConfig struct {
	MinQuoteImportance        float64
	TopicQuoteImportance      float64
	InterviewQuoteImportance  float64
	NaturalEditGapThreshold   float64
	NaturalEditSentenceWindow float64
	DeduplicationOverlap      float64
	OverflowScoreThreshold    float64
	UnconditionalScoreThreshold float64
	OverflowAllowance         float64
}

// DefaultScoringConfig mirrors the constants used throughout spec
// section 4.5/4.6.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		MinQuoteImportance:          50.0,
		TopicQuoteImportance:        60.0,
		InterviewQuoteImportance:    50.0,
		NaturalEditGapThreshold:     0.3,
		NaturalEditSentenceWindow:   1.0,
		DeduplicationOverlap:        0.3,
		OverflowScoreThreshold:      0.6,
		UnconditionalScoreThreshold: 0.7,
		OverflowAllowance:           0.10,
	}
}

// JobStatus is the lifecycle state of a background job.
type JobStatus string

const (
	JobPending   JobStatus = "PENDING"
	JobRunning   JobStatus = "RUNNING"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
)
