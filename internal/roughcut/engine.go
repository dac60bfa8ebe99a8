package roughcut

import (
	"errors"
	"fmt"
	"sort"

	"roughcut/internal/model"
	"roughcut/internal/rclog"
	"roughcut/internal/transcript"
)

// Engine creates RoughCutPlans from a set of analyzed clips. Scoring
// thresholds live on Analyzer.Config (a model.ScoringConfig) and
// per-style limits in styleTable; a few pipeline-specific values (the
// hook search window, the narrative act shares) are package constants.
type Engine struct {
	Clips    []model.ClipAnalysis
	Analyzer *transcript.Analyzer
	Logger   *rclog.Logger
}

// New builds an Engine over the given clips using the default scoring
// configuration.
func New(clips []model.ClipAnalysis, logger *rclog.Logger) *Engine {
	if logger == nil {
		logger = rclog.Discard()
	}
	return &Engine{Clips: clips, Analyzer: transcript.New(), Logger: logger}
}

// CreateRoughCut dispatches between the marker-based, narrative-arc,
// and quality-based assembly pipelines per spec section 4.6.
func (e *Engine) CreateRoughCut(style CutStyle, targetDuration *float64, useSmartFeatures, useAudioMarkers bool) (*model.RoughCutPlan, error) {
	if len(e.Clips) == 0 {
		return nil, errors.New("roughcut: no clips analyzed")
	}

	cfg, ok := styleTable[style]
	if !ok {
		return nil, fmt.Errorf("roughcut: unknown cut style %q", style)
	}

	if useAudioMarkers && anyClipHasMarkers(e.Clips) {
		return e.createMarkerBasedCut(style), nil
	}

	if style == StyleDOC && useSmartFeatures {
		return e.createSmartDocumentaryCut(targetDuration), nil
	}

	return e.createStyleCut(style, cfg, targetDuration), nil
}

func anyClipHasMarkers(clips []model.ClipAnalysis) bool {
	for _, c := range clips {
		if len(c.Markers) > 0 {
			return true
		}
	}
	return false
}

// createMarkerBasedCut packages segments already produced by the
// marker pipeline (segment.Extract, run per clip ahead of time and
// stashed on each ClipAnalysis.BestMoments by the caller) into a plan,
// ordered by Segment.SortKey: scene number (unnumbered scenes last),
// then take, then start time.
func (e *Engine) createMarkerBasedCut(style CutStyle) *model.RoughCutPlan {
	var segments []model.Segment
	for _, clip := range e.Clips {
		segments = append(segments, clip.BestMoments...)
	}

	sort.SliceStable(segments, func(i, j int) bool {
		oi, ti, ai := segments[i].SortKey()
		oj, tj, aj := segments[j].SortKey()
		if oi != oj {
			return oi < oj
		}
		if ti != tj {
			return ti < tj
		}
		return ai < aj
	})

	structure := make(map[string][]model.Segment)
	var order []string
	for _, seg := range segments {
		section := seg.SegmentType
		if section == "" {
			section = "content"
		}
		if _, ok := structure[section]; !ok {
			order = append(order, section)
		}
		structure[section] = append(structure[section], seg)
	}

	return &model.RoughCutPlan{
		Style:          string(style),
		Clips:          e.Clips,
		Segments:       segments,
		TotalDuration:  sumDuration(segments),
		Structure:      structure,
		StructureOrder: order,
	}
}

// createStyleCut is the generalized replacement for the five
// near-identical per-style cut functions (review/unboxing/comparison/
// setup/explainer) plus the original quality-based path: one
// score-descending greedy selection loop parameterized entirely by
// StyleConfig, since every one of those functions differed only in
// which style's config row and section list it used.
func (e *Engine) createStyleCut(style CutStyle, cfg StyleConfig, targetDuration *float64) *model.RoughCutPlan {
	var allSegments []model.Segment
	for _, clip := range e.Clips {
		allSegments = append(allSegments, clip.BestMoments...)
	}
	allSegments = deduplicateSegments(allSegments, e.Analyzer.Config.DeduplicationOverlap)
	sort.SliceStable(allSegments, func(i, j int) bool { return allSegments[i].Score > allSegments[j].Score })

	target := e.resolveTargetDuration(targetDuration, cfg)

	var selected []model.Segment
	var removed []model.RemovedSegment
	var current float64

	for _, seg := range allSegments {
		dur := seg.Duration()

		if dur < cfg.MinSegment {
			removed = append(removed, model.RemovedSegment{Segment: seg, Reason: model.ReasonTooShort, OriginalScore: seg.Score})
			continue
		}

		if dur > cfg.MaxSegment {
			kept, truncatedRemoved := truncateOversized([]model.Segment{seg}, cfg.MaxSegment)
			removed = append(removed, truncatedRemoved...)
			seg = kept[0]
			dur = seg.Duration()
		}

		withHandles := dur + cfg.PreHandle + cfg.PostHandle

		switch {
		case current+withHandles <= target:
			selected = append(selected, seg)
			current += withHandles
		case seg.Score > e.Analyzer.Config.UnconditionalScoreThreshold:
			selected = append(selected, seg)
			current += withHandles
		case seg.Score > e.Analyzer.Config.OverflowScoreThreshold && current+withHandles <= target*(1+e.Analyzer.Config.OverflowAllowance):
			selected = append(selected, seg)
			current += withHandles
		default:
			removed = append(removed, model.RemovedSegment{Segment: seg, Reason: model.ReasonDurationLimit, OriginalScore: seg.Score})
		}
	}

	structure, order := organizeByStructure(selected, style)

	var ordered []model.Segment
	for _, section := range order {
		ordered = append(ordered, structure[section]...)
	}

	return &model.RoughCutPlan{
		Style:           string(style),
		Clips:           e.Clips,
		Segments:        ordered,
		TotalDuration:   sumDuration(ordered),
		Structure:       structure,
		StructureOrder:  order,
		RemovedSegments: removed,
	}
}

func (e *Engine) resolveTargetDuration(targetDuration *float64, cfg StyleConfig) float64 {
	if targetDuration != nil {
		return *targetDuration
	}
	var totalRaw float64
	for _, c := range e.Clips {
		totalRaw += c.Duration
	}
	return totalRaw * cfg.TargetRatio
}

// createSmartDocumentaryCut runs the narrative-arc pipeline: analyze
// speech-bearing clips into InterviewSegments, group their quotes into
// Themes, assemble the hook/setup/act1-3/conclusion arc, flatten it
// into an ordered segment list, then run the shared dedupe/merge pass.
func (e *Engine) createSmartDocumentaryCut(targetDuration *float64) *model.RoughCutPlan {
	cfg := styleTable[StyleDOC]

	var interviewClips []model.ClipAnalysis
	for _, c := range e.Clips {
		if c.HasSpeech {
			interviewClips = append(interviewClips, c)
		}
	}

	var interviews []model.InterviewSegment
	for i, clip := range interviewClips {
		interviews = append(interviews, e.Analyzer.AnalyzeInterviewSegment(i, clip.Entries, clip.Duration))
	}

	themes := organizeByThemes(interviews)

	target := e.resolveTargetDuration(targetDuration, cfg)
	if targetDuration == nil {
		var totalInterview float64
		for _, seg := range interviews {
			totalInterview += seg.Duration
		}
		target = totalInterview * 0.6
	}

	arc := buildNarrativeArc(interviews, themes, target)

	var ordered []model.Segment
	for _, section := range narrativeArcSections {
		ordered = append(ordered, arc[section]...)
	}

	ordered = deduplicateSegments(ordered, e.Analyzer.Config.DeduplicationOverlap)
	ordered = mergeAdjacentSegments(ordered, cfg.MergeGapThreshold)

	return &model.RoughCutPlan{
		Style:          string(StyleDOC),
		Clips:          e.Clips,
		Segments:       ordered,
		TotalDuration:  sumDuration(ordered),
		Structure:      arc,
		StructureOrder: narrativeArcSections,
		Themes:         themes,
		NarrativeArc:   narrativeArcSections,
	}
}

func sumDuration(segments []model.Segment) float64 {
	var total float64
	for _, s := range segments {
		total += s.Duration()
	}
	return total
}
