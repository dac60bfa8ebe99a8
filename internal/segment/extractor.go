// Package segment turns an ordered list of audio markers into a
// non-overlapping list of model.Segment values, applying retroactive
// actions and producing the final rough-cut ordering.
package segment

import (
	"sort"
	"strings"

	"roughcut/internal/model"
)

const segmentTailPadding = 0.3

// Extract implements spec.md section 4.4. words must be sorted by Start
// ascending; clipDuration is optional (0 means unknown, in which case a
// trailing open segment ends at the last word's end time, or 10s after
// its cut point when there are no words).
func Extract(markers []model.AudioMarker, words []model.Word, sourceFile string, clipDuration float64) []model.Segment {
	if len(markers) == 0 {
		return nil
	}

	sorted := make([]model.AudioMarker, len(markers))
	copy(sorted, markers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp < sorted[j].Timestamp })

	var segments []model.Segment

	for i, m := range sorted {
		switch m.MarkerType {
		case model.MarkerRetroactive:
			applyRetroactive(segments, m)

		case model.MarkerEnd:
			// Deprecated: END markers never open a segment of their own.

		default: // START or STANDALONE
			start := m.CutPoint
			end := resolveSegmentEnd(sorted, i, words, clipDuration, m.CutPoint)

			segWords := wordsInRange(words, start, end)
			if len(segWords) == 0 && end <= start {
				continue
			}

			seg := model.Segment{
				SourceFile:  sourceFile,
				StartTime:   start,
				EndTime:     end,
				Text:        joinWords(segWords),
				SegmentType: "content",
				Score:       1.0,
			}
			applyMarkerMetadata(&seg, m)
			segments = append(segments, seg)
		}
	}

	var kept []model.Segment
	for _, s := range segments {
		if !s.MarkedForRemoval() {
			kept = append(kept, s)
		}
	}

	sortForRoughCut(kept)
	return kept
}

func resolveSegmentEnd(sorted []model.AudioMarker, i int, words []model.Word, clipDuration, cutPoint float64) float64 {
	// 1. Next marker of any type bounds the segment.
	for j := i + 1; j < len(sorted); j++ {
		nextSlate := sorted[j].Timestamp
		if w, ok := lastWordBefore(words, nextSlate); ok {
			return minF(nextSlate, w.End+segmentTailPadding)
		}
		return nextSlate
	}

	// 2. No later marker at all: an explicit (deprecated) END marker, if
	// present anywhere after this index, would have been caught above
	// since sorted includes every marker type; so only clip/word
	// fallback remains.
	if clipDuration > 0 {
		return clipDuration
	}
	if len(words) > 0 {
		return words[len(words)-1].End
	}
	return cutPoint + 10.0
}

func applyMarkerMetadata(seg *model.Segment, m model.AudioMarker) {
	p := m.ParsedCommands
	seg.SceneNumber = p.EffectiveSceneNumber()
	seg.SceneName = p.SceneName
	seg.Take = p.Take
	seg.Order = p.Order
	seg.Step = p.Step
	seg.Emotion = p.Emotion
	seg.Energy = p.Energy
	seg.Hook = p.Hook
	seg.IsQuote = containsString(p.RetroactiveActions, "quote")
}

func applyRetroactive(segments []model.Segment, m model.AudioMarker) {
	if len(segments) == 0 {
		return
	}
	prev := &segments[len(segments)-1]
	p := m.ParsedCommands

	if p.Score != "" {
		prev.QualityWord = p.Score
		prev.QualityLevel = model.ScoreLevels[p.Score]
		if p.Score == model.QualityBest {
			for i := range segments[:len(segments)-1] {
				if segments[i].QualityWord == model.QualityBest {
					segments[i].QualityWord = model.QualityGood
					segments[i].QualityLevel = model.ScoreLevels[model.QualityGood]
					break
				}
			}
		}
	}

	for _, action := range p.RetroactiveActions {
		switch action {
		case "remove", "skip":
			prev.MarkForRemoval()
		case "hook":
			prev.Hook = "true"
		case "quote":
			prev.IsQuote = true
		}
	}
	prev.RetroactiveActions = append(prev.RetroactiveActions, p.RetroactiveActions...)
}

func wordsInRange(words []model.Word, start, end float64) []model.Word {
	var out []model.Word
	for _, w := range words {
		if w.Start >= start && w.End <= end {
			out = append(out, w)
		}
	}
	return out
}

func joinWords(words []model.Word) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimSpace(w.Word))
	}
	return b.String()
}

func lastWordBefore(words []model.Word, t float64) (model.Word, bool) {
	var last model.Word
	found := false
	for _, w := range words {
		if w.End < t {
			last = w
			found = true
		}
	}
	return last, found
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// sortForRoughCut orders segments by (scene_number or +Inf, take or 0,
// start_time) per spec.md section 4.4.
func sortForRoughCut(segments []model.Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		si, ti, ai := segments[i].SortKey()
		sj, tj, aj := segments[j].SortKey()
		if si != sj {
			return si < sj
		}
		if ti != tj {
			return ti < tj
		}
		return ai < aj
	})
}
