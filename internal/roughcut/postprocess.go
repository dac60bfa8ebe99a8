package roughcut

import (
	"sort"
	"strings"

	"roughcut/internal/model"
)

// mergeAdjacentSegments merges same-file segments whose gap is at or
// below gapThreshold, keeping the highest score and concatenating text.
// Segments on different files, or separated by a larger gap (a natural
// pause), are left distinct.
func mergeAdjacentSegments(segments []model.Segment, gapThreshold float64) []model.Segment {
	if len(segments) == 0 {
		return nil
	}

	sorted := make([]model.Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SourceFile != sorted[j].SourceFile {
			return sorted[i].SourceFile < sorted[j].SourceFile
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	merged := []model.Segment{sorted[0]}
	for _, seg := range sorted[1:] {
		last := &merged[len(merged)-1]
		if seg.SourceFile == last.SourceFile && seg.StartTime-last.EndTime <= gapThreshold {
			if seg.EndTime > last.EndTime {
				last.EndTime = seg.EndTime
			}
			if seg.StartTime < last.StartTime {
				last.StartTime = seg.StartTime
			}
			if seg.Text != "" {
				last.Text = strings.TrimSpace(last.Text + " " + seg.Text)
			}
			if seg.Score > last.Score {
				last.Score = seg.Score
			}
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

func baseFileName(path string) string {
	name := path
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSuffix(name, "_normalized")
	return strings.ToLower(strings.TrimSpace(name))
}

// deduplicateSegments drops exact duplicates and segments overlapping
// an already-kept segment from the same (or normalized-equivalent)
// source file by more than overlapThreshold of either segment's
// duration. Input is processed in descending-score order so the
// higher-scored segment in an overlapping pair always wins.
func deduplicateSegments(segments []model.Segment, overlapThreshold float64) []model.Segment {
	if len(segments) == 0 {
		return nil
	}

	sorted := make([]model.Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		if sorted[i].SourceFile != sorted[j].SourceFile {
			return sorted[i].SourceFile < sorted[j].SourceFile
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	var kept []model.Segment
	seen := make(map[[3]interface{}]bool)

	for _, seg := range sorted {
		key := [3]interface{}{seg.SourceFile, seg.StartTime, seg.EndTime}
		if seen[key] {
			continue
		}

		segBase := baseFileName(seg.SourceFile)
		overlaps := false
		for _, existing := range kept {
			sameSource := seg.SourceFile == existing.SourceFile || segBase == baseFileName(existing.SourceFile)
			if !sameSource {
				continue
			}
			overlapStart := maxF(seg.StartTime, existing.StartTime)
			overlapEnd := minF(seg.EndTime, existing.EndTime)
			overlapDuration := maxF(0, overlapEnd-overlapStart)
			if overlapDuration <= 0 {
				continue
			}
			segDur := seg.EndTime - seg.StartTime
			existingDur := existing.EndTime - existing.StartTime
			pctSeg, pctExisting := 0.0, 0.0
			if segDur > 0 {
				pctSeg = overlapDuration / segDur
			}
			if existingDur > 0 {
				pctExisting = overlapDuration / existingDur
			}
			if pctSeg > overlapThreshold || pctExisting > overlapThreshold {
				overlaps = true
				break
			}
		}

		if overlaps {
			continue
		}
		kept = append(kept, seg)
		seen[key] = true
	}

	return kept
}

// truncateOversized clips any segment longer than maxSegment down to
// maxSegment, recording the discarded tail as a RemovedSegment.
func truncateOversized(segments []model.Segment, maxSegment float64) (kept []model.Segment, removed []model.RemovedSegment) {
	for _, seg := range segments {
		dur := seg.Duration()
		if dur <= maxSegment || maxSegment <= 0 {
			kept = append(kept, seg)
			continue
		}
		tailStart := seg.StartTime + maxSegment
		tail := seg
		tail.StartTime = tailStart
		tail.Score = seg.Score * 0.8

		seg.EndTime = tailStart
		kept = append(kept, seg)
		removed = append(removed, model.RemovedSegment{
			Segment:       tail,
			Reason:        model.ReasonTruncatedRemainder,
			OriginalScore: seg.Score,
		})
	}
	return kept, removed
}

// organizeByStructure slots segments into a style's section list.
// DOC, INTERVIEW, and EPISODE get the original's narrative-specific
// slicing; every other style falls back to a single section holding
// every segment in score-descending order, which is what the
// original's generic styles effectively do absent a bespoke layout.
func organizeByStructure(segments []model.Segment, style CutStyle) (map[string][]model.Segment, []string) {
	cfg, ok := styleTable[style]
	structure := make(map[string][]model.Segment)
	var order []string
	if !ok {
		return structure, order
	}
	order = append(order, cfg.Sections...)
	for _, s := range cfg.Sections {
		structure[s] = nil
	}
	if len(segments) == 0 {
		return structure, order
	}

	working := make([]model.Segment, len(segments))
	copy(working, segments)

	switch style {
	case StyleDOC:
		sort.SliceStable(working, func(i, j int) bool {
			if working[i].SourceFile != working[j].SourceFile {
				return working[i].SourceFile < working[j].SourceFile
			}
			return working[i].StartTime < working[j].StartTime
		})
		n := len(working)
		if n >= 5 {
			structure["opening"] = working[:1]
			structure["context"] = working[1 : n/4]
			structure["main_story"] = working[n/4 : 3*n/4]
			structure["reflection"] = working[3*n/4 : n-1]
			structure["closing"] = working[n-1:]
		} else {
			structure["main_story"] = working
		}

	case StyleInterview:
		sort.SliceStable(working, func(i, j int) bool { return working[i].Score > working[j].Score })
		n := len(working)
		if n >= 6 {
			structure["intro"] = working[:1]
			structure["q1"] = working[1 : n/3]
			structure["q2"] = working[n/3 : 2*n/3]
			structure["q3"] = working[2*n/3 : n-2]
			structure["highlight"] = working[:1]
			structure["closing"] = working[n-1:]
		} else {
			structure["highlight"] = working
		}

	case StyleEpisode:
		sort.SliceStable(working, func(i, j int) bool { return working[i].Score > working[j].Score })
		n := len(working)
		if n >= 6 {
			structure["hook"] = working[:1]
			structure["intro"] = working[1:2]
			structure["main_content"] = working[2 : n-3]
			structure["climax"] = working[n-3 : n-1]
			structure["outro"] = working[n-1:]
		} else {
			structure["main_content"] = working
		}

	default:
		sort.SliceStable(working, func(i, j int) bool { return working[i].Score > working[j].Score })
		if len(order) > 0 {
			structure[order[0]] = working
		}
	}

	return structure, order
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
