package transcript

import (
	"sort"
	"strings"

	"roughcut/internal/model"
)

const (
	pauseGapThreshold    = 0.3
	sentenceEndWindow    = 1.0
	sentenceEndBoost     = 1.5
	confidenceGapDivisor = 2.0
)

// FindNaturalEditPoints scans the clip's SRT entries for silence gaps
// longer than pauseGapThreshold and reports each gap midpoint as a
// candidate cut, boosting confidence when the gap sits near a
// sentence-ending entry.
func FindNaturalEditPoints(entries []model.SRTEntry) []model.NaturalEditPoint {
	if len(entries) == 0 {
		return nil
	}

	type pause struct {
		time       float64
		confidence float64
	}
	var pauses []pause
	for i := 0; i < len(entries)-1; i++ {
		gapStart := entries[i].End
		gapEnd := entries[i+1].Start
		gap := gapEnd - gapStart
		if gap > pauseGapThreshold {
			pauses = append(pauses, pause{
				time:       gapStart + gap/2,
				confidence: min1(gap / confidenceGapDivisor),
			})
		}
	}

	var sentenceEnds []float64
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}
		last := text[len(text)-1]
		if last == '.' || last == '!' || last == '?' {
			sentenceEnds = append(sentenceEnds, e.End)
		}
	}
	sort.Float64s(sentenceEnds)

	points := make([]model.NaturalEditPoint, 0, len(pauses))
	for _, p := range pauses {
		near := false
		for _, se := range sentenceEnds {
			if absF(p.time-se) < sentenceEndWindow {
				near = true
				break
			}
			if se > p.time+sentenceEndWindow {
				break
			}
		}
		confidence := p.confidence
		if near {
			confidence = min1(confidence * sentenceEndBoost)
		}
		points = append(points, model.NaturalEditPoint{
			Time:       p.time,
			Confidence: confidence,
		})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Confidence > points[j].Confidence })
	return points
}

func min1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
