package roughcut

import (
	"sort"

	"roughcut/internal/model"
)

// narrativeArcSections is the fixed six-act documentary structure.
var narrativeArcSections = []string{"hook", "setup", "act_1", "act_2", "act_3", "conclusion"}

const (
	hookShare       = 0.05
	setupShare      = 0.10
	act1Share       = 0.25
	act2Share       = 0.40
	act3Share       = 0.15
	conclusionShare = 0.05
)

// organizeByThemes groups every clip's quotes by topic into Themes,
// ordered by the fixed topic-bucket list (introduction first, general
// last). This stands in for a full thematic
// clustering pass: grouping by the transcript analyzer's own topic
// buckets is the same signal the original's theme step ultimately
// keys off of once NLP clustering is unavailable.
func organizeByThemes(interviews []model.InterviewSegment) []model.Theme {
	order := []string{"introduction", "problem", "personal_stories", "expert_opinions", "solutions", "conclusion", "general"}
	byTopic := make(map[string][]model.Segment)
	for _, seg := range interviews {
		for _, q := range seg.Quotes {
			byTopic[q.Topic] = append(byTopic[q.Topic], model.Segment{
				SourceFile: "", StartTime: q.StartTime, EndTime: q.EndTime,
				Text: q.Text, Topic: q.Topic, Score: q.ImportanceScore / 100.0,
			})
		}
	}
	var themes []model.Theme
	for _, topic := range order {
		if segs, ok := byTopic[topic]; ok && len(segs) > 0 {
			themes = append(themes, model.Theme{Name: topic, Segments: segs})
		}
	}
	return themes
}

// buildNarrativeArc assembles the hook/setup/act1-3/conclusion
// structure from theme-grouped quotes, per spec section 4.6's
// narrative-arc pipeline.
func buildNarrativeArc(interviews []model.InterviewSegment, themes []model.Theme, targetDuration float64) map[string][]model.Segment {
	arc := make(map[string][]model.Segment, len(narrativeArcSections))
	for _, s := range narrativeArcSections {
		arc[s] = nil
	}
	if len(interviews) == 0 {
		return arc
	}

	type quoteRef struct {
		quote   model.Quote
		emotion float64
	}
	var all []quoteRef
	for _, seg := range interviews {
		for _, q := range seg.Quotes {
			all = append(all, quoteRef{quote: q, emotion: seg.EmotionScore})
		}
	}
	if len(all) == 0 {
		return arc
	}

	best := all[0]
	bestScore := absF(best.emotion)*0.5 + (best.quote.ImportanceScore/100.0)*0.5
	for _, qr := range all[1:] {
		s := absF(qr.emotion)*0.5 + (qr.quote.ImportanceScore/100.0)*0.5
		if s > bestScore {
			best, bestScore = qr, s
		}
	}
	arc["hook"] = []model.Segment{quoteToSegment(best.quote, 30.0)}

	arc["setup"] = topQuotesByTopic(all, "introduction", 3, 20.0)

	for _, t := range themes {
		switch t.Name {
		case "problem":
			arc["act_1"] = append(arc["act_1"], t.Segments...)
		case "personal_stories", "expert_opinions":
			arc["act_2"] = append(arc["act_2"], t.Segments...)
		case "solutions":
			arc["act_3"] = append(arc["act_3"], t.Segments...)
		}
	}

	arc["conclusion"] = topQuotesByTopic(all, "conclusion", 2, 15.0)

	budget := map[string]float64{
		"hook": targetDuration * hookShare, "setup": targetDuration * setupShare,
		"act_1": targetDuration * act1Share, "act_2": targetDuration * act2Share,
		"act_3": targetDuration * act3Share, "conclusion": targetDuration * conclusionShare,
	}
	for _, section := range []string{"act_1", "act_2", "act_3"} {
		arc[section] = capByDuration(arc[section], budget[section])
	}

	return arc
}

func topQuotesByTopic(all []struct {
	quote   model.Quote
	emotion float64
}, topic string, limit int, maxDuration float64) []model.Segment {
	var matches []model.Quote
	for _, qr := range all {
		if qr.quote.Topic == topic {
			matches = append(matches, qr.quote)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ImportanceScore > matches[j].ImportanceScore })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]model.Segment, 0, len(matches))
	for _, q := range matches {
		out = append(out, quoteToSegment(q, maxDuration))
	}
	return out
}

func quoteToSegment(q model.Quote, maxDuration float64) model.Segment {
	end := q.EndTime
	if maxDuration > 0 && end-q.StartTime > maxDuration {
		end = q.StartTime + maxDuration
	}
	return model.Segment{
		StartTime:   q.StartTime,
		EndTime:     end,
		Text:        q.Text,
		Topic:       q.Topic,
		Score:       q.ImportanceScore / 100.0,
		SegmentType: "content",
	}
}

func capByDuration(segments []model.Segment, budget float64) []model.Segment {
	if budget <= 0 {
		return segments
	}
	var kept []model.Segment
	var total float64
	for _, s := range segments {
		d := s.Duration()
		if total+d > budget && len(kept) > 0 {
			break
		}
		kept = append(kept, s)
		total += d
	}
	return kept
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
