package transcript

import "strings"

// SentimentScorer scores a piece of text from -1 (negative) to 1
// (positive). It returns ok=false when it has no opinion, letting the
// caller fall through to the next tier.
type SentimentScorer interface {
	Score(text string) (score float64, ok bool)
}

// lexiconScorer is the VADER-style tier: a compound polarity score
// derived from a small positive/negative word lexicon with simple
// negation handling (intensifiers are not weighted). It is the first
// tier tried and reports ok=false when no lexicon word occurs.
type lexiconScorer struct {
	positive map[string]float64
	negative map[string]float64
}

func newLexiconScorer() *lexiconScorer {
	return &lexiconScorer{
		positive: map[string]float64{
			"love": 0.9, "happy": 0.7, "great": 0.7, "wonderful": 0.8,
			"amazing": 0.9, "best": 0.8, "good": 0.5, "excellent": 0.9,
			"fantastic": 0.8, "perfect": 0.8, "outstanding": 0.8,
			"impressive": 0.6,
		},
		negative: map[string]float64{
			"hate": -0.9, "sad": -0.6, "terrible": -0.8, "awful": -0.8,
			"worst": -0.9, "bad": -0.5, "horrible": -0.8, "difficult": -0.4,
			"disappointing": -0.6, "weak": -0.4, "poor": -0.5,
			"unfortunately": -0.4,
		},
	}
}

func (s *lexiconScorer) Score(text string) (float64, bool) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0, false
	}
	var sum float64
	var hits int
	negate := false
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:\"'")
		if w == "not" || w == "no" || w == "never" {
			negate = true
			continue
		}
		if v, ok := s.positive[w]; ok {
			if negate {
				v = -v
			}
			sum += v
			hits++
		} else if v, ok := s.negative[w]; ok {
			if negate {
				v = -v
			}
			sum += v
			hits++
		}
		negate = false
	}
	if hits == 0 {
		return 0, false
	}
	avg := sum / float64(hits)
	if avg > 1 {
		avg = 1
	}
	if avg < -1 {
		avg = -1
	}
	return avg, true
}

// polarityScorer is the second tier: a coarser additive polarity count
// over a broader, less-weighted word list, standing in for the
// TextBlob fallback.
type polarityScorer struct {
	positive []string
	negative []string
}

func newPolarityScorer() *polarityScorer {
	return &polarityScorer{
		positive: []string{"great", "excellent", "love", "good", "nice", "enjoy", "glad"},
		negative: []string{"bad", "poor", "issue", "problem", "concern", "worried", "dislike"},
	}
}

func (s *polarityScorer) Score(text string) (float64, bool) {
	lower := strings.ToLower(text)
	var pos, neg int
	for _, w := range s.positive {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range s.negative {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	if pos == 0 && neg == 0 {
		return 0, false
	}
	total := pos + neg
	return float64(pos-neg) / float64(total), true
}

// heuristicScorer is the last-resort tier: a three-bucket fallback that
// always reports an opinion, matching the original's guaranteed-to-run
// heuristic fallback.
type heuristicScorer struct {
	positive []string
	negative []string
}

func newHeuristicScorer() *heuristicScorer {
	return &heuristicScorer{
		positive: []string{"love", "happy", "great", "wonderful", "amazing", "best", "good", "excellent"},
		negative: []string{"hate", "sad", "terrible", "awful", "worst", "bad", "horrible", "difficult"},
	}
}

func (s *heuristicScorer) Score(text string) (float64, bool) {
	lower := strings.ToLower(text)
	var pos, neg int
	for _, w := range s.positive {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range s.negative {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return 0.3, true
	case neg > pos:
		return -0.3, true
	default:
		return 0.0, true
	}
}

// chainScorer tries each tier in order and returns the first opinion
// that isn't a flat zero-confidence miss.
type chainScorer struct {
	tiers []SentimentScorer
}

func newChainScorer() *chainScorer {
	return &chainScorer{tiers: []SentimentScorer{
		newLexiconScorer(),
		newPolarityScorer(),
		newHeuristicScorer(),
	}}
}

func (c *chainScorer) Score(text string) float64 {
	for _, tier := range c.tiers {
		if v, ok := tier.Score(text); ok && v != 0 {
			return v
		}
	}
	// No tier produced a non-zero score (empty text, or a tie in the
	// heuristic tier): neutral.
	return 0
}
