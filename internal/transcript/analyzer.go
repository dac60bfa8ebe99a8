// Package transcript implements the marker-free fallback analysis path:
// quote importance scoring, sentiment/topic/emotion detection, natural
// edit point discovery, and the regex-keyword feature/pros-cons/reveal/
// comparison/concept detectors.
package transcript

import (
	"regexp"
	"sort"
	"strings"

	"roughcut/internal/model"
)

var (
	numberPattern   = regexp.MustCompile(`\d+`)
	properNamePattern = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
	datePattern     = regexp.MustCompile(`(?i)\b(19|20)\d{2}\b|\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)
	fillerPatterns  = compileAll(
		`\bum+\b`, `\buh+\b`, `\bah+\b`, `\blike\b`, `\byou know\b`,
		`\bso+\b`, `\bbasically\b`, `\bactually\b`, `\bi mean\b`,
	)
	keywordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)
)

// Analyzer holds the per-pipeline-run state the original keeps as
// instance attributes: the set of quote texts already seen (for the
// uniqueness bonus) and memoization caches for sentiment/topic/keyword
// lookups. A caller running two pipelines concurrently must construct
// two Analyzers; none of this state is package-level.
type Analyzer struct {
	Config model.ScoringConfig

	sentiment *chainScorer
	seen      map[string]bool

	sentimentCache map[string]float64
	topicCache     map[string]string
	keywordCache   map[string][]string
}

// New builds an Analyzer with the default scoring thresholds.
func New() *Analyzer {
	return NewWithConfig(model.DefaultScoringConfig())
}

// NewWithConfig builds an Analyzer using a caller-supplied ScoringConfig.
func NewWithConfig(cfg model.ScoringConfig) *Analyzer {
	return &Analyzer{
		Config:         cfg,
		sentiment:      newChainScorer(),
		seen:           make(map[string]bool),
		sentimentCache: make(map[string]float64),
		topicCache:     make(map[string]string),
		keywordCache:   make(map[string][]string),
	}
}

// Sentiment returns a cached sentiment score in [-1, 1] for text.
func (a *Analyzer) Sentiment(text string) float64 {
	key := strings.ToLower(strings.TrimSpace(text))
	if v, ok := a.sentimentCache[key]; ok {
		return v
	}
	v := a.sentiment.Score(text)
	a.sentimentCache[key] = v
	return v
}

// Emotion buckets a sentiment score into positive/negative/neutral.
func (a *Analyzer) Emotion(text string) string {
	s := a.Sentiment(text)
	switch {
	case s > 0.1:
		return "positive"
	case s < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}

// Topic returns the cached topic-bucket classification for text.
func (a *Analyzer) Topic(text string) string {
	key := text
	if len(key) > 100 {
		key = key[:100]
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if v, ok := a.topicCache[key]; ok {
		return v
	}
	v := DetectTopic(text)
	a.topicCache[key] = v
	return v
}

// QuoteImportance scores a single entry's text on a 0..100 scale per
// spec section 4.5.
func (a *Analyzer) QuoteImportance(text string) float64 {
	var score float64
	lower := strings.ToLower(text)

	if !a.seen[lower] {
		score += 30.0
	}

	if numberPattern.MatchString(text) || properNamePattern.MatchString(text) || datePattern.MatchString(text) {
		score += 20.0
	}

	score += absF(a.Sentiment(text)) * 20.0

	words := strings.Fields(text)
	switch {
	case len(words) >= 10 && len(words) <= 30:
		score += 15.0
	case len(words) > 30:
		score += 10.0
	case len(words) >= 5:
		score += 5.0
	}

	if strings.Contains(text, "?") {
		score += 10.0
	}

	fillerCount := 0
	for _, p := range fillerPatterns {
		if p.MatchString(lower) {
			fillerCount++
		}
	}
	if fillerCount > 2 {
		penalty := float64(fillerCount) * 5.0
		if penalty > 15.0 {
			penalty = 15.0
		}
		score -= penalty
	}

	if score > 100.0 {
		score = 100.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

// ExtractQuotes scores every entry in entries and returns the ones
// meeting minImportance, sorted by descending importance. clipIndex is
// stamped onto each returned Quote for the caller's clip slice.
func (a *Analyzer) ExtractQuotes(clipIndex int, entries []model.SRTEntry, minImportance float64) []model.Quote {
	var quotes []model.Quote
	for _, e := range entries {
		importance := a.QuoteImportance(e.Text)
		if importance < minImportance {
			continue
		}
		quotes = append(quotes, model.Quote{
			Text:            e.Text,
			StartTime:       e.Start,
			EndTime:         e.End,
			ImportanceScore: importance,
			Topic:           a.Topic(e.Text),
			Emotion:         a.Emotion(e.Text),
			ClipIndex:       clipIndex,
		})
		a.seen[strings.ToLower(e.Text)] = true
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].ImportanceScore > quotes[j].ImportanceScore })
	return quotes
}

// ExtractTopics pools quotes (at the topic-extraction threshold) across
// every clip's entries and groups them by topic, each group sorted by
// descending importance.
func (a *Analyzer) ExtractTopics(clipsEntries [][]model.SRTEntry) map[string][]model.Quote {
	topics := make(map[string][]model.Quote)
	for clipIdx, entries := range clipsEntries {
		for _, q := range a.ExtractQuotes(clipIdx, entries, a.Config.TopicQuoteImportance) {
			topics[q.Topic] = append(topics[q.Topic], q)
		}
	}
	for topic := range topics {
		list := topics[topic]
		sort.SliceStable(list, func(i, j int) bool { return list[i].ImportanceScore > list[j].ImportanceScore })
		topics[topic] = list
	}
	return topics
}

// Keywords extracts up to 20 keywords from text via word-frequency,
// cached by the first 200 characters of the lowercased text. No NLP
// tagger is wired into this repository, so this always takes the
// frequency-fallback path.
func (a *Analyzer) Keywords(text string) []string {
	key := text
	if len(key) > 200 {
		key = key[:200]
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if v, ok := a.keywordCache[key]; ok {
		return v
	}

	counts := make(map[string]int)
	var order []string
	for _, w := range keywordPattern.FindAllString(strings.ToLower(text), -1) {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > 20 {
		order = order[:20]
	}

	a.keywordCache[key] = order
	return order
}

// AnalyzeInterviewSegment builds the full per-clip analysis bundle used
// by the narrative-arc (smart documentary) pipeline.
func (a *Analyzer) AnalyzeInterviewSegment(clipIndex int, entries []model.SRTEntry, duration float64) model.InterviewSegment {
	var texts []string
	for _, e := range entries {
		texts = append(texts, e.Text)
	}
	transcript := strings.Join(texts, " ")

	var emotionScore float64
	var topics []string
	var keywords []string
	if transcript != "" {
		emotionScore = a.Sentiment(transcript)
		topics = ExtractTopicsNLP(transcript)
		keywords = a.Keywords(transcript)
	}

	return model.InterviewSegment{
		ClipIndex:     clipIndex,
		Transcript:    transcript,
		Quotes:        a.ExtractQuotes(clipIndex, entries, a.Config.InterviewQuoteImportance),
		Topics:        topics,
		EmotionScore:  emotionScore,
		NaturalPauses: FindNaturalEditPoints(entries),
		Duration:      duration,
		Keywords:      keywords,
	}
}
