package transcript

import "strings"

// topicBucket pairs a topic name with the keywords/phrases that trigger
// it. Order matters: the first bucket with a keyword starting at a word
// boundary in the text wins (so "prove" does not fire inside "improve"), so
// the slice preserves the original keyword-priority order rather than
// a map's unspecified iteration order.
type topicBucket struct {
	name     string
	keywords []string
}

var topicBuckets = []topicBucket{
	{"introduction", []string{"introduce", "background", "context", "start"}},
	{"problem", []string{"problem", "issue", "challenge", "difficulty", "struggle"}},
	{"personal_stories", []string{"remember", "story", "happened", "when i", "my"}},
	{"expert_opinions", []string{"research", "study", "data", "evidence", "prove"}},
	{"solutions", []string{"solution", "solve", "fix", "improve", "help", "way"}},
	{"conclusion", []string{"conclusion", "finally", "summary", "wrap up", "end"}},
}

// DetectTopic classifies a single line of text into one of the fixed
// topic buckets, defaulting to "general" when nothing matches. The
// result is cached by the caller (Analyzer.Topic), keyed on the
// first 100 characters of the lowercased text.
func DetectTopic(text string) string {
	lower := strings.ToLower(text)
	for _, b := range topicBuckets {
		for _, kw := range b.keywords {
			for from := 0; ; {
				at := strings.Index(lower[from:], kw)
				if at < 0 {
					break
				}
				at += from
				prev := byte(' ')
				if at > 0 {
					prev = lower[at-1]
				}
				if !(prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9') {
					return b.name
				}
				from = at + 1
			}
		}
	}
	return "general"
}

// nlpTopicBuckets is the narrower four-bucket table used by the
// interview-segment topic extractor, matching the narrower keyword
// fallback used there.
var nlpTopicBuckets = []topicBucket{
	{"introduction", []string{"introduce", "background", "context"}},
	{"problem", []string{"problem", "issue", "challenge"}},
	{"personal_stories", []string{"remember", "story", "happened"}},
	{"solutions", []string{"solution", "solve", "fix", "help"}},
}

// ExtractTopicsNLP returns every matching topic bucket name for a full
// transcript (not just the first match), deduplicated. It stands in
// for the NLP noun-chunk/entity extraction path: since no NLP library
// is wired into this repository, it always takes the keyword-fallback
// branch.
func ExtractTopicsNLP(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var out []string
	for _, b := range nlpTopicBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				if !seen[b.name] {
					seen[b.name] = true
					out = append(out, b.name)
				}
				break
			}
		}
	}
	return out
}
