package roughcut

import (
	"regexp"
	"sort"
	"strings"

	"roughcut/internal/model"
)

const (
	hookMinDuration = 5.0
	hookMaxDuration = 15.0
	hookWindow      = 60.0
)

var hookPhrasePatterns = []struct {
	pattern *regexp.Regexp
	hookType string
}{
	{regexp.MustCompile(`in this video.*?show you`), "value_prop"},
	{regexp.MustCompile(`i'm going to.*?teach you`), "value_prop"},
	{regexp.MustCompile(`by the end.*?you'll know`), "promise"},
	{regexp.MustCompile(`you won't believe`), "reveal"},
	{regexp.MustCompile(`today.*?reveal.*?secret`), "reveal"},
	{regexp.MustCompile(`in this.*?tutorial`), "value_prop"},
	{regexp.MustCompile(`i'll show you.*?how`), "value_prop"},
	{regexp.MustCompile(`learn.*?in.*?minutes`), "promise"},
	{regexp.MustCompile(`watch.*?to.*?learn`), "value_prop"},
	{regexp.MustCompile(`here's.*?how`), "value_prop"},
}

// hookFlowMultipliers boosts retention scores for named hook-flow tags
// detected from filename conventions (CH, AH, PSH, ...).
var hookFlowMultipliers = map[string]float64{
	"CH": 1.3, "AH": 1.25, "PSH": 1.2, "TPH": 1.15, "COH": 1.35,
	"VH": 1.1, "SH": 1.2, "QH": 1.15, "VALUE_PROP": 1.1,
	"REVEAL": 1.25, "PROMISE": 1.15,
}

// GenerateHookCandidates scans the first 60 seconds of hook-flagged
// clips (those with a named hook-flow type first; with none flagged,
// up to the first three clips) for 5-15s hook candidates, scoring each on hook-phrase
// presence, speech clarity, and an external audio-energy measurement,
// returning the top maxHooks sorted by descending retention score.
func GenerateHookCandidates(clips []model.ClipAnalysis, audioEnergy func(clip model.ClipAnalysis, start, end float64) float64, maxHooks int) []model.HookCandidate {
	searchClips := selectHookSearchClips(clips)

	var candidates []model.HookCandidate
	for _, clip := range searchClips {
		if len(clip.Entries) == 0 {
			continue
		}

		for i, entry := range clip.Entries {
			if entry.End > hookWindow {
				continue
			}

			hookType := "generic"
			hasHookPhrase := false
			lower := strings.ToLower(entry.Text)
			for _, hp := range hookPhrasePatterns {
				if hp.pattern.MatchString(lower) {
					hookType = hp.hookType
					hasHookPhrase = true
					break
				}
			}

			start := entry.Start
			end := entry.End
			if end-start > hookMaxDuration {
				end = start + hookMaxDuration
			}
			if end-start < hookMinDuration {
				for j := i; j < len(clip.Entries) && j < i+5; j++ {
					if clip.Entries[j].End-start <= hookMaxDuration {
						end = clip.Entries[j].End
					} else {
						break
					}
				}
			}

			duration := end - start
			if duration < hookMinDuration || duration > hookMaxDuration {
				continue
			}

			var energy float64
			if audioEnergy != nil {
				energy = audioEnergy(clip, start, end)
			}
			clarity := clarityScore(entry.Text)

			hookPhraseWeight := 0.5
			if hasHookPhrase {
				hookPhraseWeight = 1.0
			}
			retention := hookPhraseWeight*40.0 + energy*30.0 + clarity*20.0 + 10.0

			if mult, ok := hookFlowMultipliers[clip.HookFlowType]; ok {
				retention *= mult
				if retention > 100 {
					retention = 100
				}
			}

			if retention <= 50.0 {
				continue
			}

			candidates = append(candidates, model.HookCandidate{
				Segment: model.Segment{
					SourceFile:  clip.FilePath,
					StartTime:   start,
					EndTime:     end,
					Text:        entry.Text,
					Score:       retention / 100.0,
					SegmentType: "hook",
				},
				Score: retention,
				Label: hookType,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
	if len(candidates) > maxHooks {
		candidates = candidates[:maxHooks]
	}
	return candidates
}

func selectHookSearchClips(clips []model.ClipAnalysis) []model.ClipAnalysis {
	var named, plain []model.ClipAnalysis
	for _, c := range clips {
		if !c.IsHook {
			continue
		}
		if c.HookFlowType != "" {
			named = append(named, c)
		} else {
			plain = append(plain, c)
		}
	}
	switch {
	case len(named) > 0:
		return named
	case len(plain) > 0:
		return plain
	case len(clips) > 3:
		return clips[:3]
	default:
		return clips
	}
}

var hookFillerPatterns = compileHookFillers()

func compileHookFillers() []*regexp.Regexp {
	patterns := []string{
		`\bum+\b`, `\buh+\b`, `\bah+\b`, `\blike\b`, `\byou know\b`,
		`\bso+\b`, `\bbasically\b`, `\bactually\b`, `\bi mean\b`,
	}
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// clarityScore returns 1.0 for filler-free speech, degrading toward 0
// as the ratio of filler words to total words rises.
func clarityScore(text string) float64 {
	lower := strings.ToLower(text)
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0.0
	}
	fillerCount := 0
	for _, p := range hookFillerPatterns {
		if p.MatchString(lower) {
			fillerCount++
		}
	}
	ratio := float64(fillerCount) / float64(len(words))
	score := 1.0 - ratio*2.0
	if score < 0 {
		score = 0
	}
	return score
}
