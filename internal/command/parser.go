package command

import (
	"roughcut/internal/model"
)

// boundaryKeywords are the keywords that terminate a variable-length
// text span (scene name, title text, chapter name) when encountered
// before an explicit "done".
var boundaryKeywords = map[string]bool{
	"mark": true, "take": true, "order": true, "step": true, "type": true,
	"hook": true, "title": true, "effect": true, "transition": true,
	"screen": true, "cta": true, "chapter": true, "broll": true,
	"emotion": true, "energy": true, "apply": true, "ending": true,
	"done": true,
}

// titleBoundaryKeywords is the narrower stop-set used while collecting
// title text, matching the original vocabulary exactly (it omits
// "emotion"/"energy"/"apply"/"ending" because those never legitimately
// follow a title in practice and the source treats them as free text).
var titleBoundaryKeywords = map[string]bool{
	"mark": true, "order": true, "step": true, "type": true, "hook": true,
	"effect": true, "transition": true, "screen": true, "cta": true,
	"chapter": true, "broll": true,
}

// chapterBoundaryKeywords is the stop-set used while collecting chapter
// text.
var chapterBoundaryKeywords = map[string]bool{
	"mark": true, "order": true, "step": true, "type": true, "hook": true,
	"title": true, "effect": true, "transition": true, "screen": true,
	"cta": true, "broll": true,
}

// Parse consumes the raw token list strictly between a slate occurrence
// and its matching done (original case preserved; normalization happens
// internally) and returns the resulting model.ParsedCommands.
func Parse(commands []string) model.ParsedCommands {
	parsed := model.ParsedCommands{RawCommands: commands}

	normalized := make([]string, len(commands))
	for i, c := range commands {
		normalized[i] = NormalizeWord(c)
	}

	i := 0
	for i < len(normalized) {
		cmd := normalized[i]

		switch {
		case cmd == "apply":
			i = parseApply(&parsed, normalized, i)
			continue

		case cmd == "ending":
			i = parseEnding(&parsed, normalized, i)
			continue

		case cmd == "emotion" && i+1 < len(normalized):
			parsed.Emotion = normalized[i+1]
			i += 2
			continue

		case cmd == "energy" && i+1 < len(normalized):
			parsed.Energy = normalized[i+1]
			i += 2
			continue

		case cmd == "naming":
			// Currently disabled: consume the keyword only. See
			// spec section 4.2 -- the slot is kept so the vocabulary
			// stays stable if it is ever re-enabled.
			i++
			continue

		case cmd == "mark":
			parsed.Mark = true
			i++
			continue

		case cmd == "scene" && i+1 < len(normalized):
			i = parseScene(&parsed, commands, normalized, i)
			continue

		case cmd == "take" && i+1 < len(normalized):
			if n, ok := ParseNumber(normalized[i+1]); ok {
				parsed.Take = &n
			}
			i += 2
			continue

		case cmd == "order" && i+1 < len(normalized):
			if n, ok := ParseNumber(normalized[i+1]); ok {
				parsed.Order = &n
				if parsed.SceneNumber == nil {
					v := float64(n)
					parsed.SceneNumber = &v
				}
			}
			i += 2
			continue

		case cmd == "step" && i+1 < len(normalized):
			if n, ok := ParseNumber(normalized[i+1]); ok {
				parsed.Step = &n
			}
			i += 2
			continue

		case cmd == "type" && i+1 < len(normalized):
			parsed.SegmentType = normalized[i+1]
			i += 2
			continue

		case cmd == "best" || cmd == "select" || cmd == "backup":
			parsed.Quality = model.Quality(cmd)
			i++
			continue

		case cmd == "hook" && i+1 < len(normalized):
			parsed.Hook = normalized[i+1]
			i += 2
			continue

		case cmd == "title":
			i = parseTitle(&parsed, commands, normalized, i)
			continue

		case cmd == "effect" && i+2 < len(normalized):
			parsed.EffectProduct = normalized[i+1]
			parsed.EffectName = normalized[i+2]
			parsed.Effect = normalized[i+1] + ":" + normalized[i+2]
			i += 3
			continue

		case cmd == "transition":
			i = parseTransition(&parsed, normalized, i)
			continue

		case cmd == "screen" && i+1 < len(normalized):
			parsed.Screen = normalized[i+1]
			i += 2
			continue

		case cmd == "cta" && i+1 < len(normalized):
			parsed.CTA = normalized[i+1]
			i += 2
			continue

		case cmd == "chapter" && i+1 < len(normalized):
			i = parseChapter(&parsed, commands, normalized, i)
			continue

		case cmd == "broll" && i+1 < len(normalized):
			parsed.Broll = normalized[i+1]
			i += 2
			continue

		default:
			// Unknown token, silently skipped.
			i++
		}
	}

	return parsed
}

func applyScoreFromActions(parsed *model.ParsedCommands) {
	for _, action := range parsed.RetroactiveActions {
		for _, level := range scoreLevels {
			if action == level {
				parsed.Score = model.Quality(level)
				parsed.ScoreLevel = scoreScale[level]
				return
			}
		}
	}
}

func parseApply(parsed *model.ParsedCommands, normalized []string, i int) int {
	i++ // skip "apply"
	for i < len(normalized) {
		next := normalized[i]
		if doneVariants[next] || next == "done" {
			break
		}
		parsed.RetroactiveActions = append(parsed.RetroactiveActions, next)
		i++
	}
	applyScoreFromActions(parsed)
	return i
}

func parseEnding(parsed *model.ParsedCommands, normalized []string, i int) int {
	hasCommands := false
	j := i + 1
	for j < len(normalized) {
		next := normalized[j]
		if doneVariants[next] || next == "done" {
			break
		}
		hasCommands = true
		parsed.RetroactiveActions = append(parsed.RetroactiveActions, next)
		j++
	}
	if hasCommands {
		parsed.Ending = false
		applyScoreFromActions(parsed)
		return j
	}
	// Lone "ending": documented no-op besides the deprecation notice the
	// caller (the marker detector) logs when it sees this branch taken.
	parsed.Ending = false
	return i + 1
}

func parseScene(parsed *model.ParsedCommands, commands, normalized []string, i int) int {
	sceneNum, nextIdx, ok := ParseDecimalNumber(commands, i+1)
	if ok {
		parsed.SceneNumber = &sceneNum
		if nextIdx < len(commands) {
			name, j := collectUntilBoundary(commands, normalized, nextIdx, boundaryKeywords)
			if name != "" {
				parsed.SceneName = name
			}
			return j
		}
		return nextIdx
	}
	name, j := collectUntilBoundary(commands, normalized, i+1, boundaryKeywords)
	if name != "" {
		parsed.SceneName = name
	}
	return j
}

func parseTitle(parsed *model.ParsedCommands, commands, normalized []string, i int) int {
	titleStart := i + 1
	if i+2 < len(normalized) {
		switch normalized[i+1] {
		case "lower", "full", "upper":
			parsed.TitleType = model.TitleType(normalized[i+1])
			if i+2 < len(normalized) && normalized[i+2] == "third" {
				parsed.TitleType = model.TitleType(normalized[i+1] + " third")
				titleStart = i + 3
			} else {
				titleStart = i + 2
			}
		}
	}
	title, j := collectUntilBoundary(commands, normalized, titleStart, titleBoundaryKeywords)
	parsed.Title = title
	return j
}

func parseTransition(parsed *model.ParsedCommands, normalized []string, i int) int {
	if i+2 < len(normalized) {
		parsed.TransitionProduct = normalized[i+1]
		parsed.TransitionName = normalized[i+2]
		parsed.Transition = normalized[i+1] + ":" + normalized[i+2]
		return i + 3
	}
	if i+1 < len(normalized) {
		parsed.TransitionGeneric = normalized[i+1]
		parsed.Transition = normalized[i+1]
		return i + 2
	}
	return i + 1
}

func parseChapter(parsed *model.ParsedCommands, commands, normalized []string, i int) int {
	chapter, j := collectUntilBoundary(commands, normalized, i+1, chapterBoundaryKeywords)
	parsed.Chapter = chapter
	return j
}

// collectUntilBoundary gathers original-case tokens starting at idx
// until a normalized token in stop is reached or the input ends,
// joining them with a single space.
func collectUntilBoundary(commands, normalized []string, idx int, stop map[string]bool) (string, int) {
	var words []string
	j := idx
	for j < len(normalized) {
		next := normalized[j]
		if stop[next] || doneVariants[next] {
			break
		}
		words = append(words, commands[j])
		j++
	}
	if len(words) == 0 {
		return "", j
	}
	joined := words[0]
	for _, w := range words[1:] {
		joined += " " + w
	}
	return joined, j
}
