// Package marker scans a word-timestamped transcript for slate...done
// audio marker regions, classifies each one, and computes the cut point
// a rough cut should use around it.
package marker

import (
	"roughcut/internal/command"
	"roughcut/internal/model"
	"roughcut/internal/rclog"
)

const (
	markerWindow   = 10.0 // seconds a slate has to find its matching done
	paddingBefore  = 0.2  // seconds of padding retained before the first post-done word
	paddingAfter   = 0.3  // seconds of padding retained after the last pre-slate word
	standaloneFallback = 0.5
)

// Detector finds audio markers in a transcript. It is stateless and safe
// for concurrent use; a caller running multiple pipelines in parallel may
// share one Detector.
type Detector struct {
	Logger *rclog.Logger
}

// New returns a Detector. A nil logger is replaced with a discarding one.
func New(logger *rclog.Logger) *Detector {
	if logger == nil {
		logger = rclog.Discard()
	}
	return &Detector{Logger: logger}
}

// Detect scans transcript.Words for slate...done regions and returns the
// ordered list of markers found. sourceFile is attached to every emitted
// marker for provenance.
func (d *Detector) Detect(words []model.Word, sourceFile string) []model.AudioMarker {
	var markers []model.AudioMarker
	if len(words) == 0 {
		return markers
	}

	i := 0
	for i < len(words) {
		if !isSlateWord(words[i].Word) {
			i++
			continue
		}

		slateTime := words[i].Start
		cutoff := slateTime + markerWindow
		var commands []string
		doneFound := false
		doneTime := cutoff

		j := i + 1
		for j < len(words) && words[j].Start <= cutoff {
			if isDoneWord(words[j].Word) {
				doneFound = true
				doneTime = words[j].End
				break
			}
			commands = append(commands, words[j].Word)
			j++
		}

		if len(commands) == 0 && !doneFound {
			i++
			continue
		}

		parsed := command.Parse(commands)
		markerType := classify(parsed, sourceFile, d.Logger)
		cutPoint := calculateCutPoint(markerType, slateTime, doneTime, words)

		markers = append(markers, model.AudioMarker{
			Timestamp:      slateTime,
			MarkerType:     markerType,
			Commands:       commands,
			ParsedCommands: parsed,
			DoneTime:       doneTime,
			CutPoint:       cutPoint,
			SourceFile:     sourceFile,
		})

		if doneFound {
			i = j + 1
		} else {
			i = j
		}
	}

	return markers
}

func isSlateWord(word string) bool {
	return command.NormalizeWord(word) == "slate"
}

func isDoneWord(word string) bool {
	return command.IsDone(word)
}

func classify(parsed model.ParsedCommands, sourceFile string, logger *rclog.Logger) model.MarkerType {
	if len(parsed.RetroactiveActions) > 0 {
		return model.MarkerRetroactive
	}
	for _, c := range parsed.RawCommands {
		if command.NormalizeWord(c) == "ending" {
			logger.Warn("deprecated marker keyword used", "keyword", "ending", "source_file", sourceFile)
			break
		}
	}
	if parsed.Ending {
		logger.Warn("deprecated marker keyword used", "keyword", "ending", "source_file", sourceFile)
		return model.MarkerRetroactive
	}
	if parsed.Take != nil || parsed.Order != nil || parsed.SceneNumber != nil || parsed.Step != nil {
		return model.MarkerStart
	}
	return model.MarkerStandalone
}

// calculateCutPoint implements spec section 4.3's padding rules. The
// deprecated END path is retained only so the backward-compatibility
// tests it supports keep working; the production pipeline never
// classifies a marker as END.
func calculateCutPoint(markerType model.MarkerType, slateTime, doneTime float64, words []model.Word) float64 {
	switch markerType {
	case model.MarkerStart:
		if w, ok := firstWordAfter(words, doneTime); ok {
			return max(doneTime, w.Start-paddingBefore)
		}
		return doneTime

	case model.MarkerEnd:
		if w, ok := lastWordBefore(words, slateTime); ok {
			return min(slateTime, w.End+paddingAfter)
		}
		return slateTime

	case model.MarkerRetroactive:
		return doneTime

	default: // STANDALONE
		if w, ok := firstWordAfter(words, doneTime); ok {
			return max(doneTime, w.Start-paddingBefore)
		}
		return doneTime + standaloneFallback
	}
}

func firstWordAfter(words []model.Word, t float64) (model.Word, bool) {
	for _, w := range words {
		if w.Start > t {
			return w, true
		}
	}
	return model.Word{}, false
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

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
