// Package analysis discovers footage in a directory, parses whatever
// transcripts already exist on disk, and assembles the model.ClipAnalysis
// values the rough-cut engine and marker detector operate on.
package analysis

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"roughcut/internal/marker"
	"roughcut/internal/model"
	"roughcut/internal/rclog"
	"roughcut/internal/transcribe"
)

var videoExtensions = map[string]bool{
	".mov": true, ".mp4": true, ".mxf": true,
}

// Discover walks footageDir recursively for video files, preferring each
// clip's normalized variant over its original when both exist (a
// "_normalized" suffix marks loudness-matched output from an earlier
// pass), per spec's filename-convention rules.
func Discover(footageDir string) ([]string, error) {
	normalized := make(map[string]string)
	original := make(map[string]string)

	err := filepath.WalkDir(footageDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !videoExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		base := normalizeBaseName(stem)
		if strings.Contains(strings.ToLower(stem), "_normalized") {
			if _, ok := normalized[base]; !ok {
				normalized[base] = path
			}
		} else if _, ok := original[base]; !ok {
			original[base] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var files []string
	for base, path := range normalized {
		files = append(files, path)
		seen[base] = true
	}
	for base, path := range original {
		if !seen[base] {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func normalizeBaseName(stem string) string {
	return strings.ReplaceAll(stem, "_normalized", "")
}

// Analyzer loads clip metadata, transcripts, and audio markers off disk.
type Analyzer struct {
	Markers *marker.Detector
	Logger  *rclog.Logger
}

// New builds an Analyzer. A nil logger is replaced with a discarding one.
func New(logger *rclog.Logger) *Analyzer {
	if logger == nil {
		logger = rclog.Discard()
	}
	return &Analyzer{Markers: marker.New(logger), Logger: logger}
}

// AnalyzeClip loads duration, filename-convention metadata, and any
// transcript already on disk for one video file. It never transcribes:
// callers needing a fresh transcript should run internal/transcribe
// first and call AnalyzeClip again.
func (a *Analyzer) AnalyzeClip(ctx context.Context, videoPath string) (model.ClipAnalysis, error) {
	duration, err := transcribe.ProbeDuration(ctx, videoPath)
	if err != nil {
		a.Logger.Warn("probe duration failed", "file", videoPath, "err", err)
		duration = 0
	}

	analysis := model.ClipAnalysis{
		FilePath: videoPath,
		Duration: duration,
	}
	applyFilenameConvention(&analysis, videoPath)

	srtPath := srtPathFor(videoPath)
	if srtPath != "" {
		entries, err := transcribe.ParseSRTFile(srtPath)
		if err != nil {
			return analysis, err
		}
		analysis.TranscriptPath = srtPath
		analysis.Entries = entries
		analysis.HasSpeech = len(entries) > 0
	}

	jsonPath := jsonTranscriptPathFor(videoPath)
	if jsonPath != "" {
		analysis.TranscriptJSONPath = jsonPath
		words, err := wordsFromJSON(jsonPath)
		if err == nil && len(words) > 0 {
			analysis.Markers = a.Markers.Detect(words, videoPath)
		}
	}

	return analysis, nil
}

func srtPathFor(videoPath string) string {
	candidate := withExt(videoPath, ".srt")
	if fileExists(candidate) {
		return candidate
	}
	return ""
}

func jsonTranscriptPathFor(videoPath string) string {
	stem := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	for _, candidate := range []string{stem + "_transcript.json", stem + ".json"} {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func wordsFromJSON(path string) ([]model.Word, error) {
	words, _, _, _, err := transcribe.LoadWords(path)
	return words, err
}

// filename-convention regexes, ported from the original's
// _parse_filename_convention.
var (
	stepPattern      = regexp.MustCompile(`STEP(\d+)`)
	stepPrefixPattern = regexp.MustCompile(`^S(\d+)_`)
	topicPrefixPattern = regexp.MustCompile(`^(SETUP|CONFIG|DEMO|INTRO|OUTRO|EXPLAIN|TROUBLESHOOT|ADVANCED)_`)
	topicInfixPattern  = regexp.MustCompile(`_(SETUP|CONFIG|DEMO|INTRO|OUTRO|EXPLAIN|TROUBLESHOOT|ADVANCED)_`)
	takeParenPattern   = regexp.MustCompile(`\((\d+)\)`)
	takeSuffixNPattern = regexp.MustCompile(`_TAKE(\d+)`)

	hookFlowPatterns = []struct {
		flowType string
		pattern  *regexp.Regexp
	}{
		{"CH", regexp.MustCompile(`\bHOOK_CH\b|\bCH_HOOK\b|_CH_|^CH_`)},
		{"AH", regexp.MustCompile(`\bHOOK_AH\b|\bAH_HOOK\b|_AH_|^AH_`)},
		{"PSH", regexp.MustCompile(`\bHOOK_PSH\b|\bPSH_HOOK\b|_PSH_|^PSH_`)},
		{"TPH", regexp.MustCompile(`\bHOOK_TPH\b|\bTPH_HOOK\b|_TPH_|^TPH_`)},
		{"COH", regexp.MustCompile(`\bHOOK_COH\b|\bCOH_HOOK\b|_COH_|^COH_`)},
		{"VH", regexp.MustCompile(`\bHOOK_VH\b|\bVH_HOOK\b|_VH_|^VH_`)},
		{"SH", regexp.MustCompile(`\bHOOK_SH\b|\bSH_HOOK\b|_SH_|^SH_`)},
		{"QH", regexp.MustCompile(`\bHOOK_QH\b|\bQH_HOOK\b|_QH_|^QH_`)},
		{"VALUE_PROP", regexp.MustCompile(`\bHOOK_VP\b|\bVP_HOOK\b|_VP_|^VP_|VALUE_PROP`)},
		{"REVEAL", regexp.MustCompile(`\bHOOK_REVEAL\b|_REVEAL_|^REVEAL_`)},
		{"PROMISE", regexp.MustCompile(`\bHOOK_PROMISE\b|_PROMISE_|^PROMISE_`)},
	}
)

func applyFilenameConvention(a *model.ClipAnalysis, videoPath string) {
	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	upper := strings.ToUpper(stem)
	lower := strings.ToLower(stem)

	if strings.HasPrefix(upper, "SCREEN_") || strings.HasPrefix(upper, "SCR_") ||
		strings.Contains(lower, "screen") || strings.Contains(lower, "recording") || strings.Contains(lower, "capture") {
		a.IsScreenRecording = true
	}

	if m := stepPattern.FindStringSubmatch(upper); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			a.StepNumber = &n
		}
	} else if m := stepPrefixPattern.FindStringSubmatch(upper); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			a.StepNumber = &n
		}
	}

	if m := topicPrefixPattern.FindStringSubmatch(upper); m != nil {
		a.TopicTag = strings.ToLower(m[1])
	} else if m := topicInfixPattern.FindStringSubmatch(upper); m != nil {
		a.TopicTag = strings.ToLower(m[1])
	}

	if strings.HasPrefix(upper, "HOOK_") || strings.HasPrefix(upper, "OPENING_") || strings.Contains(lower, "hook") {
		a.IsHook = true
	}
	for _, hf := range hookFlowPatterns {
		if hf.pattern.MatchString(upper) {
			a.HookFlowType = hf.flowType
			a.IsHook = true
			break
		}
	}

	if strings.HasPrefix(upper, "CTA_") || strings.HasPrefix(upper, "OUTRO_") || strings.Contains(lower, "cta") {
		a.IsCTA = true
	}
	if strings.HasPrefix(upper, "MISTAKE_") || strings.HasPrefix(upper, "DELETE_") || strings.HasPrefix(upper, "RETAKE_") ||
		strings.Contains(lower, "mistake") || strings.Contains(lower, "delete") {
		a.IsMistake = true
	}

	if m := takeParenPattern.FindStringSubmatch(stem); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			a.TakeNumber = &n
		}
	} else if m := takeSuffixNPattern.FindStringSubmatch(upper); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			a.TakeNumber = &n
		}
	}

	a.ShotType = inferShotType(lower, a.Duration)
}

func inferShotType(nameLower string, duration float64) string {
	switch {
	case strings.Contains(nameLower, "wide") || strings.Contains(nameLower, "establishing"):
		return "wide"
	case strings.Contains(nameLower, "close") || strings.Contains(nameLower, "cu"):
		return "close"
	case strings.Contains(nameLower, "medium") || strings.Contains(nameLower, "mc"):
		return "medium"
	case strings.Contains(nameLower, "broll") || strings.Contains(nameLower, "b-roll"):
		return "broll"
	case duration > 0 && duration < 10:
		return "broll"
	default:
		return "medium"
	}
}
