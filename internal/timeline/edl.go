// Package timeline serializes a RoughCutPlan as an EDL or FCPXML file
// on disk, and writes the parallel removed-footage report.
package timeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"roughcut/internal/model"
)

const editFrameRate = 30.0

// WriteEDL renders plan as a cuts-only EDL. preHandle/postHandle widen
// each segment's source range before the record timeline accumulates
// their durations, per spec section 4.7.
func WriteEDL(title string, segments []model.Segment, clipDurations map[string]float64, preHandle, postHandle float64) string {
	var b strings.Builder
	b.WriteString("TITLE: " + title + "\n")
	b.WriteString("FCM: NON-DROP FRAME\n\n")

	var recordTime float64
	for i, seg := range segments {
		clipDuration := clipDurations[seg.SourceFile]

		srcIn := seg.StartTime - preHandle
		if srcIn < 0 {
			srcIn = 0
		}
		srcOut := seg.EndTime + postHandle
		if clipDuration > 0 && srcOut > clipDuration {
			srcOut = clipDuration
		}
		widenedDuration := srcOut - srcIn

		recIn := recordTime
		recOut := recordTime + widenedDuration
		recordTime = recOut

		clipName := clipNameStem(seg.SourceFile)

		fmt.Fprintf(&b, "%03d  %-8s V     C        %s %s %s %s\n",
			i+1, clipName, toTimecode(srcIn), toTimecode(srcOut), toTimecode(recIn), toTimecode(recOut))
		b.WriteString("* FROM CLIP NAME: " + filepath.Base(seg.SourceFile) + "\n")
		if seg.Text != "" {
			b.WriteString("* COMMENT: " + oneLine(seg.Text) + "\n")
		}
		if seg.Topic != "" {
			b.WriteString("* TOPIC: " + seg.Topic + "\n")
		}
		if seg.SegmentType != "" {
			b.WriteString("* TYPE: " + seg.SegmentType + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WriteRemovedEDL renders the parallel removed-footage report: every
// RemovedSegment as a comment line carrying its reason and score,
// rather than a cuttable event (nothing here is meant to be imported
// as a timeline).
func WriteRemovedEDL(title string, removed []model.RemovedSegment) string {
	var b strings.Builder
	b.WriteString("TITLE: " + title + " (REMOVED FOOTAGE)\n")
	b.WriteString("FCM: NON-DROP FRAME\n\n")

	for i, r := range removed {
		fmt.Fprintf(&b, "%03d  %-8s V     C        %s %s %s %s\n",
			i+1, clipNameStem(r.Segment.SourceFile),
			toTimecode(r.Segment.StartTime), toTimecode(r.Segment.EndTime),
			toTimecode(0), toTimecode(r.Segment.Duration()))
		b.WriteString("* FROM CLIP NAME: " + filepath.Base(r.Segment.SourceFile) + "\n")
		fmt.Fprintf(&b, "* REASON: %s (score %.2f)\n", r.Reason, r.OriginalScore)
		if r.Segment.Text != "" {
			b.WriteString("* COMMENT: " + oneLine(r.Segment.Text) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func clipNameStem(sourceFile string) string {
	name := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	if len(name) > 8 {
		name = name[:8]
	}
	return name
}

func oneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// toTimecode renders a second count as HH:MM:SS:FF at 30fps non-drop.
func toTimecode(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalFrames := int64(seconds*editFrameRate + 0.5)
	frames := totalFrames % int64(editFrameRate)
	totalSeconds := totalFrames / int64(editFrameRate)
	secs := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	mins := totalMinutes % 60
	hours := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, mins, secs, frames)
}
