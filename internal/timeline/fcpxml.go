package timeline

import (
	"strconv"
	"strings"

	"roughcut/internal/fcpxml"
	"roughcut/internal/model"
)

// BuildFCPXML adapts a RoughCutPlan's segments into the fcpxml package's
// domain-independent ClipInput shape and marshals a cuts-only document.
func BuildFCPXML(projectName string, segments []model.Segment) ([]byte, error) {
	clips := make([]fcpxml.ClipInput, 0, len(segments))
	for _, seg := range segments {
		clips = append(clips, fcpxml.ClipInput{
			SourceFile: seg.SourceFile,
			StartTime:  seg.StartTime,
			EndTime:    seg.EndTime,
			Note:       segmentNote(seg),
		})
	}
	doc := fcpxml.Build(projectName, clips)
	return fcpxml.Marshal(doc)
}

// segmentNote packs scene/take/topic/type metadata into the single
// <note> child the cuts-only schema makes room for.
func segmentNote(seg model.Segment) string {
	var parts []string
	if seg.SceneNumber != nil {
		parts = append(parts, "scene "+formatFloat(*seg.SceneNumber))
	}
	if seg.Take != nil {
		parts = append(parts, "take "+strconv.Itoa(*seg.Take))
	}
	if seg.Topic != "" {
		parts = append(parts, "topic "+seg.Topic)
	}
	if seg.SegmentType != "" {
		parts = append(parts, seg.SegmentType)
	}
	return strings.Join(parts, ", ")
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.Itoa(int(f))
	}
	s := strconv.FormatFloat(f, 'f', 2, 64)
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
