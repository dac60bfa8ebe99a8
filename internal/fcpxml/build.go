package fcpxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	frameRate     = 30000 // N/30000s rational time base, 30fps drop-frame-free
	frameDuration = "1001/30000s"
)

// ClipInput is the caller-facing description of one timeline clip;
// Marshal never sees a model.Segment directly, keeping this package
// independent of the rough-cut domain model.
type ClipInput struct {
	SourceFile string
	StartTime  float64
	EndTime    float64
	Note       string
}

// seconds converts a float64 second count to the project's rational
// time unit, e.g. 1.5 -> "45000/30000s".
func seconds(s float64) string {
	return fmt.Sprintf("%d/%ds", int64(s*float64(frameRate)), frameRate)
}

// Build assembles a single-sequence FCPXML document titled projectName
// out of clips, in timeline order.
func Build(projectName string, clips []ClipInput) FCPXML {
	assets := make([]Asset, 0, len(clips))
	assetByFile := make(map[string]string)
	items := make([]SpineItem, 0, len(clips))

	var offset float64
	for i, c := range clips {
		ref, ok := assetByFile[c.SourceFile]
		if !ok {
			ref = fmt.Sprintf("r%d", len(assets)+2) // r1 is reserved for the format
			assetByFile[c.SourceFile] = ref
			assets = append(assets, Asset{
				ID:       ref,
				Name:     assetName(c.SourceFile),
				UID:      fmt.Sprintf("ASSET-%d-%s", i, assetName(c.SourceFile)),
				Start:    "0s",
				Duration: seconds(c.EndTime),
				HasVideo: "1",
				HasAudio: "1",
				Format:   "r1",
				MediaRep: MediaRep{Kind: "original-media", Sig: ref, Src: "file://" + c.SourceFile},
			})
		}

		dur := c.EndTime - c.StartTime
		var note *Note
		if c.Note != "" {
			note = &Note{Text: c.Note}
		}
		items = append(items, AssetClip{
			Ref:      ref,
			Offset:   seconds(offset),
			Name:     assetName(c.SourceFile),
			Start:    seconds(c.StartTime),
			Duration: seconds(dur),
			Note:     note,
		})
		offset += dur
	}

	return FCPXML{
		Version: "1.9",
		Resources: Resources{
			Formats: []Format{{ID: "r1", Name: "FFVideoFormat1080p30", FrameDuration: frameDuration, Width: "1920", Height: "1080"}},
			Assets:  assets,
		},
		Library: Library{
			Events: []Event{{
				Name: projectName,
				Projects: []Project{{
					Name: projectName,
					Sequences: []Sequence{{
						Format:   "r1",
						Duration: seconds(offset),
						TCStart:  "0s",
						TCFormat: "NDF",
						Spine:    Spine{Items: items},
					}},
				}},
			}},
		},
	}
}

func assetName(path string) string {
	name := path
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// Marshal renders doc as an indented, UTF-8 FCPXML document with the
// required DOCTYPE preamble.
func Marshal(doc FCPXML) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("fcpxml: marshal: %w", err)
	}
	var out strings.Builder
	out.WriteString(xml.Header)
	out.WriteString(`<!DOCTYPE fcpxml>` + "\n")
	out.Write(body)
	out.WriteByte('\n')
	return []byte(out.String()), nil
}
