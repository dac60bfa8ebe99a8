// Package fcpxml defines the subset of the Final Cut Pro XML interchange
// schema needed for a cuts-only (no transitions, no titles, no effects)
// timeline: one asset per clip, one spine of asset-clips. Every element
// is a tagged struct marshaled with xml.MarshalIndent, never built by
// string templating, matching how the wider fcpxml ecosystem is
// conventionally produced in Go.
package fcpxml

import "encoding/xml"

// FCPXML is the document root.
type FCPXML struct {
	XMLName   xml.Name  `xml:"fcpxml"`
	Version   string    `xml:"version,attr"`
	Resources Resources `xml:"resources"`
	Library   Library   `xml:"library"`
}

// Resources holds every format and asset referenced by the timeline.
type Resources struct {
	Formats []Format `xml:"format"`
	Assets  []Asset  `xml:"asset,omitempty"`
}

// Format declares a frame rate/resolution combination. r1 is always the
// project's FFVideoFormat1080p30 row; Build emits no other format row,
// whatever a source asset's native frame rate.
type Format struct {
	ID            string `xml:"id,attr"`
	Name          string `xml:"name,attr,omitempty"`
	FrameDuration string `xml:"frameDuration,attr,omitempty"`
	Width         string `xml:"width,attr,omitempty"`
	Height        string `xml:"height,attr,omitempty"`
}

// Asset is one source media file backing one or more asset-clips.
type Asset struct {
	ID       string   `xml:"id,attr"`
	Name     string   `xml:"name,attr"`
	UID      string   `xml:"uid,attr"`
	Start    string   `xml:"start,attr"`
	Duration string   `xml:"duration,attr"`
	HasVideo string   `xml:"hasVideo,attr,omitempty"`
	HasAudio string   `xml:"hasAudio,attr,omitempty"`
	Format   string   `xml:"format,attr,omitempty"`
	MediaRep MediaRep `xml:"media-rep"`
}

// MediaRep points an Asset at its file on disk.
type MediaRep struct {
	Kind string `xml:"kind,attr"`
	Sig  string `xml:"sig,attr"`
	Src  string `xml:"src,attr"`
}

// Library is the top-level container an NLE opens.
type Library struct {
	Events []Event `xml:"event"`
}

// Event groups one or more Projects, matching a Resolve/FCP bin.
type Event struct {
	Name     string    `xml:"name,attr"`
	Projects []Project `xml:"project"`
}

// Project holds the single Sequence this exporter ever emits.
type Project struct {
	Name      string     `xml:"name,attr"`
	Sequences []Sequence `xml:"sequence"`
}

// Sequence carries the project-wide format reference and the Spine.
type Sequence struct {
	Format   string `xml:"format,attr"`
	Duration string `xml:"duration,attr"`
	TCStart  string `xml:"tcStart,attr"`
	TCFormat string `xml:"tcFormat,attr"`
	Spine    Spine  `xml:"spine"`
}

// Spine is the ordered list of clips on the timeline. It can hold Gap
// items, but Build places clips back to back and never adds one, so
// timeline position does not follow source time across non-contiguous
// segments.
type Spine struct {
	Items []SpineItem `xml:"-"`
}

// SpineItem is satisfied by AssetClip and Gap; it lets Spine marshal a
// single chronologically ordered child list without a second type
// switch at every call site.
type SpineItem interface {
	spineItem()
}

// MarshalXML writes each spine child in insertion order, since
// encoding/xml cannot interleave two different element types from two
// separate slice fields.
func (s Spine) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name.Local = "spine"
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, item := range s.Items {
		if err := e.Encode(item); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// AssetClip places one Segment's worth of source material on the spine.
type AssetClip struct {
	XMLName  xml.Name `xml:"asset-clip"`
	Ref      string   `xml:"ref,attr"`
	Offset   string   `xml:"offset,attr"`
	Name     string   `xml:"name,attr"`
	Start    string   `xml:"start,attr"`
	Duration string   `xml:"duration,attr"`
	Note     *Note    `xml:"note,omitempty"`
}

func (AssetClip) spineItem() {}

// Gap represents time on the timeline with no source material, used
// only if a caller explicitly asks for gaps to be preserved instead of
// collapsed (the default cuts-only export never emits one).
type Gap struct {
	XMLName  xml.Name `xml:"gap"`
	Offset   string   `xml:"offset,attr"`
	Duration string   `xml:"duration,attr"`
}

func (Gap) spineItem() {}

// Note carries the free-form metadata (scene/take/topic/segment type) this
// exporter attaches to a clip whose note text is non-empty, since the
// cuts-only schema has no first-class field for it.
type Note struct {
	Text string `xml:",chardata"`
}
