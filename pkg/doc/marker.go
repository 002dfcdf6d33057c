// marker.go segments a document into typed regions using marker paragraphs.
package doc

import (
	"fmt"
	"strings"
)

// RegionKind classifies a contiguous span of paragraphs.
type RegionKind int

const (
	RegionUnmarked   RegionKind = iota // no enclosing markers
	RegionPageCopy                     // between start_page_copy / end_page_copy
	RegionDisclaimer                   // between start_disclaimer / end_disclaimer
)

// String returns the kind's display name.
func (k RegionKind) String() string {
	switch k {
	case RegionPageCopy:
		return "page_copy"
	case RegionDisclaimer:
		return "disclaimer"
	default:
		return "unmarked"
	}
}

// Region is a contiguous half-open range [Start, End) of paragraph indices in
// the segmented document, tagged with a kind. Regions produced by Segment are
// non-overlapping and cover every paragraph.
type Region struct {
	Kind  RegionKind
	Start int // first paragraph index, inclusive
	End   int // last paragraph index, exclusive
}

// Contains reports whether the paragraph index falls inside the region.
func (r Region) Contains(idx int) bool {
	return idx >= r.Start && idx < r.End
}

// RemovedMarker records a marker paragraph stripped during segmentation.
type RemovedMarker struct {
	Index int    // paragraph index in the original document
	Text  string // the marker text as written
}

// SegmentResult is the output of Segment: the document with marker paragraphs
// stripped, the regions covering all remaining paragraphs, any structural
// warnings, and the markers that were removed.
type SegmentResult struct {
	Doc      *Document
	Regions  []Region
	Warnings []string
	Removed  []RemovedMarker
}

// AddWarning records a structural warning. Unbalanced markers are recoverable:
// the document is still segmented and processing continues.
func (sr *SegmentResult) AddWarning(format string, args ...interface{}) {
	sr.Warnings = append(sr.Warnings, fmt.Sprintf(format, args...))
}

// Marker paragraph text, matched case-insensitively against trimmed text.
const (
	markerStartPageCopy   = "start_page_copy"
	markerEndPageCopy     = "end_page_copy"
	markerStartDisclaimer = "start_disclaimer"
	markerEndDisclaimer   = "end_disclaimer"
)

// markerFor returns the region kind a marker opens or closes, and whether the
// trimmed lowercase text is a marker at all.
func markerFor(text string) (kind RegionKind, isStart bool, ok bool) {
	switch text {
	case markerStartPageCopy:
		return RegionPageCopy, true, true
	case markerEndPageCopy:
		return RegionPageCopy, false, true
	case markerStartDisclaimer:
		return RegionDisclaimer, true, true
	case markerEndDisclaimer:
		return RegionDisclaimer, false, true
	}
	return RegionUnmarked, false, false
}

// Segment scans the document for marker paragraphs and splits it into ordered,
// non-overlapping regions. Markers do not nest; at most one region is open at
// a time. Unmarked paragraphs before, between, or after marked regions form
// RegionUnmarked regions.
//
// Unbalanced markers never abort segmentation: a stray end marker or a start
// marker left open at document end closes the dangling region at the nearest
// boundary and surfaces a warning.
func Segment(d *Document) *SegmentResult {
	res := &SegmentResult{Doc: &Document{}}

	open := RegionUnmarked // kind of the currently open marked region
	opened := false
	regionStart := 0 // start index (in the stripped doc) of the pending region

	flush := func(kind RegionKind, end int) {
		if end > regionStart {
			res.Regions = append(res.Regions, Region{Kind: kind, Start: regionStart, End: end})
		}
		regionStart = end
	}

	for i := range d.Paragraphs {
		para := &d.Paragraphs[i]
		trimmed := strings.ToLower(strings.TrimSpace(para.Text()))

		kind, isStart, ok := markerFor(trimmed)
		if !ok {
			res.Doc.Paragraphs = append(res.Doc.Paragraphs, para.Clone())
			continue
		}

		res.Removed = append(res.Removed, RemovedMarker{Index: i, Text: strings.TrimSpace(para.Text())})
		here := len(res.Doc.Paragraphs)

		switch {
		case isStart && !opened:
			flush(RegionUnmarked, here)
			open, opened = kind, true

		case isStart && opened:
			// A start marker while another region is open: close the open
			// region at this marker and begin the new one.
			res.AddWarning("unclosed %s region before %s marker", open, trimmed)
			flush(open, here)
			open, opened = kind, true

		case !isStart && opened && kind == open:
			flush(open, here)
			opened = false

		case !isStart && opened && kind != open:
			res.AddWarning("end marker %s closes open %s region", trimmed, open)
			flush(open, here)
			opened = false

		default: // end marker with nothing open
			res.AddWarning("end marker %s has no matching start", trimmed)
			flush(RegionUnmarked, here)
		}
	}

	// Close whatever is still pending at the document boundary.
	end := len(res.Doc.Paragraphs)
	if opened {
		res.AddWarning("%s region not closed before end of document", open)
		flush(open, end)
	} else {
		flush(RegionUnmarked, end)
	}

	return res
}

// WithDisclaimerMarkers returns a copy of the document with start_disclaimer
// and end_disclaimer marker paragraphs re-inserted around each disclaimer
// region. Written output stays segmentable: running the pipeline over its own
// output re-discovers the disclaimer regions and leaves them untouched.
func WithDisclaimerMarkers(d *Document, regions []Region) *Document {
	starts := make(map[int]bool)
	ends := make(map[int]bool)
	for _, r := range regions {
		if r.Kind == RegionDisclaimer {
			starts[r.Start] = true
			ends[r.End] = true
		}
	}

	out := &Document{}
	for i := range d.Paragraphs {
		if starts[i] {
			out.AddParagraph(markerStartDisclaimer, Format{})
		}
		out.Paragraphs = append(out.Paragraphs, d.Paragraphs[i].Clone())
		if ends[i+1] {
			out.AddParagraph(markerEndDisclaimer, Format{})
		}
	}
	return out
}

// RegionAt returns the region containing the paragraph index. The zero Region
// (RegionUnmarked) is returned when the index is out of range.
func (sr *SegmentResult) RegionAt(idx int) Region {
	for _, r := range sr.Regions {
		if r.Contains(idx) {
			return r
		}
	}
	return Region{Kind: RegionUnmarked}
}
