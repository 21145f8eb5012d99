package render

import (
	"fmt"
	"html"
	"strings"

	"algolens/internal/trace"
)

const captionHeight = 32

// Bar/cell palette. Highlight beats pivot beats bounds beats default.
const (
	colorDefault   = "#4f46e5"
	colorHighlight = "#f59e0b"
	colorPivot     = "#ef4444"
	colorCurrent   = "#10b981"
	colorBound     = "#94a3b8"
)

type svgDoc struct {
	b      strings.Builder
	width  int
	height int
}

func newSVGDoc(width, height int) *svgDoc {
	d := &svgDoc{width: width, height: height}
	fmt.Fprintf(&d.b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	return d
}

func (d *svgDoc) String() string {
	return d.b.String() + "</svg>"
}

func (d *svgDoc) caption(escaped string) {
	fmt.Fprintf(&d.b,
		`<text x="8" y="20" font-family="monospace" font-size="13">%s</text>`, escaped)
}

func (d *svgDoc) placeholder(msg string) {
	fmt.Fprintf(&d.b,
		`<rect x="8" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-dasharray="4 4"/>`,
		captionHeight+8, d.width-16, d.height-captionHeight-16, colorBound)
	fmt.Fprintf(&d.b,
		`<text x="%d" y="%d" text-anchor="middle" font-family="monospace" font-size="12" fill="%s">%s</text>`,
		d.width/2, d.height/2, colorBound, html.EscapeString(msg))
}

// arrayBars draws one bar per element, scaled to the band, with highlight
// metadata applied as fill colors and left/right bounds as dimming.
func (d *svgDoc) arrayBars(ds trace.DataStructureState, top, height int) {
	values := asInts(ds.Data)
	if len(values) == 0 {
		d.placeholder("empty array " + html.EscapeString(ds.Name))
		return
	}

	maxVal := 1
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	barSpace := d.width / len(values)
	barWidth := barSpace * 3 / 4
	usable := height - 24

	for i, v := range values {
		h := v * usable / maxVal
		if h < 2 {
			h = 2
		}
		x := i*barSpace + (barSpace-barWidth)/2
		y := top + usable - h
		fmt.Fprintf(&d.b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
			x, y, barWidth, h, barColor(ds, i))
		fmt.Fprintf(&d.b,
			`<text x="%d" y="%d" text-anchor="middle" font-family="monospace" font-size="11">%d</text>`,
			x+barWidth/2, top+usable+14, v)
	}
}

func barColor(ds trace.DataStructureState, i int) string {
	for _, h := range ds.Highlights {
		if h == i {
			return colorHighlight
		}
	}
	if ds.Pivot != nil && *ds.Pivot == i {
		return colorPivot
	}
	if ds.Current != nil && *ds.Current == i {
		return colorCurrent
	}
	if ds.Left != nil && ds.Right != nil && (i < *ds.Left || i > *ds.Right) {
		return colorBound
	}
	return colorDefault
}

// cellRow draws queue/stack/linked-list contents as a row of boxes.
func (d *svgDoc) cellRow(ds trace.DataStructureState, top, height int) {
	values := asInts(ds.Data)
	label := html.EscapeString(ds.Name)
	if len(values) == 0 {
		d.placeholder("empty " + string(ds.Kind) + " " + label)
		return
	}

	cell := 48
	y := top + (height-cell)/2
	for i, v := range values {
		x := 8 + i*(cell+4)
		fmt.Fprintf(&d.b,
			`<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="2"/>`,
			x, y, cell, cell, colorDefault)
		fmt.Fprintf(&d.b,
			`<text x="%d" y="%d" text-anchor="middle" font-family="monospace" font-size="14">%d</text>`,
			x+cell/2, y+cell/2+5, v)
	}
	fmt.Fprintf(&d.b,
		`<text x="8" y="%d" font-family="monospace" font-size="11" fill="%s">%s (%s)</text>`,
		y+cell+16, colorBound, label, ds.Kind)
}

// unimplemented renders the label-only stub used for tree and graph
// structures.
func (d *svgDoc) unimplemented(ds trace.DataStructureState, top, height int) {
	fmt.Fprintf(&d.b,
		`<text x="%d" y="%d" text-anchor="middle" font-family="monospace" font-size="12" fill="%s">%s visualization not implemented</text>`,
		d.width/2, top+height/2, colorBound, html.EscapeString(string(ds.Kind)))
}

// asInts normalizes the opaque payload: traces built in-process carry
// []int, while payloads reloaded from JSON arrive as []any of float64.
func asInts(data any) []int {
	switch v := data.(type) {
	case []int:
		return v
	case []float64:
		out := make([]int, len(v))
		for i, f := range v {
			out[i] = int(f)
		}
		return out
	case []any:
		out := make([]int, 0, len(v))
		for _, e := range v {
			switch n := e.(type) {
			case int:
				out = append(out, n)
			case float64:
				out = append(out, int(n))
			}
		}
		return out
	default:
		return nil
	}
}
