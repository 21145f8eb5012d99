// Package render turns trace steps into static SVG frames. Rendering is a
// pure function of the step's declared fields: no algorithmic logic, no
// mutation of the step. Unsupported structure kinds degrade to a labeled
// placeholder instead of failing; tree and graph rendering is explicitly
// unimplemented and kept that way (see Unsupported on Frame).
package render

import (
	"html"

	"algolens/internal/trace"
)

// Frame is one rendered visual snapshot.
type Frame struct {
	SVG string
	// Unsupported marks frames where at least one structure kind has no
	// real drawing and only a label placeholder was emitted.
	Unsupported bool
}

// Renderer draws one step at a time.
type Renderer interface {
	RenderStep(step trace.TraceStep) Frame
}

// SVGRenderer is the default Renderer.
type SVGRenderer struct {
	Width  int
	Height int
}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{Width: 640, Height: 360}
}

// RenderStep draws every data-structure snapshot of the step stacked
// vertically, with the step description as caption. An empty snapshot list
// renders a placeholder frame, never an error.
func (r *SVGRenderer) RenderStep(step trace.TraceStep) Frame {
	doc := newSVGDoc(r.Width, r.Height)
	doc.caption(html.EscapeString(step.Description))

	if len(step.DataStructures) == 0 {
		doc.placeholder("nothing to visualize for this step")
		return Frame{SVG: doc.String()}
	}

	unsupported := false
	bandHeight := (r.Height - captionHeight) / len(step.DataStructures)
	for i, ds := range step.DataStructures {
		top := captionHeight + i*bandHeight
		switch ds.Kind {
		case trace.KindArray:
			doc.arrayBars(ds, top, bandHeight)
		case trace.KindQueue, trace.KindStack, trace.KindLinkedList:
			doc.cellRow(ds, top, bandHeight)
		case trace.KindTree, trace.KindGraph:
			// Label-only stub, documented unimplemented behavior.
			doc.unimplemented(ds, top, bandHeight)
			unsupported = true
		default:
			doc.unimplemented(ds, top, bandHeight)
			unsupported = true
		}
	}
	return Frame{SVG: doc.String(), Unsupported: unsupported}
}
