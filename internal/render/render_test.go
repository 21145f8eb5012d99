package render

import (
	"strings"
	"testing"

	"algolens/internal/trace"
)

func TestRenderStepEmptyStructuresPlaceholder(t *testing.T) {
	f := NewSVGRenderer().RenderStep(trace.TraceStep{Description: "plain line"})
	if f.Unsupported {
		t.Fatalf("placeholder frame marked unsupported")
	}
	if !strings.Contains(f.SVG, "nothing to visualize") {
		t.Fatalf("placeholder text missing from %q", f.SVG)
	}
	if !strings.HasPrefix(f.SVG, "<svg") || !strings.HasSuffix(f.SVG, "</svg>") {
		t.Fatalf("not a complete svg document")
	}
}

func TestRenderStepArrayBars(t *testing.T) {
	pivot := 2
	step := trace.TraceStep{
		Description: "partition",
		DataStructures: []trace.DataStructureState{
			{Kind: trace.KindArray, Name: "arr", Data: []int{3, 1, 4}, Pivot: &pivot},
		},
	}
	f := NewSVGRenderer().RenderStep(step)
	if f.Unsupported {
		t.Fatalf("array frame marked unsupported")
	}
	if strings.Count(f.SVG, "<rect") != 3 {
		t.Fatalf("want 3 bars, svg = %q", f.SVG)
	}
	if !strings.Contains(f.SVG, colorPivot) {
		t.Fatalf("pivot color missing")
	}
}

func TestRenderStepTreeIsLabelOnlyStub(t *testing.T) {
	step := trace.TraceStep{
		DataStructures: []trace.DataStructureState{
			{Kind: trace.KindTree, Name: "root", Data: nil},
		},
	}
	f := NewSVGRenderer().RenderStep(step)
	if !f.Unsupported {
		t.Fatalf("tree frame not marked unsupported")
	}
	if !strings.Contains(f.SVG, "tree visualization not implemented") {
		t.Fatalf("stub label missing from %q", f.SVG)
	}
}

func TestRenderStepDoesNotMutate(t *testing.T) {
	data := []int{5, 2}
	step := trace.TraceStep{
		DataStructures: []trace.DataStructureState{
			{Kind: trace.KindQueue, Name: "q", Data: data},
		},
	}
	NewSVGRenderer().RenderStep(step)
	if data[0] != 5 || data[1] != 2 {
		t.Fatalf("renderer mutated step data: %v", data)
	}
}

func TestAsIntsJSONPayload(t *testing.T) {
	got := asInts([]any{float64(1), float64(2), 3})
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("asInts = %v", got)
	}
	if asInts("nope") != nil {
		t.Fatalf("asInts on junk should be nil")
	}
}

func TestRenderStepEscapesDescription(t *testing.T) {
	f := NewSVGRenderer().RenderStep(trace.TraceStep{Description: `<script>`})
	if strings.Contains(f.SVG, "<script>") {
		t.Fatalf("description not escaped")
	}
}
