package tracegen

import (
	"fmt"
	"strings"

	"algolens/internal/trace"
)

// generateGeneric is the degraded walk for categories without a dedicated
// simulation (stack, tree, graph, recursion, dynamic-programming,
// unknown): one EXECUTE step per non-blank source line, no state tracked.
func (g *Generator) generateGeneric(source string) []trace.TraceStep {
	var steps []trace.TraceStep
	for i, line := range strings.Split(source, "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		steps = append(steps, g.step(trace.TraceStep{
			Line:        i + 1,
			LineText:    text,
			Description: fmt.Sprintf("Executing line %d", i+1),
			Action:      trace.ActionExecute,
			Memory:      trace.MemorySnapshot{CallStack: []string{"main"}},
		}))
	}
	if len(steps) == 0 {
		steps = append(steps, g.step(trace.TraceStep{
			Line:        0,
			LineText:    "",
			Description: "Empty source, nothing to execute",
			Action:      trace.ActionComplete,
		}))
	}
	return steps
}
