package tracegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"algolens/internal/trace"
)

// maxSearchIterations defensively bounds the narrated binary search. The
// extracted arrays are tiny, so the cap never fires for honest input; it
// guards against pathological literals.
const maxSearchIterations = 5

// generateSearching runs a real binary search over the extracted (or
// default) array and emits one comparison step per iteration, then a
// terminal FOUND/NOT_FOUND step. foundIndex is -1 on a miss.
func (g *Generator) generateSearching(source, input string) []trace.TraceStep {
	arr, ok := extractIntArray(source)
	if !ok || len(arr) == 0 {
		arr = append([]int(nil), defaultSearchArray...)
	}
	sort.Ints(arr)

	target, ok := extractTarget(source)
	if !ok {
		if n, err := strconv.Atoi(strings.TrimSpace(input)); err == nil {
			target = n
		} else {
			target = defaultSearchTarget
		}
	}

	steps := []trace.TraceStep{
		g.step(trace.TraceStep{
			Line:        1,
			LineText:    fmt.Sprintf("binarySearch(%v, %d)", arr, target),
			Description: fmt.Sprintf("Searching for %d in sorted array of %d elements", target, len(arr)),
			Action:      trace.ActionInit,
			Variables:   map[string]any{"arr": arr, "target": target},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("arr", arr).WithBounds(0, len(arr)-1),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"arr": arr, "target": target},
				CallStack: []string{"binarySearch(arr, target)"},
			},
		}),
	}

	left, right := 0, len(arr)-1
	foundIndex := -1
	for i := 0; left <= right && i < maxSearchIterations; i++ {
		mid := (left + right) / 2
		var branch string
		switch {
		case arr[mid] == target:
			foundIndex = mid
			branch = fmt.Sprintf("arr[%d] == %d, match", mid, target)
		case arr[mid] < target:
			branch = fmt.Sprintf("arr[%d] = %d < %d, moving left bound to %d", mid, arr[mid], target, mid+1)
		default:
			branch = fmt.Sprintf("arr[%d] = %d > %d, moving right bound to %d", mid, arr[mid], target, mid-1)
		}
		steps = append(steps, g.step(trace.TraceStep{
			Line:        2,
			LineText:    "const mid = Math.floor((left + right) / 2)",
			Description: fmt.Sprintf("Comparing at mid %d: %s", mid, branch),
			Action:      trace.ActionCompare,
			Variables:   map[string]any{"left": left, "right": right, "mid": mid},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("arr", arr, mid).WithBounds(left, right).WithCurrent(mid),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"left": left, "right": right, "mid": mid},
				CallStack: []string{"binarySearch(arr, target)"},
			},
		}))
		if foundIndex >= 0 {
			break
		}
		if arr[mid] < target {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}

	if foundIndex >= 0 {
		steps = append(steps, g.step(trace.TraceStep{
			Line:        3,
			LineText:    "return mid",
			Description: fmt.Sprintf("Found %d at index %d", target, foundIndex),
			Action:      trace.ActionFound,
			Variables:   map[string]any{"found": true, "foundIndex": foundIndex},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("arr", arr, foundIndex),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"foundIndex": foundIndex},
				CallStack: []string{"binarySearch(arr, target)"},
			},
		}))
	} else {
		steps = append(steps, g.step(trace.TraceStep{
			Line:        4,
			LineText:    "return -1",
			Description: fmt.Sprintf("%d is not in the array, bounds exhausted", target),
			Action:      trace.ActionNotFound,
			Variables:   map[string]any{"found": false, "foundIndex": -1},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("arr", arr),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"foundIndex": -1},
				CallStack: []string{"binarySearch(arr, target)"},
			},
		}))
	}
	return steps
}
