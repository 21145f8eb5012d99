package tracegen

import (
	"fmt"
	"sort"

	"algolens/internal/trace"
)

// generateSorting fabricates a single quicksort-style partition walk.
//
// The pivot strategy scanned from the source only decides which index the
// narration reports as pivot. The partition itself is computed by real
// comparison against that pivot's value — with the historical quirk that
// elements equal to the pivot are dropped from both partitions. The final
// step's array is sorted(left) + pivot + sorted(right), computed
// independently of the recursion narration, so the narrated partial state
// can diverge from the final array when duplicates of the pivot existed.
// This mirrors the reference behavior on purpose; do not "fix" it here
// without changing the pinned tests.
func (g *Generator) generateSorting(source string) []trace.TraceStep {
	arr, ok := extractIntArray(source)
	if !ok || len(arr) == 0 {
		arr = append([]int(nil), defaultSortArray...)
	}

	strategy := detectPivotStrategy(source)
	pivotIdx := strategy.index(len(arr))
	pivotVal := arr[pivotIdx]

	var left, right []int
	for _, v := range arr {
		switch {
		case v < pivotVal:
			left = append(left, v)
		case v > pivotVal:
			right = append(right, v)
		}
	}

	sortedLeft := append([]int(nil), left...)
	sortedRight := append([]int(nil), right...)
	sort.Ints(sortedLeft)
	sort.Ints(sortedRight)
	final := make([]int, 0, len(sortedLeft)+1+len(sortedRight))
	final = append(final, sortedLeft...)
	final = append(final, pivotVal)
	final = append(final, sortedRight...)

	steps := []trace.TraceStep{
		g.step(trace.TraceStep{
			Line:        1,
			LineText:    fmt.Sprintf("const arr = %v", arr),
			Description: fmt.Sprintf("Initialized array with %d elements", len(arr)),
			Action:      trace.ActionInit,
			Variables:   map[string]any{"arr": arr},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("arr", arr),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"arr": arr},
				CallStack: []string{"quickSort(arr)"},
			},
		}),
		g.step(trace.TraceStep{
			Line:        2,
			LineText:    fmt.Sprintf("const pivot = arr[%d]", pivotIdx),
			Description: fmt.Sprintf("Selected pivot %d at index %d (%s-element strategy)", pivotVal, pivotIdx, strategy),
			Action:      trace.ActionSelectPivot,
			Variables:   map[string]any{"pivot": pivotVal, "pivotIndex": pivotIdx},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("arr", arr, pivotIdx).WithPivot(pivotIdx),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"arr": arr, "pivot": pivotVal},
				CallStack: []string{"quickSort(arr)"},
			},
		}),
		g.step(trace.TraceStep{
			Line:        3,
			LineText:    "const [left, right] = partition(arr, pivot)",
			Description: fmt.Sprintf("Partitioned around %d: left %v, right %v", pivotVal, left, right),
			Action:      trace.ActionPartition,
			Variables:   map[string]any{"left": left, "right": right},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("left", left),
				trace.ArrayState("right", right),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"left": left, "right": right},
				CallStack: []string{"quickSort(arr)", "partition(arr, pivot)"},
			},
		}),
	}

	if len(left) > 1 {
		steps = append(steps, g.step(trace.TraceStep{
			Line:        4,
			LineText:    "quickSort(left)",
			Description: fmt.Sprintf("Recursively sorting left partition %v", left),
			Action:      trace.ActionRecurse,
			Variables:   map[string]any{"left": left},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("left", left),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"left": left},
				CallStack: []string{"quickSort(arr)", "quickSort(left)"},
			},
		}))
	}
	if len(right) > 1 {
		steps = append(steps, g.step(trace.TraceStep{
			Line:        5,
			LineText:    "quickSort(right)",
			Description: fmt.Sprintf("Recursively sorting right partition %v", right),
			Action:      trace.ActionRecurse,
			Variables:   map[string]any{"right": right},
			DataStructures: []trace.DataStructureState{
				trace.ArrayState("right", right),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"right": right},
				CallStack: []string{"quickSort(arr)", "quickSort(right)"},
			},
		}))
	}

	steps = append(steps, g.step(trace.TraceStep{
		Line:        6,
		LineText:    "return [...left, pivot, ...right]",
		Description: fmt.Sprintf("Array fully sorted: %v", final),
		Action:      trace.ActionComplete,
		Variables:   map[string]any{"sortedArray": final},
		DataStructures: []trace.DataStructureState{
			trace.ArrayState("arr", final),
		},
		Memory: trace.MemorySnapshot{
			Heap:      map[string]any{"sortedArray": final},
			CallStack: []string{"quickSort(arr)"},
		},
	}))
	return steps
}
