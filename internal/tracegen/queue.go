package tracegen

import (
	"fmt"

	"algolens/internal/trace"
)

// defaultQueueOps replays when the source contains no recognizable
// enqueue/dequeue calls.
var defaultQueueOps = []queueOp{
	{enqueue: true, value: 10, line: 1},
	{enqueue: true, value: 20, line: 2},
	{line: 3},
	{enqueue: true, value: 30, line: 4},
}

// generateQueue replays the extracted FIFO operations exactly: enqueue
// appends, dequeue removes from the front, one step per operation.
func (g *Generator) generateQueue(source string) []trace.TraceStep {
	ops := extractQueueOps(source)
	if len(ops) == 0 {
		ops = defaultQueueOps
	}

	var queue []int
	steps := make([]trace.TraceStep, 0, len(ops)+1)
	for _, op := range ops {
		if op.enqueue {
			queue = append(queue, op.value)
			steps = append(steps, g.step(trace.TraceStep{
				Line:        op.line,
				LineText:    fmt.Sprintf("queue.enqueue(%d)", op.value),
				Description: fmt.Sprintf("Enqueued %d, queue is now %v", op.value, queue),
				Action:      trace.ActionEnqueue,
				Variables:   map[string]any{"queue": append([]int(nil), queue...)},
				DataStructures: []trace.DataStructureState{
					trace.QueueState("queue", queue),
				},
				Memory: trace.MemorySnapshot{
					Heap:      map[string]any{"queue": append([]int(nil), queue...)},
					CallStack: []string{"main"},
				},
			}))
			continue
		}

		if len(queue) == 0 {
			steps = append(steps, g.step(trace.TraceStep{
				Line:        op.line,
				LineText:    "queue.dequeue()",
				Description: "Dequeue on empty queue, nothing removed",
				Action:      trace.ActionDequeue,
				DataStructures: []trace.DataStructureState{
					trace.QueueState("queue", queue),
				},
				Memory: trace.MemorySnapshot{CallStack: []string{"main"}},
			}))
			continue
		}
		removed := queue[0]
		queue = queue[1:]
		steps = append(steps, g.step(trace.TraceStep{
			Line:        op.line,
			LineText:    "queue.dequeue()",
			Description: fmt.Sprintf("Dequeued %d, queue is now %v", removed, queue),
			Action:      trace.ActionDequeue,
			Variables:   map[string]any{"removed": removed, "queue": append([]int(nil), queue...)},
			DataStructures: []trace.DataStructureState{
				trace.QueueState("queue", queue),
			},
			Memory: trace.MemorySnapshot{
				Heap:      map[string]any{"queue": append([]int(nil), queue...)},
				CallStack: []string{"main"},
			},
		}))
	}

	steps = append(steps, g.step(trace.TraceStep{
		Line:        len(ops) + 1,
		LineText:    "// done",
		Description: fmt.Sprintf("All operations replayed, final queue %v", queue),
		Action:      trace.ActionComplete,
		Variables:   map[string]any{"queue": append([]int(nil), queue...)},
		DataStructures: []trace.DataStructureState{
			trace.QueueState("queue", queue),
		},
		Memory: trace.MemorySnapshot{
			Heap:      map[string]any{"queue": append([]int(nil), queue...)},
			CallStack: []string{"main"},
		},
	}))
	return steps
}
