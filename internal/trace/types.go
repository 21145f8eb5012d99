package trace

import "time"

// Category is the heuristically detected algorithm class of a piece of
// submitted source code. It is a best guess from keyword and pattern
// matching, never the result of actually parsing the program.
type Category string

const (
	CategorySorting            Category = "sorting"
	CategorySearching          Category = "searching"
	CategoryGraph              Category = "graph"
	CategoryTree               Category = "tree"
	CategoryRecursion          Category = "recursion"
	CategoryDynamicProgramming Category = "dynamic-programming"
	CategoryQueue              Category = "queue"
	CategoryStack              Category = "stack"
	CategoryUnknown            Category = "unknown"
)

// Action tags what a trace step represents so the renderer can pick a
// visual treatment without inspecting the description text.
type Action string

const (
	ActionInit        Action = "INIT"
	ActionSelectPivot Action = "SELECT_PIVOT"
	ActionPartition   Action = "PARTITION"
	ActionRecurse     Action = "RECURSE"
	ActionCompare     Action = "COMPARE"
	ActionFound       Action = "FOUND"
	ActionNotFound    Action = "NOT_FOUND"
	ActionEnqueue     Action = "ENQUEUE"
	ActionDequeue     Action = "DEQUEUE"
	ActionExecute     Action = "EXECUTE"
	ActionComplete    Action = "COMPLETE"
)

// StructureKind tags a DataStructureState payload.
type StructureKind string

const (
	KindArray      StructureKind = "array"
	KindQueue      StructureKind = "queue"
	KindStack      StructureKind = "stack"
	KindTree       StructureKind = "tree"
	KindGraph      StructureKind = "graph"
	KindLinkedList StructureKind = "linked-list"
)

// DataStructureState is a renderer-facing snapshot of one named variable.
// Pivot, Left, Right and Current are only meaningful when Kind is array.
type DataStructureState struct {
	Kind       StructureKind  `json:"kind"`
	Name       string         `json:"name"`
	Data       any            `json:"data"`
	Highlights []int          `json:"highlights,omitempty"`
	Pivot      *int           `json:"pivot,omitempty"`
	Left       *int           `json:"left,omitempty"`
	Right      *int           `json:"right,omitempty"`
	Current    *int           `json:"current,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// MemorySnapshot is a fabricated view of heap contents and the call stack
// at one step. It is illustrative only; nothing is measured.
type MemorySnapshot struct {
	Heap      map[string]any `json:"heap,omitempty"`
	CallStack []string       `json:"callStack,omitempty"`
}

// TraceStep is one frame of a simulated execution. Line numbers are
// illustrative and not guaranteed to match the submitted source; steps are
// ordered by position in the trace, not by line.
type TraceStep struct {
	Line           int                  `json:"line"`
	LineText       string               `json:"lineText"`
	Variables      map[string]any       `json:"variables,omitempty"`
	DataStructures []DataStructureState `json:"dataStructures,omitempty"`
	Description    string               `json:"description"`
	Action         Action               `json:"action"`
	CreatedAt      time.Time            `json:"createdAt"`
	Memory         MemorySnapshot       `json:"memory"`
}

// DetectionResult is the classifier output. Confidence is a heuristic
// score scaled into [0,1], not a calibrated probability.
type DetectionResult struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
	Details    string   `json:"details"`
	Matches    []string `json:"matches,omitempty"`
}

// ComplexityAnalysis carries textbook complexity strings looked up from a
// static per-category table. Operations is the emitted step count.
type ComplexityAnalysis struct {
	Time       string `json:"time"`
	Space      string `json:"space"`
	Operations int    `json:"operations"`
}

// TraceResult is the full output of one execute round trip. ExecutionTimeMS
// and MemoryKB are synthetic metrics produced by a MetricsSource, never
// measurements.
type TraceResult struct {
	Success         bool               `json:"success"`
	Category        Category           `json:"category"`
	Language        string             `json:"language"`
	ExecutionTimeMS float64            `json:"executionTimeMs"`
	MemoryKB        float64            `json:"memoryKb"`
	Steps           []TraceStep        `json:"steps"`
	FinalState      map[string]any     `json:"finalState,omitempty"`
	Complexity      ComplexityAnalysis `json:"complexity"`
}

func intPtr(v int) *int { return &v }

// ArrayState builds an array-kind snapshot with optional highlight indices.
func ArrayState(name string, data []int, highlights ...int) DataStructureState {
	return DataStructureState{
		Kind:       KindArray,
		Name:       name,
		Data:       append([]int(nil), data...),
		Highlights: highlights,
	}
}

// QueueState builds a queue-kind snapshot.
func QueueState(name string, data []int) DataStructureState {
	return DataStructureState{
		Kind: KindQueue,
		Name: name,
		Data: append([]int(nil), data...),
	}
}

// WithBounds attaches array bound markers to a snapshot and returns it.
func (s DataStructureState) WithBounds(left, right int) DataStructureState {
	s.Left = intPtr(left)
	s.Right = intPtr(right)
	return s
}

// WithPivot attaches a pivot index marker.
func (s DataStructureState) WithPivot(pivot int) DataStructureState {
	s.Pivot = intPtr(pivot)
	return s
}

// WithCurrent attaches a current-index marker.
func (s DataStructureState) WithCurrent(current int) DataStructureState {
	s.Current = intPtr(current)
	return s
}
