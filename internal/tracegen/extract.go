package tracegen

import (
	"regexp"
	"strconv"
	"strings"
)

// Best-effort literal extraction from arbitrary source text. These are
// regex scans, not parsing: every helper returns (value, ok) and the caller
// substitutes a documented default on a miss. They must never fail.

var (
	arrayLiteralRe = regexp.MustCompile(`\[\s*(-?\d+(?:\s*,\s*-?\d+)+)\s*\]`)
	targetAssignRe = regexp.MustCompile(`(?:target|key)\s*=\s*(-?\d+)`)
	searchCallRe   = regexp.MustCompile(`search\w*\s*\([^)]*?,\s*(-?\d+)\s*\)`)
	enqueueCallRe  = regexp.MustCompile(`enqueue\s*\(\s*(-?\d+)\s*\)`)
	dequeueCallRe  = regexp.MustCompile(`dequeue\s*\(`)
)

// extractIntArray pulls the first integer array literal ([n, n, ...]) out
// of the source.
func extractIntArray(source string) ([]int, bool) {
	m := arrayLiteralRe.FindStringSubmatch(source)
	if m == nil {
		return nil, false
	}
	parts := strings.Split(m[1], ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// extractTarget looks for a search target: a `target = n` (or `key = n`)
// assignment first, then the second argument of a search-like call.
func extractTarget(source string) (int, bool) {
	lower := strings.ToLower(source)
	if m := targetAssignRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	if m := searchCallRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	return 0, false
}

// queueOp is one replayable FIFO operation.
type queueOp struct {
	enqueue bool
	value   int
	line    int
}

// extractQueueOps scans the source line by line for enqueue(n)/dequeue()
// call-like tokens, preserving their textual order.
func extractQueueOps(source string) []queueOp {
	var ops []queueOp
	for i, line := range strings.Split(strings.ToLower(source), "\n") {
		if m := enqueueCallRe.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				ops = append(ops, queueOp{enqueue: true, value: n, line: i + 1})
				continue
			}
		}
		if dequeueCallRe.MatchString(line) {
			ops = append(ops, queueOp{line: i + 1})
		}
	}
	return ops
}

// pivotStrategy is the narrative pivot choice scanned from the source.
type pivotStrategy int

const (
	pivotLast pivotStrategy = iota
	pivotFirst
	pivotMiddle
)

var (
	middlePivotRe = regexp.MustCompile(`length\s*/\s*2`)
	firstPivotRe  = regexp.MustCompile(`\[\s*0\s*\]`)
)

// detectPivotStrategy guesses which element the submitted code would pick
// as pivot. The guess only steers the narration; see generateSorting.
func detectPivotStrategy(source string) pivotStrategy {
	if middlePivotRe.MatchString(source) {
		return pivotMiddle
	}
	if firstPivotRe.MatchString(source) {
		return pivotFirst
	}
	return pivotLast
}

func (p pivotStrategy) index(n int) int {
	switch p {
	case pivotMiddle:
		return n / 2
	case pivotFirst:
		return 0
	default:
		return n - 1
	}
}

func (p pivotStrategy) String() string {
	switch p {
	case pivotMiddle:
		return "middle"
	case pivotFirst:
		return "first"
	default:
		return "last"
	}
}
