package classifier

import (
	"regexp"

	"algolens/internal/trace"
)

// signature defines one detectable category: literal keywords score +1 per
// occurrence, compiled patterns score +2 per match. Declaration order is
// the tie-break order, so the more specific categories come first.
type signature struct {
	category trace.Category
	keywords []string
	patterns []*regexp.Regexp
}

var signatures = []signature{
	{
		category: trace.CategorySorting,
		keywords: []string{
			"sort", "bubble", "insertion", "selection", "merge",
			"pivot", "partition", "swap",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bsort\s*\(`),
			regexp.MustCompile(`\bswap\s*\(`),
			regexp.MustCompile(`\bpartition\s*\(`),
		},
	},
	{
		category: trace.CategorySearching,
		keywords: []string{
			"search", "find", "target", "indexof", "binary",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`while\s*\(\s*(?:left|low)\s*<=\s*(?:right|high)`),
			regexp.MustCompile(`\bmid\s*=`),
			regexp.MustCompile(`\bindexof\s*\(`),
		},
	},
	{
		category: trace.CategoryGraph,
		keywords: []string{
			"graph", "bfs", "dfs", "vertex", "edge", "adjacency", "neighbor",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bvisited\s*\[`),
			regexp.MustCompile(`\badd_?edge\s*\(`),
		},
	},
	{
		category: trace.CategoryTree,
		keywords: []string{
			"tree", "root", "leaf", "inorder", "preorder", "postorder", "bst",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\.left\b`),
			regexp.MustCompile(`\.right\b`),
		},
	},
	{
		category: trace.CategoryRecursion,
		keywords: []string{
			"recursion", "recursive", "factorial", "fibonacci", "base case",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bfib(?:onacci)?\s*\(`),
			regexp.MustCompile(`\bfactorial\s*\(`),
		},
	},
	{
		category: trace.CategoryDynamicProgramming,
		keywords: []string{
			"dynamic programming", "memoization", "memo", "tabulation",
			"knapsack", "subproblem",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bdp\s*\[`),
			regexp.MustCompile(`\bmemo\s*[\[(]`),
		},
	},
	{
		category: trace.CategoryQueue,
		keywords: []string{
			"queue", "enqueue", "dequeue", "fifo",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\benqueue\s*\(`),
			regexp.MustCompile(`\bdequeue\s*\(`),
			regexp.MustCompile(`\.shift\s*\(`),
		},
	},
	{
		category: trace.CategoryStack,
		keywords: []string{
			"stack", "lifo", "peek",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\.push\s*\(`),
			regexp.MustCompile(`\.pop\s*\(`),
			regexp.MustCompile(`\bpeek\s*\(`),
		},
	},
}
