package trace

// complexityTable maps each category to textbook complexity strings. The
// entries describe the canonical algorithm of the category, not whatever
// the submitted code actually does.
var complexityTable = map[Category]ComplexityAnalysis{
	CategorySorting:            {Time: "O(n log n)", Space: "O(log n)"},
	CategorySearching:          {Time: "O(log n)", Space: "O(1)"},
	CategoryGraph:              {Time: "O(V + E)", Space: "O(V)"},
	CategoryTree:               {Time: "O(n)", Space: "O(h)"},
	CategoryRecursion:          {Time: "O(2^n)", Space: "O(n)"},
	CategoryDynamicProgramming: {Time: "O(n^2)", Space: "O(n)"},
	CategoryQueue:              {Time: "O(1) per operation", Space: "O(n)"},
	CategoryStack:              {Time: "O(1) per operation", Space: "O(n)"},
	CategoryUnknown:            {Time: "O(n)", Space: "O(1)"},
}

// ComplexityFor looks up the static complexity record for a category and
// stamps the operation count. Unrecognized categories fall back to the
// unknown entry.
func ComplexityFor(category Category, operations int) ComplexityAnalysis {
	c, ok := complexityTable[category]
	if !ok {
		c = complexityTable[CategoryUnknown]
	}
	c.Operations = operations
	return c
}

// Categories lists every known category in declaration order. The order is
// significant: classification ties resolve to the earliest entry.
func Categories() []Category {
	return []Category{
		CategorySorting,
		CategorySearching,
		CategoryGraph,
		CategoryTree,
		CategoryRecursion,
		CategoryDynamicProgramming,
		CategoryQueue,
		CategoryStack,
	}
}
