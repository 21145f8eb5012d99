package algorithm

import (
	"context"
	"fmt"
	"time"

	"algolens/internal/gateway/entity"
	"algolens/internal/trace"
)

// Seed loads the bundled reference implementations into the store. Seeding
// is idempotent: rows upsert under stable IDs, so repeated startups do not
// duplicate entries.
func Seed(ctx context.Context, store Store, now time.Time) error {
	for _, a := range seedAlgorithms {
		a.Seeded = true
		a.CreatedAt = now
		if _, err := store.Create(ctx, a); err != nil {
			return fmt.Errorf("seed algorithm %s: %w", a.ID, err)
		}
	}
	return nil
}

var seedAlgorithms = []entity.Algorithm{
	{
		ID:          "seed-bubble-sort-javascript",
		Name:        "Bubble Sort",
		Category:    trace.CategorySorting,
		Language:    "javascript",
		Description: "Repeatedly swaps adjacent out-of-order elements.",
		Code: `function bubbleSort(arr) {
  for (let i = 0; i < arr.length; i++) {
    for (let j = 0; j < arr.length - i - 1; j++) {
      if (arr[j] > arr[j + 1]) {
        const temp = arr[j];
        arr[j] = arr[j + 1];
        arr[j + 1] = temp;
      }
    }
  }
  return arr;
}

bubbleSort([64, 34, 25, 12, 22, 11, 90]);`,
	},
	{
		ID:          "seed-bubble-sort-python",
		Name:        "Bubble Sort",
		Category:    trace.CategorySorting,
		Language:    "python",
		Description: "Repeatedly swaps adjacent out-of-order elements.",
		Code: `def bubble_sort(arr):
    n = len(arr)
    for i in range(n):
        for j in range(n - i - 1):
            if arr[j] > arr[j + 1]:
                arr[j], arr[j + 1] = arr[j + 1], arr[j]
    return arr

bubble_sort([64, 34, 25, 12, 22, 11, 90])`,
	},
	{
		ID:          "seed-bubble-sort-java",
		Name:        "Bubble Sort",
		Category:    trace.CategorySorting,
		Language:    "java",
		Description: "Repeatedly swaps adjacent out-of-order elements.",
		Code: `static void bubbleSort(int[] arr) {
    for (int i = 0; i < arr.length; i++) {
        for (int j = 0; j < arr.length - i - 1; j++) {
            if (arr[j] > arr[j + 1]) {
                int temp = arr[j];
                arr[j] = arr[j + 1];
                arr[j + 1] = temp;
            }
        }
    }
}`,
	},
	{
		ID:          "seed-quick-sort-javascript",
		Name:        "Quick Sort",
		Category:    trace.CategorySorting,
		Language:    "javascript",
		Description: "Partitions around a pivot and recurses into both halves.",
		Code: `function quickSort(arr) {
  if (arr.length <= 1) return arr;
  const pivot = arr[arr.length - 1];
  const left = arr.filter(v => v < pivot);
  const right = arr.filter(v => v > pivot);
  return [...quickSort(left), pivot, ...quickSort(right)];
}

quickSort([19, 7, 15, 12, 16, 18, 4, 11, 13]);`,
	},
	{
		ID:          "seed-binary-search-javascript",
		Name:        "Binary Search",
		Category:    trace.CategorySearching,
		Language:    "javascript",
		Description: "Halves the sorted search range until the target is found.",
		Code: `function binarySearch(arr, target) {
  let left = 0;
  let right = arr.length - 1;
  while (left <= right) {
    const mid = Math.floor((left + right) / 2);
    if (arr[mid] === target) return mid;
    if (arr[mid] < target) left = mid + 1;
    else right = mid - 1;
  }
  return -1;
}

binarySearch([1, 3, 5, 7, 9, 11, 13, 15], 7);`,
	},
	{
		ID:          "seed-binary-search-python",
		Name:        "Binary Search",
		Category:    trace.CategorySearching,
		Language:    "python",
		Description: "Halves the sorted search range until the target is found.",
		Code: `def binary_search(arr, target):
    left, right = 0, len(arr) - 1
    while left <= right:
        mid = (left + right) // 2
        if arr[mid] == target:
            return mid
        if arr[mid] < target:
            left = mid + 1
        else:
            right = mid - 1
    return -1

binary_search([1, 3, 5, 7, 9, 11, 13, 15], 7)`,
	},
	{
		ID:          "seed-queue-javascript",
		Name:        "Queue Operations",
		Category:    trace.CategoryQueue,
		Language:    "javascript",
		Description: "FIFO enqueue/dequeue on an array-backed queue.",
		Code: `const queue = [];
queue.enqueue(10);
queue.enqueue(20);
queue.dequeue();
queue.enqueue(30);`,
	},
	{
		ID:          "seed-stack-javascript",
		Name:        "Stack Operations",
		Category:    trace.CategoryStack,
		Language:    "javascript",
		Description: "LIFO push/pop on an array-backed stack.",
		Code: `const stack = [];
stack.push(1);
stack.push(2);
stack.pop();
stack.push(3);`,
	},
	{
		ID:          "seed-bfs-javascript",
		Name:        "Breadth-First Search",
		Category:    trace.CategoryGraph,
		Language:    "javascript",
		Description: "Level-order graph traversal from a start vertex.",
		Code: `function bfs(graph, start) {
  const visited = new Set([start]);
  const queue = [start];
  while (queue.length > 0) {
    const vertex = queue.shift();
    for (const neighbor of graph[vertex]) {
      if (!visited.has(neighbor)) {
        visited.add(neighbor);
        queue.push(neighbor);
      }
    }
  }
  return visited;
}`,
	},
}
