package search

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain[T any](frontier Frontier[T]) []T {
	var items []T
	for !frontier.IsEmpty() {
		items = append(items, frontier.Pop())
	}
	return items
}

func TestStackIsLIFO(t *testing.T) {
	stack := NewStack[string]()
	assert.True(t, stack.IsEmpty())
	stack.Push("a", 3)
	stack.Push("b", 1)
	stack.Push("c", 2)
	assert.Equal(t, 3, stack.Len())
	assert.Equal(t, []string{"c", "b", "a"}, drain[string](stack))
	assert.Panics(t, func() { stack.Pop() })
}

func TestQueueIsFIFO(t *testing.T) {
	queue := NewQueue[string]()
	queue.Push("a", 3)
	queue.Push("b", 1)
	assert.Equal(t, "a", queue.Pop())
	queue.Push("c", 0)
	assert.Equal(t, 2, queue.Len())
	assert.Equal(t, []string{"b", "c"}, drain[string](queue))
	assert.Panics(t, func() { queue.Pop() })
}

func TestQueueCompaction(t *testing.T) {
	queue := NewQueue[int]()
	next := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 10; i++ {
			queue.Push(round*10+i, 0)
		}
		for i := 0; i < 8; i++ {
			assert.Equal(t, next, queue.Pop())
			next++
		}
	}
	assert.Equal(t, 100, queue.Len())
	for _, item := range drain[int](queue) {
		assert.Equal(t, next, item)
		next++
	}
}

func TestPriorityQueueOrdersByPriorityThenInsertion(t *testing.T) {
	queue := NewPriorityQueue[string]()
	queue.Push("late-two", 2)
	queue.Push("first-one", 1)
	queue.Push("zero", 0)
	queue.Push("second-one", 1)
	queue.Push("early-two", 2)
	queue.Push("third-one", 1)

	assert.Equal(t,
		[]string{"zero", "first-one", "second-one", "third-one", "late-two", "early-two"},
		drain[string](queue))
	assert.Panics(t, func() { queue.Pop() })
}

func TestPriorityQueueKeepsDuplicates(t *testing.T) {
	queue := NewPriorityQueue[string]()
	queue.Push("s", 5)
	queue.Push("s", 2)
	assert.Equal(t, 2, queue.Len())
	assert.Equal(t, []string{"s", "s"}, drain[string](queue))
}

func TestFrontierEach(t *testing.T) {
	for name, frontier := range map[string]Frontier[int]{
		"stack":    NewStack[int](),
		"queue":    NewQueue[int](),
		"priority": NewPriorityQueue[int](),
	} {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				frontier.Push(i, float64(5-i))
			}
			frontier.Pop()
			var seen []int
			frontier.Each(func(item int) { seen = append(seen, item) })
			sort.Ints(seen)
			assert.Len(t, seen, 4)
			assert.Equal(t, frontier.Len(), len(seen))
		})
	}
}

func TestVisitedSet(t *testing.T) {
	visited := NewVisitedSet[string]()
	assert.False(t, visited.Contains("a"))
	visited.Mark("a")
	visited.Mark("a")
	visited.Mark("b")
	assert.True(t, visited.Contains("a"))
	assert.Equal(t, 2, visited.Len())

	snapshot := visited.Snapshot()
	visited.Mark("c")
	assert.Equal(t, map[string]bool{"a": true, "b": true}, snapshot)
}
