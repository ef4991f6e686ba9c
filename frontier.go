package search

import "container/heap"

// Frontier is an ordered container of discovered-but-unexpanded items.
// The discipline decides which item Pop returns.
type Frontier[T any] interface {
	Push(item T, priority float64)
	Pop() T
	IsEmpty() bool
	Len() int
	// Each visits every item currently held, in no particular order.
	Each(visit func(T))
}

// Stack pops the most recently pushed item first. Priorities are ignored.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty LIFO frontier.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

func (stack *Stack[T]) Push(item T, _ float64) { stack.items = append(stack.items, item) }

// Pop panics when the stack is empty.
func (stack *Stack[T]) Pop() T {
	n := len(stack.items)
	item := stack.items[n-1]
	var zero T
	stack.items[n-1] = zero
	stack.items = stack.items[:n-1]
	return item
}

func (stack *Stack[T]) IsEmpty() bool { return len(stack.items) == 0 }
func (stack *Stack[T]) Len() int      { return len(stack.items) }

func (stack *Stack[T]) Each(visit func(T)) {
	for _, item := range stack.items {
		visit(item)
	}
}

// Queue pops the earliest pushed item first. Priorities are ignored.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

func (queue *Queue[T]) Push(item T, _ float64) { queue.items = append(queue.items, item) }

// Pop panics when the queue is empty.
func (queue *Queue[T]) Pop() T {
	if queue.head >= len(queue.items) {
		panic("search: Pop on empty queue")
	}
	item := queue.items[queue.head]
	var zero T
	queue.items[queue.head] = zero
	queue.head++
	// reclaim the consumed prefix once it dominates the backing array
	if queue.head > 64 && queue.head*2 >= len(queue.items) {
		remaining := copy(queue.items, queue.items[queue.head:])
		clear(queue.items[remaining:])
		queue.items = queue.items[:remaining]
		queue.head = 0
	}
	return item
}

func (queue *Queue[T]) IsEmpty() bool { return queue.head >= len(queue.items) }
func (queue *Queue[T]) Len() int      { return len(queue.items) - queue.head }

func (queue *Queue[T]) Each(visit func(T)) {
	for _, item := range queue.items[queue.head:] {
		visit(item)
	}
}

// PriorityQueueItem is one heap slot. Sequence breaks priority ties in push order.
type PriorityQueueItem[T any] struct {
	Value        T
	Priority     float64
	Sequence     uint64
	IndexInQueue int
}

type priorityHeap[T any] []*PriorityQueueItem[T]

func (queue priorityHeap[T]) Len() int { return len(queue) }
func (queue priorityHeap[T]) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue priorityHeap[T]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityHeap[T]) Push(x any) {
	item := x.(*PriorityQueueItem[T])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityHeap[T]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// PriorityQueue pops the item with the lowest priority; equal priorities
// come out in the order they were pushed. Items are immutable once pushed.
type PriorityQueue[T any] struct {
	heap     priorityHeap[T]
	sequence uint64
}

// NewPriorityQueue returns an empty min-priority frontier.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	queue := &PriorityQueue[T]{}
	heap.Init(&queue.heap)
	return queue
}

func (queue *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&queue.heap, &PriorityQueueItem[T]{
		Value:    item,
		Priority: priority,
		Sequence: queue.sequence,
	})
	queue.sequence++
}

// Pop panics when the queue is empty.
func (queue *PriorityQueue[T]) Pop() T {
	return heap.Pop(&queue.heap).(*PriorityQueueItem[T]).Value
}

func (queue *PriorityQueue[T]) IsEmpty() bool { return queue.heap.Len() == 0 }
func (queue *PriorityQueue[T]) Len() int      { return queue.heap.Len() }

func (queue *PriorityQueue[T]) Each(visit func(T)) {
	for _, item := range queue.heap {
		visit(item.Value)
	}
}
