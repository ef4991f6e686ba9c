package search

import "time"

// ExpansionEvent is emitted after a state's successors have been pushed.
type ExpansionEvent struct {
	Strategy     Strategy
	Depth        int
	Successors   int
	Pushed       int
	FrontierSize int
}

// CompletionEvent is emitted once, when the search succeeds or the frontier runs dry.
type CompletionEvent struct {
	Strategy   Strategy
	Found      bool
	PathLength int
	Cost       float64
	Stats      Stats
	Elapsed    time.Duration
}

// Observer receives search events synchronously on the searching goroutine.
type Observer interface {
	OnExpansion(event ExpansionEvent)
	OnCompletion(event CompletionEvent)
}
