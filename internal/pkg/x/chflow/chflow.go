// Package chflow holds small channel helpers shared by the state objects
// and their renderers: a context-aware receive and a non-blocking send.
package chflow

import "context"

// Receive waits for a value on ch until ctx is done. The boolean is false
// when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case data, ok := <-ch:
		return data, ok
	}
}

// TrySend sends data only if ch can accept it right away. It never blocks
// and reports whether the value was sent. On a channel with a buffer of
// one this coalesces bursts of notifications into a single pending one.
func TrySend[T any](ch chan<- T, data T) bool {
	select {
	case ch <- data:
		return true
	default:
		return false
	}
}
