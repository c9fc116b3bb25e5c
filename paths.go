package main

import (
	"context"
	"iter"
	"slices"
)

// Path is a self-avoiding walk of adjacent cell indices.
type Path []int

// frame holds the moves still to try from one node of the walk tree.
type frame struct {
	pending []int
}

// Paths yields every path on b in depth-first pre-order: siblings in
// ascending cell order, each path followed by all of its extensions before
// the next sibling. Each yielded Path is a fresh slice owned by the caller.
// Ranging over the sequence again restarts from the root.
func Paths(ctx context.Context, b *Board) iter.Seq2[Path, error] {
	return WalkPaths(ctx, b, nil)
}

// WalkPaths is Paths with pruning: when prune reports true for a path, that
// path is not yielded and none of its extensions are visited. A nil prune
// visits everything.
//
// The walk keeps an explicit stack, so its depth is bounded by the board
// size and never by the goroutine stack. Cancellation is checked before
// every expansion; on cancel or on an unpopulated board a single error is
// yielded and the sequence ends.
func WalkPaths(ctx context.Context, b *Board, prune func(Path) bool) iter.Seq2[Path, error] {
	return func(yield func(Path, error) bool) {
		if err := b.populated(); err != nil {
			yield(nil, err)
			return
		}

		roots, _ := b.Neighbors(nil)
		path := make(Path, 0, b.size)
		visited := make([]bool, b.size)
		stack := make([]frame, 1, b.size+1)
		stack[0] = frame{pending: roots}

		for len(stack) > 0 {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			top := &stack[len(stack)-1]
			if len(top.pending) == 0 {
				stack = stack[:len(stack)-1]
				if n := len(path); n > 0 {
					visited[path[n-1]] = false
					path = path[:n-1]
				}
				continue
			}

			m := top.pending[0]
			top.pending = top.pending[1:]

			path = append(path, m)
			visited[m] = true
			p := slices.Clone(path)
			if prune != nil && prune(p) {
				visited[m] = false
				path = path[:len(path)-1]
				continue
			}
			if !yield(p, nil) {
				return
			}
			stack = append(stack, frame{pending: b.moves(m, visited)})
		}
	}
}

// EnumerateAll collects Paths into a slice.
func EnumerateAll(ctx context.Context, b *Board) ([]Path, error) {
	var all []Path
	for p, err := range Paths(ctx, b) {
		if err != nil {
			return nil, err
		}
		all = append(all, p)
	}
	return all, nil
}

// WordsFor maps each path to its candidate word, index for index.
func WordsFor(b *Board, paths []Path) ([]string, error) {
	words := make([]string, len(paths))
	for i, p := range paths {
		w, err := b.WordFor(p)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}
