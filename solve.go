package main

import (
	"context"
	"fmt"
)

// Solve returns the dictionary entries that some path on b spells, in
// dictionary order. Branches whose letters cannot start any entry are cut,
// which yields the same words as filtering every enumerated path.
func Solve(ctx context.Context, b *Board, dict *Dictionary) ([]string, error) {
	logger := loggerFrom(ctx)

	var pruned int
	prune := func(p Path) bool {
		// p holds valid in-range indices, so WordFor cannot fail here.
		w, _ := b.WordFor(p)
		if dict.HasPrefix(w) {
			return false
		}
		pruned++
		return true
	}

	seen := make(map[string]struct{})
	var visited int
	for p, err := range WalkPaths(ctx, b, prune) {
		if err != nil {
			return nil, fmt.Errorf("walk board: %w", err)
		}
		visited++
		w, err := b.WordFor(p)
		if err != nil {
			return nil, fmt.Errorf("walk produced bad path %v: %w", p, err)
		}
		if dict.Contains(w) {
			seen[w] = struct{}{}
		}
	}

	words := make([]string, 0, len(seen))
	for _, w := range dict.words {
		if _, ok := seen[w]; ok {
			words = append(words, w)
		}
	}

	logger.Debug("Board solved.", "dim", b.Dim(), "paths_visited", visited, "branches_pruned", pruned, "words_found", len(words))
	return words, nil
}

// SolveExhaustive enumerates every path, derives every candidate word and
// filters them through dict. It is the reference for Solve and is only
// practical on small boards.
func SolveExhaustive(ctx context.Context, b *Board, dict *Dictionary) ([]string, error) {
	paths, err := EnumerateAll(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("enumerate board: %w", err)
	}
	words, err := WordsFor(b, paths)
	if err != nil {
		return nil, fmt.Errorf("derive words: %w", err)
	}
	loggerFrom(ctx).Debug("Board enumerated.", "dim", b.Dim(), "paths", len(paths))
	return dict.Filter(words), nil
}
