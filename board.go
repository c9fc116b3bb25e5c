package main

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("invalid board dimension")
	ErrUnpopulatedBoard = errors.New("board tiles not populated")
	ErrIndexOutOfRange  = errors.New("cell index out of range")
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidTile      = errors.New("invalid tile")
)

// Board is a square letter grid. Cell i sits at row i/Dim, column i%Dim.
type Board struct {
	dim   int
	size  int
	tiles []rune
}

// NewBoard allocates an empty dim x dim board. Tiles must be set with
// SetTiles or Fill before any query.
func NewBoard(dim int) (*Board, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &Board{
		dim:   dim,
		size:  dim * dim,
		tiles: make([]rune, 0, dim*dim),
	}, nil
}

// Dim returns the side length.
func (b *Board) Dim() int { return b.dim }

// Size returns the number of cells.
func (b *Board) Size() int { return b.size }

// Tiles returns a copy of the board letters in row-major order.
func (b *Board) Tiles() string { return string(b.tiles) }

// SetTiles replaces all tiles. Letters are upper-cased and must be A-Z.
func (b *Board) SetTiles(tiles string) error {
	rs := []rune(strings.ToUpper(tiles))
	if len(rs) != b.size {
		return fmt.Errorf("%w: got %d tiles for a %dx%d board", ErrInvalidTile, len(rs), b.dim, b.dim)
	}
	for i, r := range rs {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%w: %q at cell %d", ErrInvalidTile, r, i)
		}
	}
	b.tiles = rs
	return nil
}

// Fill draws a fresh letter for every cell from src.
func (b *Board) Fill(src TileSource) error {
	tiles := make([]rune, 0, b.size)
	for range b.size {
		tiles = append(tiles, src.Tile())
	}
	return b.SetTiles(string(tiles))
}

func (b *Board) populated() error {
	if len(b.tiles) != b.size {
		return fmt.Errorf("%w: %d of %d tiles", ErrUnpopulatedBoard, len(b.tiles), b.size)
	}
	return nil
}

// adjacent reports whether two distinct cells are king-move neighbours.
func (b *Board) adjacent(i, j int) bool {
	dx := i%b.dim - j%b.dim
	dy := i/b.dim - j/b.dim
	return i != j && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// Neighbors returns the cells a path can move to next, in ascending order.
// An empty path can start anywhere. The path itself is validated first.
func (b *Board) Neighbors(path Path) ([]int, error) {
	if err := b.populated(); err != nil {
		return nil, err
	}
	if len(path) == 0 {
		all := make([]int, b.size)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	visited := make([]bool, b.size)
	for k, i := range path {
		if i < 0 || i >= b.size {
			return nil, fmt.Errorf("%w: index %d outside [0, %d)", ErrInvalidPath, i, b.size)
		}
		if visited[i] {
			return nil, fmt.Errorf("%w: index %d repeated", ErrInvalidPath, i)
		}
		if k > 0 && !b.adjacent(path[k-1], i) {
			return nil, fmt.Errorf("%w: %d is not adjacent to %d", ErrInvalidPath, i, path[k-1])
		}
		visited[i] = true
	}
	return b.moves(path[len(path)-1], visited), nil
}

// moves lists the unvisited neighbours of curr. Rows are scanned top to
// bottom and columns left to right, so the result is already ascending.
func (b *Board) moves(curr int, visited []bool) []int {
	x, y := curr%b.dim, curr/b.dim
	out := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.dim {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= b.dim {
				continue
			}
			if idx := nx + ny*b.dim; !visited[idx] {
				out = append(out, idx)
			}
		}
	}
	return out
}

// WordFor reads the letters along path.
func (b *Board) WordFor(path Path) (string, error) {
	if err := b.populated(); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len(path))
	for _, i := range path {
		if i < 0 || i >= b.size {
			return "", fmt.Errorf("%w: %d outside [0, %d)", ErrIndexOutOfRange, i, b.size)
		}
		sb.WriteRune(b.tiles[i])
	}
	return sb.String(), nil
}

// String lays the tiles out row by row, each followed by three spaces, with a
// blank line between rows.
func (b *Board) String() string {
	var sb strings.Builder
	for i, r := range b.tiles {
		sb.WriteRune(r)
		sb.WriteString("   ")
		if (i+1)%b.dim == 0 && i+1 < b.size {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
