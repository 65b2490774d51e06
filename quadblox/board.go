package quadblox

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

const (
	BoardWidth  = 10
	BoardHeight = 28

	// SeedRows is the number of garbage rows a fresh board starts with.
	SeedRows = 5
)

// Color is a palette index. Zero is an empty cell.
type Color uint8

const (
	Empty    Color = 0
	MaxColor Color = 8
)

// RandomColor returns a color in [1, MaxColor].
func RandomColor(rng *rand.Rand) Color {
	return Color(rng.IntN(int(MaxColor)) + 1)
}

// Point is a cell coordinate, either board-absolute or frame-relative.
type Point struct {
	X, Y int
}

// Board holds locked tiles, stored row-major.
type Board struct {
	cells [BoardHeight][BoardWidth]Color
}

// InBounds reports whether (x, y) addresses a board cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

func mustInBounds(x, y int) {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("board access out of range: (%d, %d)", x, y))
	}
}

// Reset empties the board and seeds SeedRows rows of garbage from the bottom.
func (b *Board) Reset(rng *rand.Rand) {
	b.cells = [BoardHeight][BoardWidth]Color{}
	for range SeedRows {
		b.SeedRow(rng)
	}
}

// SeedRow pushes every row up by one and fills the bottom row with random
// colors, leaving exactly one random column empty.
func (b *Board) SeedRow(rng *rand.Rand) {
	copy(b.cells[:BoardHeight-1], b.cells[1:])

	gap := rng.IntN(BoardWidth)
	bottom := &b.cells[BoardHeight-1]
	for x := range bottom {
		if x == gap {
			bottom[x] = Empty
			continue
		}
		bottom[x] = RandomColor(rng)
	}
}

// Occupied reports whether cell (x, y) holds a tile.
func (b *Board) Occupied(x, y int) bool {
	mustInBounds(x, y)
	return b.cells[y][x] != Empty
}

// At returns the color of cell (x, y).
func (b *Board) At(x, y int) Color {
	mustInBounds(x, y)
	return b.cells[y][x]
}

// Set writes a single cell. Only lock placement and tests should call it.
func (b *Board) Set(x, y int, c Color) {
	mustInBounds(x, y)
	b.cells[y][x] = c
}

// Row returns a copy of row y.
func (b *Board) Row(y int) [BoardWidth]Color {
	mustInBounds(0, y)
	return b.cells[y]
}

// Tiles yields every occupied cell.
func (b *Board) Tiles() iter.Seq2[Point, Color] {
	return func(yield func(Point, Color) bool) {
		for y := range b.cells {
			for x, c := range b.cells[y] {
				if c == Empty {
					continue
				}
				if !yield(Point{X: x, Y: y}, c) {
					return
				}
			}
		}
	}
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, compacting the rows above it
// downward, and returns how many rows were removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := BoardHeight - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}

		cleared++
		copy(b.cells[1:y+1], b.cells[:y])
		// the top row is refilled empty, including when row 0 itself was full.
		b.cells[0] = [BoardWidth]Color{}
		// y is re-examined: a new row has shifted into it.
	}
	return cleared
}
