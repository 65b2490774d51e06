package quadblox

import (
	"iter"
	"math/rand/v2"
)

const (
	FrameSize = 4

	// SpawnColumn is the anchor column of every new piece.
	SpawnColumn = 5
)

// Frame is a piece's 4x4 cell matrix, row-major.
type Frame [FrameSize][FrameSize]Color

// Piece is a frame anchored at a board position. It is a plain value:
// copying a Piece yields an independent candidate.
type Piece struct {
	Cells Frame
	X, Y  int
	Shape Shape
}

// NewPiece stamps shape into an empty frame with a single color and
// normalizes it. The anchor is left at (0, 0).
func NewPiece(shape Shape, c Color) Piece {
	p := Piece{Shape: shape}
	for _, pt := range shape.Cells() {
		p.Cells[pt.Y][pt.X] = c
	}
	p.Normalize()
	return p
}

// Spawn returns a random shape in a random color at the spawn anchor.
func Spawn(rng *rand.Rand) Piece {
	shape := Shapes[rng.IntN(len(Shapes))]
	p := NewPiece(shape, RandomColor(rng))
	p.X = SpawnColumn
	p.Y = 0
	return p
}

// At returns the frame cell at (x, y).
func (p *Piece) At(x, y int) Color {
	return p.Cells[y][x]
}

func (f *Frame) columnEmpty(x int) bool {
	for y := range FrameSize {
		if f[y][x] != Empty {
			return false
		}
	}
	return true
}

func (f *Frame) rowEmpty(y int) bool {
	for _, c := range f[y] {
		if c != Empty {
			return false
		}
	}
	return true
}

func (f *Frame) shiftLeft() {
	for y := range FrameSize {
		copy(f[y][:FrameSize-1], f[y][1:])
		f[y][FrameSize-1] = Empty
	}
}

func (f *Frame) shiftUp() {
	copy(f[:FrameSize-1], f[1:])
	f[FrameSize-1] = [FrameSize]Color{}
}

// Normalize slides the occupied cells to touch the top and left edges of
// the frame. An empty frame is left as is.
func (p *Piece) Normalize() {
	for i := 0; i < FrameSize-1 && p.Cells.columnEmpty(0); i++ {
		p.Cells.shiftLeft()
	}
	for i := 0; i < FrameSize-1 && p.Cells.rowEmpty(0); i++ {
		p.Cells.shiftUp()
	}
}

// Rotated returns the piece turned a quarter turn inside its frame and
// normalized. The anchor does not move.
func (p Piece) Rotated() Piece {
	r := p
	r.Cells = Frame{}
	for x := range FrameSize {
		for y := range FrameSize {
			// new(3-x, y) = old(y, x)
			r.Cells[y][FrameSize-1-x] = p.Cells[x][y]
		}
	}
	r.Normalize()
	return r
}

// Moved returns the piece with its anchor offset by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Tiles yields the occupied cells in absolute board coordinates.
func (p *Piece) Tiles() iter.Seq2[Point, Color] {
	return func(yield func(Point, Color) bool) {
		for y := range FrameSize {
			for x := range FrameSize {
				c := p.Cells[y][x]
				if c == Empty {
					continue
				}
				if !yield(Point{X: p.X + x, Y: p.Y + y}, c) {
					return
				}
			}
		}
	}
}
