package quadblox_test

import (
	"testing"

	"github.com/plus3/quadblox/quadblox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tileSet(p quadblox.Piece) map[quadblox.Point]quadblox.Color {
	tiles := map[quadblox.Point]quadblox.Color{}
	for pt, c := range p.Tiles() {
		tiles[pt] = c
	}
	return tiles
}

func assertTouchesTopLeft(t *testing.T, p quadblox.Piece) {
	t.Helper()
	row0, col0 := false, false
	for i := range quadblox.FrameSize {
		row0 = row0 || p.At(i, 0) != quadblox.Empty
		col0 = col0 || p.At(0, i) != quadblox.Empty
	}
	assert.True(t, row0, "row 0 should be occupied:\n%v", p.Cells)
	assert.True(t, col0, "column 0 should be occupied:\n%v", p.Cells)
}

func TestNewPiece(t *testing.T) {
	for _, shape := range quadblox.Shapes {
		t.Run(shape.String(), func(t *testing.T) {
			p := quadblox.NewPiece(shape, 3)

			tiles := tileSet(p)
			require.Len(t, tiles, 4)
			for _, c := range tiles {
				assert.Equal(t, quadblox.Color(3), c)
			}
			assertTouchesTopLeft(t, p)
		})
	}
}

func TestNewPieceLayouts(t *testing.T) {
	tests := []struct {
		shape quadblox.Shape
		cells []quadblox.Point
	}{
		{quadblox.ShapeI, []quadblox.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
		{quadblox.ShapeO, []quadblox.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{quadblox.ShapeT, []quadblox.Point{{0, 0}, {1, 0}, {2, 0}, {1, 1}}},
		{quadblox.ShapeS, []quadblox.Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
		{quadblox.ShapeZ, []quadblox.Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
		{quadblox.ShapeL, []quadblox.Point{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
		{quadblox.ShapeJ, []quadblox.Point{{0, 0}, {1, 0}, {0, 1}, {0, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			p := quadblox.NewPiece(tt.shape, 1)

			want := map[quadblox.Point]quadblox.Color{}
			for _, pt := range tt.cells {
				want[pt] = 1
			}
			assert.Equal(t, want, tileSet(p))
		})
	}
}

func TestPieceNormalizeIdempotent(t *testing.T) {
	for _, shape := range quadblox.Shapes {
		p := quadblox.NewPiece(shape, 2)
		for turn := range 4 {
			once := p
			once.Normalize()
			twice := once
			twice.Normalize()

			assert.Equal(t, once.Cells, twice.Cells, "%s turn %d", shape, turn)
			p = p.Rotated()
		}
	}
}

func TestPieceNormalizeShiftsToCorner(t *testing.T) {
	var p quadblox.Piece
	p.Cells[3][3] = 5
	p.Cells[2][3] = 5

	p.Normalize()

	assert.Equal(t, quadblox.Color(5), p.At(0, 0))
	assert.Equal(t, quadblox.Color(5), p.At(0, 1))
	assert.Len(t, tileSet(p), 2)
}

func TestPieceNormalizeEmptyFrame(t *testing.T) {
	var p quadblox.Piece
	p.Normalize()
	assert.Equal(t, quadblox.Frame{}, p.Cells)
}

func TestPieceRotated(t *testing.T) {
	t.Run("I turns horizontal", func(t *testing.T) {
		p := quadblox.NewPiece(quadblox.ShapeI, 1)
		p.X, p.Y = 2, 7

		r := p.Rotated()

		assert.Equal(t, 2, r.X)
		assert.Equal(t, 7, r.Y)
		assert.Equal(t, map[quadblox.Point]quadblox.Color{
			{X: 2, Y: 7}: 1, {X: 3, Y: 7}: 1, {X: 4, Y: 7}: 1, {X: 5, Y: 7}: 1,
		}, tileSet(r))
	})

	t.Run("does not touch the source", func(t *testing.T) {
		p := quadblox.NewPiece(quadblox.ShapeT, 1)
		before := p.Cells

		_ = p.Rotated()

		assert.Equal(t, before, p.Cells)
	})

	for _, shape := range quadblox.Shapes {
		t.Run(shape.String()+" full turn", func(t *testing.T) {
			p := quadblox.NewPiece(shape, 4)
			r := p
			for range 4 {
				r = r.Rotated()
				assertTouchesTopLeft(t, r)
				assert.Len(t, tileSet(r), 4)
			}
			assert.Equal(t, p, r)
		})
	}
}

func TestSpawn(t *testing.T) {
	rng := newRand(11)
	seen := map[quadblox.Shape]bool{}

	for range 500 {
		p := quadblox.Spawn(rng)
		seen[p.Shape] = true

		assert.Equal(t, quadblox.SpawnColumn, p.X)
		assert.Equal(t, 0, p.Y)
		assertTouchesTopLeft(t, p)

		tiles := tileSet(p)
		require.Len(t, tiles, 4)
		var color quadblox.Color
		for _, c := range tiles {
			if color == quadblox.Empty {
				color = c
			}
			assert.Equal(t, color, c)
		}
		assert.GreaterOrEqual(t, color, quadblox.Color(1))
		assert.LessOrEqual(t, color, quadblox.MaxColor)
	}

	assert.Len(t, seen, len(quadblox.Shapes))
}

func TestPieceMoved(t *testing.T) {
	p := quadblox.NewPiece(quadblox.ShapeO, 1)
	m := p.Moved(3, 4)

	assert.Equal(t, 3, m.X)
	assert.Equal(t, 4, m.Y)
	assert.Equal(t, 0, p.X)
	assert.Equal(t, p.Cells, m.Cells)
}
