package quadblox

// Collides reports whether candidate overlaps a locked tile, leaves the
// board horizontally, or sinks below the floor. Cells above row 0 are open
// sky: they never collide and are never read from the board.
func Collides(b *Board, candidate Piece) bool {
	for pt := range candidate.Tiles() {
		if pt.X < 0 || pt.X >= BoardWidth || pt.Y >= BoardHeight {
			return true
		}
		if pt.Y < 0 {
			continue
		}
		if b.Occupied(pt.X, pt.Y) {
			return true
		}
	}
	return false
}
