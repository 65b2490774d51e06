package quadblox

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeL
	ShapeJ

	shapeCount
)

// Shapes lists every shape in spawn-table order.
var Shapes = [shapeCount]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeL, ShapeJ}

// shapeCells holds the occupied (x, y) offsets of each shape inside a 4x4
// frame before normalization.
var shapeCells = [shapeCount][4]Point{
	ShapeI: {{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	ShapeO: {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	ShapeT: {{1, 1}, {2, 1}, {3, 1}, {2, 2}},
	ShapeS: {{2, 0}, {3, 0}, {1, 1}, {2, 1}},
	ShapeZ: {{1, 0}, {2, 0}, {2, 1}, {3, 1}},
	ShapeL: {{1, 1}, {1, 2}, {1, 3}, {2, 3}},
	ShapeJ: {{1, 1}, {1, 2}, {1, 3}, {2, 1}},
}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	default:
		return "?"
	}
}

// Cells returns the shape's frame offsets.
func (s Shape) Cells() [4]Point {
	return shapeCells[s]
}
