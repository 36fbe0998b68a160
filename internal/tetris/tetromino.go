package tetris

// Shape identifies one of the seven tetrominoes. The zero value means
// "no shape"; the numeric values double as board cell values, so a locked
// cell remembers which piece produced it.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of distinct tetrominoes.
const ShapeCount = 7

// String returns the conventional one-letter name of the shape.
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
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Offset is a relative cell position inside a piece's bounding box,
// or a wall-kick translation. Y grows downward.
type Offset struct {
	X, Y int
}

// RotationDir is the direction of a rotation request.
type RotationDir int

const (
	RotateCW  RotationDir = 1
	RotateCCW RotationDir = -1
)

// Each shape lives in a square bounding box addressed by its top-left
// corner: 4x4 for I, 2x2 for O, 3x3 for the rest. Rotation permutes the
// four cells inside the box (Super Rotation System), so the box position
// itself never moves during a pure rotation.
var shapeBoxSize = [ShapeCount + 1]int{
	ShapeI: 4,
	ShapeO: 2,
	ShapeT: 3,
	ShapeS: 3,
	ShapeZ: 3,
	ShapeJ: 3,
	ShapeL: 3,
}

// shapeCells holds the four occupied cells of every shape in each of its
// four rotation states, in box coordinates. SRS reference data.
var shapeCells = [ShapeCount + 1][4][4]Offset{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	ShapeO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// ShapeCells returns the four occupied cells of a shape at the given
// rotation, in bounding-box coordinates. The rotation index wraps modulo 4.
func ShapeCells(s Shape, rotation int) [4]Offset {
	return shapeCells[s][((rotation%4)+4)%4]
}

// BoxSize returns the side length of the shape's bounding box.
func BoxSize(s Shape) int {
	return shapeBoxSize[s]
}

// SRS wall-kick tables. Each entry is a list of translations tried in
// order when rotating out of the indexed source rotation; the first
// non-colliding candidate wins. Y is negated relative to the published
// tables because the board's Y axis grows downward.

var kicksJLSTZCW = [4][5]Offset{
	0: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	1: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	2: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	3: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
}

var kicksJLSTZCCW = [4][5]Offset{
	0: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	1: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	2: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	3: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
}

var kicksICW = [4][5]Offset{
	0: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	1: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	2: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	3: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
}

var kicksICCW = [4][5]Offset{
	0: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	1: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	2: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	3: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
}

// KickOffsets returns the ordered wall-kick candidates for rotating the
// shape out of the given rotation in the given direction. The O piece
// rotates in place, so its only candidate is the identity offset.
func KickOffsets(s Shape, rotation int, dir RotationDir) [5]Offset {
	r := ((rotation % 4) + 4) % 4
	switch {
	case s == ShapeO:
		return [5]Offset{}
	case s == ShapeI && dir == RotateCW:
		return kicksICW[r]
	case s == ShapeI:
		return kicksICCW[r]
	case dir == RotateCW:
		return kicksJLSTZCW[r]
	default:
		return kicksJLSTZCCW[r]
	}
}
