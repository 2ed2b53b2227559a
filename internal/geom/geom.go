package geom

import "fmt"

// Vec2 is an integer 2D coordinate, used both as a position and as a
// displacement. Components stay within int8 range by construction: boards
// never grow beyond a few dozen cells per side.
type Vec2 struct {
	X int8 `json:"x"`
	Y int8 `json:"y"`
}

// V builds a Vec2.
func V(x, y int8) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the componentwise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }

// Dir is one of the four cardinal sliding directions.
type Dir uint8

const (
	Up Dir = iota
	Down
	Left
	Right
)

// Vec returns the unit displacement for d. Y grows downward.
func (d Dir) Vec() Vec2 {
	switch d {
	case Up:
		return Vec2{0, -1}
	case Down:
		return Vec2{0, 1}
	case Left:
		return Vec2{-1, 0}
	default:
		return Vec2{1, 0}
	}
}

// Inverse returns the opposite direction.
func (d Dir) Inverse() Dir {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Dir) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	default:
		return "R"
	}
}

// Dirs lists all cardinal directions in a fixed order.
var Dirs = [4]Dir{Up, Down, Left, Right}

// ParseDir maps a single letter (U, D, L, R) to a direction.
func ParseDir(c byte) (Dir, error) {
	switch c {
	case 'U', 'u':
		return Up, nil
	case 'D', 'd':
		return Down, nil
	case 'L', 'l':
		return Left, nil
	case 'R', 'r':
		return Right, nil
	}
	return Up, fmt.Errorf("invalid direction %q", string(c))
}
