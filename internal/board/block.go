package board

import (
	"fmt"

	"svw.info/klotski/internal/geom"
)

// Block is a rigid rectangular piece. Pos is the top-left cell; Size is one
// of (1,1), (2,1), (1,2), (2,2).
type Block struct {
	ID   int8      `json:"id"`
	Pos  geom.Vec2 `json:"pos"`
	Size geom.Vec2 `json:"size"`
}

// Move slides one block a single cell in one direction.
type Move struct {
	ID  int8
	Dir geom.Dir
}

func (m Move) String() string { return fmt.Sprintf("%d%s", m.ID, m.Dir) }

// blockFromCells derives a block from its occupied cells. The cells must be
// sorted in row-major order and form one of the four legal rectangles.
func blockFromCells(id int8, cells []geom.Vec2) (Block, error) {
	switch len(cells) {
	case 1:
		return Block{ID: id, Pos: cells[0], Size: geom.V(1, 1)}, nil
	case 2:
		pos := cells[0]
		var size geom.Vec2
		switch cells[1] {
		case pos.Add(geom.V(1, 0)):
			size = geom.V(2, 1)
		case pos.Add(geom.V(0, 1)):
			size = geom.V(1, 2)
		default:
			return Block{}, fmt.Errorf("%w: id %d cells are not adjacent", ErrMalformedBlock, id)
		}
		return Block{ID: id, Pos: pos, Size: size}, nil
	case 4:
		pos := cells[0]
		for i, delta := range []geom.Vec2{geom.V(1, 0), geom.V(0, 1), geom.V(1, 1)} {
			if cells[i+1] != pos.Add(delta) {
				return Block{}, fmt.Errorf("%w: id %d cells do not form a square", ErrMalformedBlock, id)
			}
		}
		return Block{ID: id, Pos: pos, Size: geom.V(2, 2)}, nil
	default:
		return Block{}, fmt.Errorf("%w: id %d covers %d cells, allowed values are 1, 2, 4",
			ErrMalformedBlock, id, len(cells))
	}
}
