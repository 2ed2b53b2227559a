package board

import (
	"svw.info/klotski/internal/geom"
)

// State is the pair that determines goal-reachability: the hole set and the
// per-id block placements. It is the unit of search-cycle detection.
type State struct {
	holes  map[geom.Vec2]struct{}
	blocks []Block // index i holds block id i+1
}

func newState(holes []geom.Vec2, blocks []Block) State {
	set := make(map[geom.Vec2]struct{}, len(holes))
	for _, h := range holes {
		set[h] = struct{}{}
	}
	return State{holes: set, blocks: blocks}
}

// Equal compares the hole set and every block placement, independent of any
// insertion or iteration order.
func (s State) Equal(o State) bool {
	if len(s.holes) != len(o.holes) || len(s.blocks) != len(o.blocks) {
		return false
	}
	for h := range s.holes {
		if _, ok := o.holes[h]; !ok {
			return false
		}
	}
	for i := range s.blocks {
		if s.blocks[i] != o.blocks[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical byte string identifying the state. Block anchors
// alone determine it: ids, sizes and the board rectangle are fixed for a
// puzzle instance, so the hole set is the complement of the block footprints.
func (s State) Key() string {
	buf := make([]byte, 0, len(s.blocks)*2)
	for _, b := range s.blocks {
		buf = append(buf, byte(b.Pos.X), byte(b.Pos.Y))
	}
	return string(buf)
}

func (s State) clone() State {
	holes := make(map[geom.Vec2]struct{}, len(s.holes))
	for h := range s.holes {
		holes[h] = struct{}{}
	}
	blocks := make([]Block, len(s.blocks))
	copy(blocks, s.blocks)
	return State{holes: holes, blocks: blocks}
}
