package domain

// Puzzle is a persisted sliding-block puzzle with metadata. Board holds the
// textual grid format ("rows cols" header plus rows of block ids).
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Board     string `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
