package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"svw.info/klotski/internal/geom"
	"svw.info/klotski/internal/grid"
)

// ErrBadFormat reports text that does not follow the board format: a
// "rows cols" header line followed by rows lines of cols whitespace-separated
// block ids, 0 marking an empty cell.
var ErrBadFormat = errors.New("bad board format")

// Parse reads a board from its textual form.
func Parse(input string) (*Board, error) {
	lines := strings.Split(strings.TrimRight(input, "\n \t"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("%w: missing size line", ErrBadFormat)
	}
	size, err := parseSize(lines[0])
	if err != nil {
		return nil, err
	}
	if len(lines)-1 < int(size.Y) {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrBadFormat, size.Y, len(lines)-1)
	}

	cells := make([]int8, 0, int(size.X)*int(size.Y))
	for y := 0; y < int(size.Y); y++ {
		fields := strings.Fields(lines[y+1])
		if len(fields) != int(size.X) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrBadFormat, y, len(fields), size.X)
		}
		for _, field := range fields {
			id, err := strconv.ParseInt(field, 10, 8)
			if err != nil || id < 0 {
				return nil, fmt.Errorf("%w: invalid block id %q in row %d", ErrBadFormat, field, y)
			}
			cells = append(cells, int8(id))
		}
	}

	g, err := grid.FromCells(size, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	return FromGrid(g)
}

func parseSize(line string) (geom.Vec2, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return geom.Vec2{}, fmt.Errorf("%w: first line should be the row & column count", ErrBadFormat)
	}
	rows, err := strconv.ParseInt(fields[0], 10, 8)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("%w: invalid row count %q", ErrBadFormat, fields[0])
	}
	cols, err := strconv.ParseInt(fields[1], 10, 8)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("%w: invalid column count %q", ErrBadFormat, fields[1])
	}
	if rows <= 0 || cols <= 0 {
		return geom.Vec2{}, fmt.Errorf("%w: board must have positive dimensions", ErrBadFormat)
	}
	return geom.V(int8(cols), int8(rows)), nil
}

// String renders the board back into the textual format Parse accepts.
func (b *Board) String() string {
	size := b.grid.Size()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", size.Y, size.X)
	for y := int8(0); y < size.Y; y++ {
		for x, id := range b.grid.Row(y) {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(id)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
