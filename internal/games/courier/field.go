package courier

import "math/rand"

// Depot is the fixed-row delivery target. Its column changes after every
// successful delivery.
type Depot struct {
	Col int
}

func (d *Depot) cell() Cell {
	return Cell{Col: d.Col, Row: RowDepot}
}

// relocate moves the depot to a different random column.
func (d *Depot) relocate(rng *rand.Rand) {
	d.Col = randExcluding(rng, 0, BoardCols, d.Col)
}

// Rock is the static blocker on row 4. The courier's move validation
// consults it; like the depot it shifts after each delivery to keep the
// board layout fresh.
type Rock struct {
	Col int
}

func (r *Rock) cell() Cell {
	return Cell{Col: r.Col, Row: RowRock}
}

// blocks reports whether the rock occupies the given cell.
func (r *Rock) blocks(c Cell) bool {
	return c == r.cell()
}

// relocate moves the rock to a different random column.
func (r *Rock) relocate(rng *rand.Rand) {
	r.Col = randExcluding(rng, 0, BoardCols, r.Col)
}
