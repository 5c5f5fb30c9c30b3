package model

import "fmt"

// Block is a single grid cell.
type Block struct {
	X int
	Y int
}

// Step returns the cell one step away in direction d.
func (b Block) Step(d Direction) Block {
	dx, dy := d.Delta()
	return Block{X: b.X + dx, Y: b.Y + dy}
}

func (b Block) String() string {
	return fmt.Sprintf("(%d, %d)", b.X, b.Y)
}
