package model

import (
	"github.com/battlesnakeio/snake/random"
	"github.com/pkg/errors"
)

// ErrBoardTooSmall is returned when a snake of the requested length cannot be
// spawned clear of the walls.
var ErrBoardTooSmall = errors.New("board too small for snake")

// spawnMargin is the lowest coordinate a spawned segment may take: the border
// ring plus one free cell.
const spawnMargin = 2

// MinBoardSize is the smallest board edge that can hold a spawned snake of
// the given length.
func MinBoardSize(length int) int {
	return length + 2*spawnMargin
}

// NewSnake spawns a snake of length cells with a random heading. The body
// trails behind the head, so the snake already faces where it is going, and
// every segment keeps one free cell between itself and the border ring.
func NewSnake(length, width, height int, rng random.Source) (*Snake, error) {
	if length < 1 {
		return nil, errors.Errorf("snake length must be positive, got %d", length)
	}
	min := MinBoardSize(length)
	if width < min || height < min {
		return nil, errors.Wrapf(ErrBoardTooSmall, "%dx%d board cannot hold a snake of length %d (need at least %dx%d)",
			width, height, length, min, min)
	}

	dir := Directions[rng.Intn(len(Directions))]
	dx, dy := dir.Delta()
	start := Block{
		X: spawnCoord(rng, length, width, dx),
		Y: spawnCoord(rng, length, height, dy),
	}

	cells := make([]Block, 0, length)
	cell := start
	for i := 0; i < length; i++ {
		cells = append(cells, cell)
		cell = cell.Step(dir.Opposite())
	}
	return NewSnakeFromBody(cells, dir), nil
}

// spawnCoord draws the head coordinate on one axis. step is the heading's
// component on that axis; the body extends length-1 cells against it.
func spawnCoord(rng random.Source, length, dim, step int) int {
	lo, hi := spawnMargin, dim-spawnMargin
	switch {
	case step > 0:
		lo += length - 1
	case step < 0:
		hi -= length - 1
	}
	return random.Range(rng, lo, hi)
}
