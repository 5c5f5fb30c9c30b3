// Package model holds the snake: its body cells, heading, and the tail cell it
// last left behind so it can regrow after eating.
package model

import (
	"github.com/battlesnakeio/snake/render"
)

// Snake is an ordered body, head first, travelling in one direction.
type Snake struct {
	body    *body
	dir     Direction
	tail    Block
	hasTail bool
}

// NewSnakeFromBody builds a snake from explicit cells, head first.
func NewSnakeFromBody(cells []Block, dir Direction) *Snake {
	if len(cells) == 0 {
		panic("model: snake body must not be empty")
	}
	b := newBody(len(cells) * 2)
	for _, c := range cells {
		b.pushBack(c)
	}
	return &Snake{body: b, dir: dir}
}

// Head returns the first cell in the body.
func (s *Snake) Head() Block {
	h, ok := s.body.front()
	if !ok {
		panic("model: snake has no head")
	}
	return h
}

// Tail returns the last cell in the body.
func (s *Snake) Tail() Block {
	t, ok := s.body.back()
	if !ok {
		panic("model: snake has no tail")
	}
	return t
}

// Len is the number of body cells.
func (s *Snake) Len() int { return s.body.len() }

// Direction is the current heading.
func (s *Snake) Direction() Direction { return s.dir }

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []Block {
	cells := make([]Block, s.body.len())
	for i := range cells {
		cells[i] = s.body.at(i)
	}
	return cells
}

// RemovedTail returns the cell dropped by the last Move, if there was one.
func (s *Snake) RemovedTail() (Block, bool) { return s.tail, s.hasTail }

// BadTouch reports whether cell is occupied by any body segment.
func (s *Snake) BadTouch(cell Block) bool {
	for i := 0; i < s.body.len(); i++ {
		if s.body.at(i) == cell {
			return true
		}
	}
	return false
}

// NextHead returns where the head would be after one step. It does not change
// the snake.
func (s *Snake) NextHead() Block {
	return s.Head().Step(s.dir)
}

// Move advances the snake one cell, keeping its length. The cell given up at
// the back is remembered for Grow.
func (s *Snake) Move() {
	s.body.pushFront(s.NextHead())
	s.tail, s.hasTail = s.body.popBack()
}

// Grow re-attaches the cell given up by the last Move. Before any Move it does
// nothing.
func (s *Snake) Grow() {
	if !s.hasTail {
		return
	}
	s.body.pushBack(s.tail)
}

// NewDirection changes the heading unless dir would reverse the snake onto
// itself.
func (s *Snake) NewDirection(dir Direction) {
	if s.dir.Opposite() == dir {
		return
	}
	s.dir = dir
}

// Draw emits one block per body segment.
func (s *Snake) Draw(c render.Canvas) {
	for i := 0; i < s.body.len(); i++ {
		b := s.body.at(i)
		render.DrawBlock(c, render.SnakeColor, b.X, b.Y)
	}
}
