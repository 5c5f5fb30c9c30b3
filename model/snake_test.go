package model

import (
	"testing"

	"github.com/battlesnakeio/snake/render"
	"github.com/stretchr/testify/require"
)

func TestDirection_Opposite(t *testing.T) {
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Up, Down.Opposite())
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Left, Right.Opposite())
}

func TestSnake_NextHead(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  Block
	}{
		{Direction: Up, Expected: Block{X: 5, Y: 4}},
		{Direction: Down, Expected: Block{X: 5, Y: 6}},
		{Direction: Left, Expected: Block{X: 4, Y: 5}},
		{Direction: Right, Expected: Block{X: 6, Y: 5}},
	}

	for _, test := range tests {
		s := NewSnakeFromBody([]Block{{X: 5, Y: 5}}, test.Direction)
		require.Equal(t, test.Expected, s.NextHead(), "Direction: %s", test.Direction)
		// pure: asking twice gives the same answer and leaves the body alone
		require.Equal(t, test.Expected, s.NextHead())
		require.Equal(t, []Block{{X: 5, Y: 5}}, s.Body())
	}
}

func TestSnake_Move(t *testing.T) {
	s := NewSnakeFromBody([]Block{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 3, Y: 5},
	}, Right)

	_, ok := s.RemovedTail()
	require.False(t, ok)

	s.Move()
	require.Equal(t, []Block{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, s.Body())
	require.Equal(t, 3, s.Len())

	tail, ok := s.RemovedTail()
	require.True(t, ok)
	require.Equal(t, Block{X: 3, Y: 5}, tail)
}

func TestSnake_GrowAfterMove(t *testing.T) {
	s := NewSnakeFromBody([]Block{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 5, Y: 7},
	}, Up)

	s.Move()
	s.Grow()
	require.Equal(t, 4, s.Len())
	require.Equal(t, Block{X: 5, Y: 7}, s.Tail())
	require.Equal(t, Block{X: 5, Y: 4}, s.Head())
}

func TestSnake_GrowBeforeMove(t *testing.T) {
	s := NewSnakeFromBody([]Block{{X: 5, Y: 5}, {X: 5, Y: 6}}, Up)
	s.Grow()
	require.Equal(t, 2, s.Len())
}

func TestSnake_BadTouch(t *testing.T) {
	s := NewSnakeFromBody([]Block{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 4, Y: 6},
	}, Right)

	for _, b := range s.Body() {
		require.True(t, s.BadTouch(b), "cell %s", b)
	}
	require.False(t, s.BadTouch(s.NextHead()))
	require.False(t, s.BadTouch(Block{X: 5, Y: 6}))
}

func TestSnake_NewDirection(t *testing.T) {
	for _, current := range Directions {
		for _, requested := range Directions {
			s := NewSnakeFromBody([]Block{{X: 5, Y: 5}}, current)
			s.NewDirection(requested)
			s.NewDirection(requested)
			if requested == current.Opposite() {
				require.Equal(t, current, s.Direction(), "%s -> %s", current, requested)
			} else {
				require.Equal(t, requested, s.Direction(), "%s -> %s", current, requested)
			}
		}
	}
}

func TestSnake_Draw(t *testing.T) {
	s := NewSnakeFromBody([]Block{{X: 2, Y: 1}, {X: 1, Y: 1}}, Right)
	rec := &render.Recorder{}
	s.Draw(rec)

	require.Len(t, rec.Calls, 2)
	require.Equal(t, render.Rect{X: 50, Y: 25, W: 25, H: 25}, rec.Calls[0].Rect)
	require.Equal(t, render.SnakeColor, rec.Calls[1].Color)
}

func TestNewSnakeFromBody_Empty(t *testing.T) {
	require.Panics(t, func() { NewSnakeFromBody(nil, Up) })
}
