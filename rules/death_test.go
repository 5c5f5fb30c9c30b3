package rules

import (
	"testing"

	"github.com/battlesnakeio/snake/model"
	"github.com/stretchr/testify/require"
)

func TestDeathCauseWallCollision(t *testing.T) {
	snakes := []*model.Snake{
		model.NewSnakeFromBody([]model.Block{{X: 1, Y: 5}, {X: 2, Y: 5}}, model.Left),
		model.NewSnakeFromBody([]model.Block{{X: 18, Y: 5}, {X: 17, Y: 5}}, model.Right),
		model.NewSnakeFromBody([]model.Block{{X: 5, Y: 1}, {X: 5, Y: 2}}, model.Up),
		model.NewSnakeFromBody([]model.Block{{X: 5, Y: 18}, {X: 5, Y: 17}}, model.Down),
	}
	for _, s := range snakes {
		require.Equal(t, DeathCauseWallCollision, CheckForDeath(20, 20, s), "head %s heading %s", s.Head(), s.Direction())
	}
}

func TestDeathCauseSnakeSelfCollision(t *testing.T) {
	s := model.NewSnakeFromBody([]model.Block{
		{X: 4, Y: 4},
		{X: 3, Y: 4},
		{X: 3, Y: 3},
		{X: 4, Y: 3},
		{X: 5, Y: 3},
	}, model.Up)
	require.Equal(t, DeathCauseSnakeSelfCollision, CheckForDeath(20, 20, s))
}

func TestDeathCauseSelfBeforeWall(t *testing.T) {
	// a body cell on the ring is reported as a self collision
	s := model.NewSnakeFromBody([]model.Block{
		{X: 1, Y: 1},
		{X: 1, Y: 0},
	}, model.Up)
	require.Equal(t, DeathCauseSnakeSelfCollision, CheckForDeath(20, 20, s))
}

func TestNoDeath(t *testing.T) {
	s := model.NewSnakeFromBody([]model.Block{
		{X: 2, Y: 2},
		{X: 3, Y: 2},
		{X: 4, Y: 2},
	}, model.Left)
	require.Equal(t, "", CheckForDeath(20, 20, s))

	s.NewDirection(model.Up)
	require.Equal(t, "", CheckForDeath(20, 20, s))
}

func TestIsBorder(t *testing.T) {
	border := []model.Block{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 19, Y: 3}, {X: 7, Y: 0},
		{X: 7, Y: 14}, {X: 19, Y: 14}, {X: -1, Y: 5}, {X: 5, Y: 15},
	}
	for _, b := range border {
		require.True(t, IsBorder(b, 20, 15), "cell %s", b)
	}

	inside := []model.Block{{X: 1, Y: 1}, {X: 18, Y: 13}, {X: 10, Y: 7}}
	for _, b := range inside {
		require.False(t, IsBorder(b, 20, 15), "cell %s", b)
	}
}
