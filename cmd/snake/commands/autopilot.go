package commands

import (
	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/model"
	"github.com/battlesnakeio/snake/rules"
)

// autopilot picks the key for the next tick of a headless game: the safe
// heading that brings the head closest to the food. Without a safe heading it
// keeps going and lets the game end.
func autopilot(snap controller.Snapshot) controller.Key {
	if len(snap.Body) == 0 {
		return controller.KeyUnknown
	}
	head := snap.Body[0]

	best, bestDist := snap.Direction, -1
	for _, dir := range model.Directions {
		if dir == snap.Direction.Opposite() {
			continue
		}
		next := head.Step(dir)
		if rules.IsBorder(next, snap.Width, snap.Height) || occupied(snap.Body, next) {
			continue
		}
		dist := 0
		if snap.HasFood {
			dist = manhattan(next, snap.Food)
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && dir == snap.Direction) {
			best, bestDist = dir, dist
		}
	}
	return keyFor(best)
}

// occupied includes the tail: collisions are checked before the tail moves.
func occupied(body []model.Block, cell model.Block) bool {
	for _, b := range body {
		if b == cell {
			return true
		}
	}
	return false
}

func manhattan(a, b model.Block) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func keyFor(dir model.Direction) controller.Key {
	switch dir {
	case model.Up:
		return controller.KeyUp
	case model.Down:
		return controller.KeyDown
	case model.Left:
		return controller.KeyLeft
	case model.Right:
		return controller.KeyRight
	}
	return controller.KeyUnknown
}
