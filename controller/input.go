package controller

import "github.com/battlesnakeio/snake/model"

// Key is a logical key delivered by the host.
type Key int

// Keys the game reacts to. Hosts map anything else to KeyUnknown.
const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// HandleKey steers the snake. The heading changes immediately, so only the
// last accepted key before the next tick matters. Reversals are dropped by
// the snake itself.
func (g *Game) HandleKey(k Key) {
	switch k {
	case KeyUp:
		g.snake.NewDirection(model.Up)
	case KeyDown:
		g.snake.NewDirection(model.Down)
	case KeyLeft:
		g.snake.NewDirection(model.Left)
	case KeyRight:
		g.snake.NewDirection(model.Right)
	}
}
