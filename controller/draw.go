package controller

import "github.com/battlesnakeio/snake/render"

// Render advances the game if a tick is due and then draws it.
func (g *Game) Render(c render.Canvas) {
	g.Update()
	g.Draw(c)
}

// Draw emits the current board: the game over tint, the border, the food and
// the snake, in that order. The border is decoration only; collisions use
// rules.IsBorder.
func (g *Game) Draw(c render.Canvas) {
	if g.Over() {
		render.DrawRectangle(c, render.GameOverColor, 0, 0, g.width, g.height)
	}

	render.DrawRectangle(c, render.BorderColor, 0, 0, g.width, 1)
	render.DrawRectangle(c, render.BorderColor, 0, 1, 1, g.height-1)
	render.DrawRectangle(c, render.BorderColor, g.width-1, 1, 1, g.height-1)
	render.DrawRectangle(c, render.BorderColor, 1, g.height-1, g.width-2, 1)

	if g.hasFood {
		render.DrawBlock(c, render.FoodColor, g.food.X, g.food.Y)
	}
	g.snake.Draw(c)
}
