package render

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	// BackgroundColor fills the window before each frame.
	BackgroundColor = Color{R: 0.5, G: 0.5, B: 0.5, A: 1.0}
	// BorderColor is the outer ring of the board.
	BorderColor = Color{R: 0.2, G: 0.2, B: 0.2, A: 1.0}
	// GameOverColor tints the whole board while the game is over.
	GameOverColor = Color{R: 1.0, G: 0.0, B: 0.0, A: 0.4}
	// FoodColor is the food cell.
	FoodColor = Color{R: 1.0, G: 0.0, B: 0.0, A: 1.0}
	// SnakeColor is every snake segment.
	SnakeColor = Color{R: 0.0, G: 1.0, B: 0.2, A: 1.0}
)

// Over composites c on top of dst using c's alpha. The result is opaque when
// dst is.
func (c Color) Over(dst Color) Color {
	a := c.A
	return Color{
		R: c.R*a + dst.R*(1-a),
		G: c.G*a + dst.G*(1-a),
		B: c.B*a + dst.B*(1-a),
		A: a + dst.A*(1-a),
	}
}
