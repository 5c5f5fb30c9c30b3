package rules

import "github.com/battlesnakeio/snake/model"

// CheckForDeath looks at where the snake is about to step and returns why that
// step would kill it, or an empty string when the step is safe. Possible
// causes are running into its own body or onto the border ring.
func CheckForDeath(width, height int, s *model.Snake) string {
	next := s.NextHead()
	if deathByBodyCollision(s, next) {
		return DeathCauseSnakeSelfCollision
	}
	if deathByBorder(next, width, height) {
		return DeathCauseWallCollision
	}
	return ""
}

// IsBorder reports whether c is on, or outside, the outermost ring of cells.
func IsBorder(c model.Block, width, height int) bool {
	return c.X <= 0 || c.Y <= 0 || c.X >= width-1 || c.Y >= height-1
}

func deathByBodyCollision(s *model.Snake, head model.Block) bool {
	return s.BadTouch(head)
}

func deathByBorder(head model.Block, width, height int) bool {
	return IsBorder(head, width, height)
}
