package rules

const (
	// DeathCauseSnakeSelfCollision is when the snake's next head lands on its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseWallCollision is when the snake's next head lands on the border ring
	DeathCauseWallCollision = "wall-collision"
)
