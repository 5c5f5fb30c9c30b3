package rules

// Status is the state a game is in.
type Status string

const (
	// StatusRunning is a game in play
	StatusRunning Status = "running"
	// StatusGameOver is a game waiting out its grace period before restarting
	StatusGameOver Status = "game-over"
)
