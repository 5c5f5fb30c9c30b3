// Package controller runs a single snake game. It owns the snake, the food and
// the tick timer, advances the simulation when the timer fires and draws the
// board every frame. Hosts call Render once per frame and HandleKey once per
// key press, both from the same goroutine.
package controller

import (
	"time"

	"github.com/battlesnakeio/snake/clock"
	"github.com/battlesnakeio/snake/model"
	"github.com/battlesnakeio/snake/random"
	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// MoveRate is the time between two moves.
	MoveRate = 200 * time.Millisecond
	// GameOverRate is how long a finished game stays on screen before restarting.
	GameOverRate = 2000 * time.Millisecond
	// SnakeLength is the length of a freshly spawned snake.
	SnakeLength = 3

	// DefaultWidth and DefaultHeight are the board size used by the CLI, in cells.
	DefaultWidth  = 30
	DefaultHeight = 30
)

// Config holds the board size and the collaborators of a Game. Nil
// collaborators fall back to the system clock, a time-seeded source and the
// standard logger.
type Config struct {
	Width  int
	Height int
	Clock  clock.Clock
	Rand   random.Source
	Logger *log.Logger
}

// Game is one play session. It is restarted in place after a game over.
type Game struct {
	id      string
	snake   *model.Snake
	food    model.Block
	hasFood bool
	status  rules.Status
	cause   string
	turn    int64

	nextMove time.Time
	width    int
	height   int

	clock  clock.Clock
	rng    random.Source
	logger *log.Logger
}

// New creates a game with a freshly spawned snake. The first move happens
// MoveRate after creation. It fails when the board cannot hold the snake.
func New(cfg Config) (*Game, error) {
	g := &Game{
		width:  cfg.Width,
		height: cfg.Height,
		clock:  cfg.Clock,
		rng:    cfg.Rand,
		logger: cfg.Logger,
	}
	if g.clock == nil {
		g.clock = clock.System{}
	}
	if g.rng == nil {
		g.rng = random.New(0)
	}
	if g.logger == nil {
		g.logger = log.StandardLogger()
	}

	if err := g.reset(); err != nil {
		return nil, errors.Wrap(err, "controller: unable to create game")
	}
	g.nextMove = g.clock.Now().Add(MoveRate)
	return g, nil
}

// reset spawns a new snake and clears food and game over. The board size is
// kept.
func (g *Game) reset() error {
	snake, err := model.NewSnake(SnakeLength, g.width, g.height, g.rng)
	if err != nil {
		return err
	}
	g.id = uuid.NewV4().String()
	g.snake = snake
	g.hasFood = false
	g.status = rules.StatusRunning
	g.cause = ""
	g.turn = 0

	g.fields().WithFields(log.Fields{
		"Width":     g.width,
		"Height":    g.height,
		"Direction": snake.Direction(),
		"Head":      snake.Head(),
	}).Info("game started")
	return nil
}

func (g *Game) restart() {
	previous := g.id
	// same dimensions that New accepted, so this cannot fail
	if err := g.reset(); err != nil {
		panic(errors.Wrap(err, "controller: restart failed"))
	}
	g.fields().WithField("PreviousGameID", previous).Info("game restarted")
}

func (g *Game) fields() *log.Entry {
	return g.logger.WithFields(log.Fields{
		"GameID": g.id,
		"Turn":   g.turn,
	})
}

// ID identifies the current session. It changes on restart.
func (g *Game) ID() string { return g.id }

// Snake exposes the snake being played.
func (g *Game) Snake() *model.Snake { return g.snake }

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (model.Block, bool) { return g.food, g.hasFood }

// Over reports whether the game is in its game over grace period.
func (g *Game) Over() bool { return g.status == rules.StatusGameOver }

// Snapshot is a copy of a game's state at one instant.
type Snapshot struct {
	ID        string
	Turn      int64
	Status    rules.Status
	Cause     string
	Body      []model.Block
	Direction model.Direction
	Food      model.Block
	HasFood   bool
	Width     int
	Height    int
	NextMove  time.Time
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:        g.id,
		Turn:      g.turn,
		Status:    g.status,
		Cause:     g.cause,
		Body:      g.snake.Body(),
		Direction: g.snake.Direction(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Width:     g.width,
		Height:    g.height,
		NextMove:  g.nextMove,
	}
}
