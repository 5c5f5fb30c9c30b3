package controller

import (
	"time"

	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
)

// Update advances the game by one tick if the tick timer has fired, and does
// nothing otherwise. Ticks fire on the first call at or after the deadline,
// so their spacing is only as regular as the caller.
func (g *Game) Update() {
	now := g.clock.Now()
	if now.Before(g.nextMove) {
		return
	}
	defer instrument()()
	g.tick(now)
}

// tick runs one step of the game:
//  1. restart if the previous game is over
//  2. place food if there is none
//  3. grow if the next head lands on the food
//  4. schedule the next tick
//  5. end the game if the next head is lethal, otherwise move
func (g *Game) tick(now time.Time) {
	if g.status == rules.StatusGameOver {
		g.restart()
	}
	g.turn++
	ticks.Inc()

	if !g.hasFood {
		g.placeFood()
	}

	if g.ateFood() {
		g.snake.Grow()
		g.hasFood = false
		foodEaten.Inc()
		g.fields().WithFields(log.Fields{
			"Food":   g.food,
			"Length": g.snake.Len(),
		}).Debug("snake ate")
	}

	g.nextMove = now.Add(MoveRate)

	if cause := rules.CheckForDeath(g.width, g.height, g.snake); cause != "" {
		g.status = rules.StatusGameOver
		g.cause = cause
		g.nextMove = now.Add(GameOverRate)
		gamesOver.WithLabelValues(cause).Inc()
		g.fields().WithFields(log.Fields{
			"Cause":  cause,
			"Length": g.snake.Len(),
			"Head":   g.snake.Head(),
		}).Info("game over")
		return
	}

	g.snake.Move()
	g.fields().WithField("Head", g.snake.Head()).Debug("snake moved")
}

func (g *Game) placeFood() {
	food, ok := rules.PlaceFood(g.width, g.height, g.snake, g.rng)
	if !ok {
		g.fields().Warn("no free cell left for food")
		return
	}
	g.food = food
	g.hasFood = true
	g.fields().WithField("Food", food).Debug("food placed")
}

func (g *Game) ateFood() bool {
	return g.hasFood && g.snake.NextHead() == g.food
}
