package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/battlesnakeio/snake/clock"
	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/random"
	"github.com/battlesnakeio/snake/render"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	simGames    = 10
	simMaxTurns = 1000
	simDump     = false
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "plays headless games with an autopilot and reports how they ended",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		closeLog, err := redirectLogs(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		prometheus()

		_, err = simulate(os.Stdout, seed, simGames, simMaxTurns, simDump)
		return err
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simGames, "games", simGames, "number of games to play")
	simulateCmd.Flags().IntVar(&simMaxTurns, "max-turns", simMaxTurns, "turns after which a game is abandoned")
	simulateCmd.Flags().BoolVar(&simDump, "dump", simDump, "dump the final state of every game")
}

// result is how one simulated game ended. An empty Cause means the game hit
// the turn limit.
type result struct {
	ID     string
	Turns  int64
	Length int
	Cause  string
}

// simulate plays games one after the other on a mock clock, so a run takes no
// wall time and a fixed seed always yields the same games.
func simulate(out io.Writer, seed int64, games, maxTurns int, dump bool) ([]result, error) {
	if games < 1 {
		return nil, errors.Errorf("games must be positive, got %d", games)
	}
	if maxTurns < 1 {
		return nil, errors.Errorf("max-turns must be positive, got %d", maxTurns)
	}

	rng := random.New(seed)
	clk := clock.NewMock(time.Unix(0, 0))
	canvas := &render.Recorder{}

	results := make([]result, 0, games)
	for i := 0; i < games; i++ {
		game, err := controller.New(controller.Config{
			Width:  controller.DefaultWidth,
			Height: controller.DefaultHeight,
			Clock:  clk,
			Rand:   rng,
		})
		if err != nil {
			return nil, err
		}

		snap := playOut(game, clk, canvas, maxTurns)
		res := result{
			ID:     snap.ID,
			Turns:  snap.Turn,
			Length: len(snap.Body),
			Cause:  snap.Cause,
		}
		results = append(results, res)

		log.WithFields(log.Fields{
			"GameID": res.ID,
			"Turns":  res.Turns,
			"Length": res.Length,
			"Cause":  res.Cause,
		}).Info("simulated game finished")

		cause := res.Cause
		if cause == "" {
			cause = "turn limit"
		}
		fmt.Fprintf(out, "game %d: %d turns, length %d, %s\n", i+1, res.Turns, res.Length, cause)
		if dump {
			spew.Fdump(out, snap)
		}
	}
	return results, nil
}

// playOut runs one game until it is over or maxTurns ticks have passed. The
// game is not left to restart.
func playOut(game *controller.Game, clk *clock.Mock, canvas *render.Recorder, maxTurns int) controller.Snapshot {
	snap := game.Snapshot()
	for snap.Turn < int64(maxTurns) && !game.Over() {
		clk.Set(snap.NextMove)
		game.HandleKey(autopilot(snap))
		canvas.Reset()
		game.Render(canvas)
		snap = game.Snapshot()
	}
	return snap
}
