package commands

import (
	"context"
	"io/ioutil"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/random"
	"github.com/battlesnakeio/snake/render"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal, arrow keys steer and esc quits",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return play(context.Background())
	},
}

// keyHandler is the part of the game the event loop feeds.
type keyHandler interface {
	HandleKey(controller.Key)
}

func play(ctx context.Context) error {
	// termbox owns the terminal, logs only go to --log-file
	closeLog, err := redirectLogs(ioutil.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	prometheus()

	game, err := controller.New(controller.Config{
		Width:  controller.DefaultWidth,
		Height: controller.DefaultHeight,
		Rand:   random.New(seed),
	})
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output256)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventQueue := setupEventQueue(ctx)
	limiter := rate.NewLimiter(config.FrameRate, config.FrameBurst)
	canvas := newTermCanvas(controller.DefaultWidth, controller.DefaultHeight)

	for {
		if err = limiter.Wait(ctx); err != nil {
			return err
		}

		quit, err := drainEvents(eventQueue, game)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		canvas.clear(render.BackgroundColor)
		game.Render(canvas)
		if err = canvas.flush(game.Snapshot()); err != nil {
			return err
		}
	}
}

// setupEventQueue moves the blocking termbox.PollEvent onto its own goroutine.
// Events are only consumed by the frame loop.
func setupEventQueue(ctx context.Context) <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			e := termbox.PollEvent()
			select {
			case ev <- e:
			case <-ctx.Done():
				return
			}
		}
	}(eventQueue)
	return eventQueue
}

// drainEvents hands every pending key press to the game without blocking. It
// reports true when the player asked to quit.
func drainEvents(eventQueue <-chan termbox.Event, game keyHandler) (bool, error) {
	for {
		select {
		case ev := <-eventQueue:
			switch ev.Type {
			case termbox.EventError:
				return false, ev.Err
			case termbox.EventKey:
				if isQuit(ev) {
					return true, nil
				}
				game.HandleKey(translateKey(ev))
			}
		default:
			return false, nil
		}
	}
}

func isQuit(ev termbox.Event) bool {
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q'
}

func translateKey(ev termbox.Event) controller.Key {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return controller.KeyUp
	case termbox.KeyArrowDown:
		return controller.KeyDown
	case termbox.KeyArrowLeft:
		return controller.KeyLeft
	case termbox.KeyArrowRight:
		return controller.KeyRight
	}
	return controller.KeyUnknown
}
