package commands

import (
	"fmt"
	"math"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault

	// each grid cell is two terminal columns wide so it looks square
	columnsPerCell = 2

	boardLeft = 2
	boardTop  = 2
)

// termCanvas rasterizes the game's pixel rectangles back onto grid cells and
// paints each cell as a pair of colored terminal columns.
type termCanvas struct {
	width  int
	height int
	cells  []render.Color
}

func newTermCanvas(width, height int) *termCanvas {
	return &termCanvas{
		width:  width,
		height: height,
		cells:  make([]render.Color, width*height),
	}
}

func (tc *termCanvas) clear(c render.Color) {
	for i := range tc.cells {
		tc.cells[i] = c
	}
}

// FillRect composites c over every cell the rectangle touches.
func (tc *termCanvas) FillRect(r render.Rect, c render.Color) {
	x0 := clamp(int(math.Floor(r.X/render.CellSize)), 0, tc.width)
	x1 := clamp(int(math.Ceil((r.X+r.W)/render.CellSize)), 0, tc.width)
	y0 := clamp(int(math.Floor(r.Y/render.CellSize)), 0, tc.height)
	y1 := clamp(int(math.Ceil((r.Y+r.H)/render.CellSize)), 0, tc.height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := y*tc.width + x
			tc.cells[i] = c.Over(tc.cells[i])
		}
	}
}

func (tc *termCanvas) at(x, y int) render.Color {
	return tc.cells[y*tc.width+x]
}

func (tc *termCanvas) flush(snap controller.Snapshot) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	renderTitle(boardLeft, boardTop, snap)
	for y := 0; y < tc.height; y++ {
		for x := 0; x < tc.width; x++ {
			attr := colorAttribute(tc.at(x, y))
			for col := 0; col < columnsPerCell; col++ {
				termbox.SetCell(boardLeft+x*columnsPerCell+col, boardTop+y, ' ', attr, attr)
			}
		}
	}
	renderHelp(boardLeft, boardTop+tc.height+1, snap)

	return termbox.Flush()
}

// colorAttribute maps a color onto the 6x6x6 cube of the 256 color palette.
// termbox numbers 256 color attributes from 1.
func colorAttribute(c render.Color) termbox.Attribute {
	r, g, b := cubeLevel(c.R), cubeLevel(c.G), cubeLevel(c.B)
	return termbox.Attribute(16 + 36*r + 6*g + b + 1)
}

func cubeLevel(v float32) int {
	return clamp(int(v*5+0.5), 0, 5)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func renderTitle(left, top int, snap controller.Snapshot) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake! - Turn %d - Length %d", snap.Turn, len(snap.Body)))
}

func renderHelp(left, top int, snap controller.Snapshot) {
	text := "arrows steer, esc quits"
	if snap.Status == rules.StatusGameOver {
		text = "game over, restarting..."
	}
	tbprint(left, top, defaultColor, defaultColor, text)
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
