package render

// Rect is a rectangle in pixel space.
type Rect struct {
	X, Y, W, H float64
}

// Canvas is the drawing surface supplied by the host each frame.
type Canvas interface {
	FillRect(r Rect, c Color)
}

// DrawBlock fills the single grid cell at (x, y).
func DrawBlock(c Canvas, col Color, x, y int) {
	c.FillRect(Rect{
		X: ToPixels(x),
		Y: ToPixels(y),
		W: CellSize,
		H: CellSize,
	}, col)
}

// DrawRectangle fills a width x height cell area whose top left cell is (x, y).
func DrawRectangle(c Canvas, col Color, x, y, width, height int) {
	c.FillRect(Rect{
		X: ToPixels(x),
		Y: ToPixels(y),
		W: CellSize * float64(width),
		H: CellSize * float64(height),
	}, col)
}

// Call is one recorded FillRect.
type Call struct {
	Rect  Rect
	Color Color
}

// Recorder is a Canvas that keeps every call. It backs tests and headless runs.
type Recorder struct {
	Calls []Call
}

// FillRect records the call.
func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Calls = append(r.Calls, Call{Rect: rect, Color: c})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// WithColor returns the recorded calls drawn in c.
func (r *Recorder) WithColor(c Color) []Call {
	calls := []Call{}
	for _, call := range r.Calls {
		if call.Color == c {
			calls = append(calls, call)
		}
	}
	return calls
}
