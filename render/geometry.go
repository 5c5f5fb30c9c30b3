// Package render turns grid state into filled rectangles. It holds no game
// logic: callers hand it grid coordinates and a Canvas to draw on.
package render

// CellSize is the edge length of one grid cell in pixels.
const CellSize = 25.0

// ToPixels converts a grid coordinate to a pixel coordinate.
func ToPixels(coord int) float64 {
	return float64(coord) * CellSize
}
