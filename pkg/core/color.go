package core

import "fmt"

// Color is an 8-bit RGB triple as consumed by the renderer
type Color [3]uint8

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{r, g, b}
}

// White is the fixed color of reflective and refractive materials
var White = NewColor(255, 255, 255)

// ColorFromInts builds a Color from a 3-element slice, rejecting channels outside [0, 255]
func ColorFromInts(values []int) (Color, error) {
	if len(values) != 3 {
		return Color{}, fmt.Errorf("expected 3 channels, got %d", len(values))
	}
	var c Color
	for i, v := range values {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("channel %d out of range: %d", i, v)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

// Ints returns the channels as a 3-element int slice
func (c Color) Ints() []int {
	return []int{int(c[0]), int(c[1]), int(c[2])}
}
