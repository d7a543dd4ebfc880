// internal/types/geometry.go
package types

// Point is a location in the canvas-local coordinate frame.
// X grows rightward, Y grows downward, both in abstract canvas units.
// Pointer events arriving from the presentation layer are already
// expressed in this frame; the core never queries layout geometry.
type Point struct {
	X float64
	Y float64
}

// Add returns p shifted by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is the extent of the canvas in canvas units.
type Size struct {
	Width  float64
	Height float64
}

// IsZero reports whether the size has no area.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Contains reports whether p falls inside a canvas of this size,
// treating the right and bottom edges as exclusive.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}
