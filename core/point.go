package core

import "fmt"

// Point is a grid coordinate, X grows right and Y grows down
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Step returns the neighbouring point in direction d
func (p Point) Step(d Direction) Point {
	return p.Add(d.Offset())
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
