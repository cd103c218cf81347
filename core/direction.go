package core

// Direction is one of the 8 compass neighbours, indexed clockwise from north
// Index order is fixed so Rotate can do modular arithmetic on it
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionCount is the size of the compass
const DirectionCount = 8

// Directions lists every direction in cyclic order
var Directions = [DirectionCount]Direction{
	North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
}

var directionOffsets = [DirectionCount]Point{
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
}

var directionNames = [DirectionCount]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

// Offset returns the unit vector for d
func (d Direction) Offset() Point {
	return directionOffsets[d%DirectionCount]
}

// Rotate turns d by n 45-degree steps, positive is clockwise
func (d Direction) Rotate(n int) Direction {
	idx := (int(d%DirectionCount) + n%DirectionCount + DirectionCount) % DirectionCount
	return Direction(idx)
}

func (d Direction) String() string {
	if d >= DirectionCount {
		return "invalid"
	}
	return directionNames[d]
}

// ParseDirection maps a compass name ("n", "se", ...) to its Direction
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return 0, false
}
