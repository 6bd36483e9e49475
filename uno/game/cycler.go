package game

import "fmt"

// Direction is the step applied to the turn pointer.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Cycler walks seat indexes 0..size-1 in either direction, wrapping at both ends.
type Cycler struct {
	size      int
	current   int
	direction Direction
}

func NewCycler(size int) *Cycler {
	if size <= 0 {
		panic(fmt.Sprintf("cycler needs at least one element, got %d", size))
	}
	return &Cycler{
		size:      size,
		current:   0,
		direction: Forward,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

func (c *Cycler) Size() int {
	return c.size
}

func (c *Cycler) ForEach(function func(int)) {
	for index := 0; index < c.size; index++ {
		function(index)
	}
}

// Peek returns the index Next would move to.
func (c *Cycler) Peek() int {
	return (c.current + int(c.direction) + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case Forward:
		c.direction = Backward
	case Backward:
		c.direction = Forward
	}
}

func (c *Cycler) moveTo(index int) {
	if index < 0 || index >= c.size {
		panic(fmt.Sprintf("seat %d out of range [0, %d)", index, c.size))
	}
	c.current = index
}
