package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestForEach(t *testing.T) {
	cycler := game.NewCycler(4)
	cycler.Next()
	cycler.Reverse()

	var visited []int
	cycler.ForEach(func(index int) {
		visited = append(visited, index)
	})

	require.Equal(t, []int{0, 1, 2, 3}, visited)
	require.Equal(t, 1, cycler.Current(), "ForEach must not move the pointer")
}

func TestNext(t *testing.T) {
	for size := 2; size <= 9; size++ {
		cycler := game.NewCycler(size)
		for step := 1; step <= 3*size; step++ {
			index := cycler.Next()
			require.GreaterOrEqual(t, index, 0)
			require.Equal(t, step%size, index)
		}
	}
}

func TestNextBackwardNeverGoesNegative(t *testing.T) {
	cycler := game.NewCycler(3)
	cycler.Reverse()
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(2)
	assert.Equal(t, 1, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, 1, cycler.Peek())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, game.Forward, cycler.Direction())
	cycler.Reverse()
	assert.Equal(t, game.Backward, cycler.Direction())
	cycler.Reverse()
	assert.Equal(t, game.Forward, cycler.Direction())
}

func TestNewCyclerRejectsEmptyTable(t *testing.T) {
	require.Panics(t, func() { game.NewCycler(0) })
}
