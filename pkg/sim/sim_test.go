package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEatApple_GrowthArithmetic(t *testing.T) {
	snake := NewSnake()
	apple := Apple{LengthGain: 2, GirthGain: 3}

	for k := 1; k <= 10; k++ {
		var err error
		snake, err = snake.EatApple(apple)
		require.NoError(t, err)

		assert.Equal(t, 1+k*2, snake.Length, "length after %d apples", k)
		assert.Equal(t, 1+k*3, snake.Girth, "girth after %d apples", k)
	}
}

func TestEatApple_ColorWrapsAroundPalette(t *testing.T) {
	snake := NewSnake()
	apple := Apple{LengthGain: 1, GirthGain: 1}

	// Color after the k-th apple is palette[k mod paletteSize]
	for k := 1; k <= 2*PaletteSize+1; k++ {
		var err error
		snake, err = snake.EatApple(apple)
		require.NoError(t, err)

		assert.Equal(t, Color(k%PaletteSize), snake.Color, "color after %d apples", k)
	}
}

func TestEatApple_DoesNotMutateInput(t *testing.T) {
	before := NewSnake()
	_, err := before.EatApple(Apple{LengthGain: 5, GirthGain: 5})
	require.NoError(t, err)

	assert.Equal(t, NewSnake(), before, "input snake must be unchanged")
}

func TestEatApple_RejectsNegativeGains(t *testing.T) {
	snake := NewSnake()

	_, err := snake.EatApple(Apple{LengthGain: -1, GirthGain: 1})
	assert.ErrorIs(t, err, ErrNegativeGain)

	_, err = snake.EatApple(Apple{LengthGain: 1, GirthGain: -1})
	assert.ErrorIs(t, err, ErrNegativeGain)

	// Zero gains are fine: the snake just cycles colors
	grown, err := snake.EatApple(Apple{})
	assert.NoError(t, err)
	assert.Equal(t, snake.Length, grown.Length)
	assert.Equal(t, snake.Girth, grown.Girth)
	assert.Equal(t, snake.Color.Next(), grown.Color)
}

func TestRun_StepCountMatchesApples(t *testing.T) {
	for _, apples := range []int{0, 1, 2, 7, 25} {
		simulator := NewSimulator(NewSnake())

		var steps []StepRecord
		err := simulator.Run(apples, Apple{LengthGain: 1, GirthGain: 1}, func(rec StepRecord) {
			steps = append(steps, rec)
		})
		require.NoError(t, err)

		assert.Len(t, steps, apples, "one step per apple for apples=%d", apples)
		assert.Equal(t, apples, simulator.Eaten)
		for i, rec := range steps {
			assert.Equal(t, i+1, rec.Step, "steps arrive in eating order")
		}
	}
}

func TestRun_ZeroApplesLeavesSnakeUntouched(t *testing.T) {
	simulator := NewSimulator(NewSnake())

	called := false
	err := simulator.Run(0, Apple{LengthGain: 2, GirthGain: 3}, func(StepRecord) { called = true })

	require.NoError(t, err)
	assert.False(t, called, "no steps for zero apples")
	assert.Equal(t, NewSnake(), simulator.Snake)
}

func TestRun_RejectsInvalidInputBeforeAnyStep(t *testing.T) {
	simulator := NewSimulator(NewSnake())

	called := false
	err := simulator.Run(-1, Apple{LengthGain: 1, GirthGain: 1}, func(StepRecord) { called = true })
	assert.ErrorIs(t, err, ErrNegativeApples)
	assert.False(t, called)

	err = simulator.Run(3, Apple{LengthGain: -2, GirthGain: 1}, func(StepRecord) { called = true })
	assert.ErrorIs(t, err, ErrNegativeGain)
	assert.False(t, called)
	assert.Equal(t, 0, simulator.Eaten, "nothing eaten on invalid input")
}

// TestRun_ConcreteScenario pins the documented example: two apples with
// gains (2, 3) from a (1, 1) snake
func TestRun_ConcreteScenario(t *testing.T) {
	simulator := NewSimulator(NewSnake())

	var steps []StepRecord
	err := simulator.Run(2, Apple{LengthGain: 2, GirthGain: 3}, func(rec StepRecord) {
		steps = append(steps, rec)
	})
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, SnakeState{Length: 3, Girth: 4, Color: "orange"}, steps[0].Snake)
	assert.Equal(t, SnakeState{Length: 5, Girth: 7, Color: "yellow"}, steps[1].Snake)
}

func TestFeed_RecordsAppleAndState(t *testing.T) {
	simulator := NewSimulator(NewSnake())
	apple := Apple{LengthGain: 4, GirthGain: 1}

	rec, err := simulator.Feed(apple)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Step)
	assert.Equal(t, apple, rec.Apple)
	assert.Equal(t, SnakeState{Length: 5, Girth: 2, Color: "orange"}, rec.Snake)
}

func TestReset_RestoresInitialState(t *testing.T) {
	initial := Snake{Length: 5, Girth: 2, Color: ColorRed}
	simulator := NewSimulator(initial)

	require.NoError(t, simulator.Run(4, Apple{LengthGain: 1, GirthGain: 1}, nil))
	require.Equal(t, 4, simulator.Eaten)

	simulator.Reset(initial)
	assert.Equal(t, initial, simulator.Snake)
	assert.Equal(t, 0, simulator.Eaten)
}

func TestSummary_ReflectsFinalState(t *testing.T) {
	simulator := NewSimulator(NewSnake())
	apple := Apple{LengthGain: 2, GirthGain: 3}
	require.NoError(t, simulator.Run(2, apple, nil))

	sum := simulator.Summary("abc123", apple)

	assert.Equal(t, "abc123", sum.SessionID)
	assert.Equal(t, 2, sum.Apples)
	assert.Equal(t, 2, sum.LengthGain)
	assert.Equal(t, 3, sum.GirthGain)
	assert.Equal(t, 5, sum.FinalLength)
	assert.Equal(t, 7, sum.FinalGirth)
	assert.Equal(t, "yellow", sum.FinalColor)
	assert.False(t, sum.CreatedAt.IsZero())
}

func TestDescription_MentionsBothDimensions(t *testing.T) {
	s := Snake{Length: 7, Girth: 10, Color: ColorGreen}
	assert.Equal(t, "The snake is now 7 units long and 10 units around.", s.Description())
}
