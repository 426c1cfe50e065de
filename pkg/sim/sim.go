package sim

import (
	"time"
)

// EatApple grows the snake by the apple's gains and advances its color
// one step along the palette. The snake is passed in and returned by
// value; there is no package-level simulation state.
func (s Snake) EatApple(a Apple) (Snake, error) {
	if err := a.Validate(); err != nil {
		return s, err
	}
	s.Length += a.LengthGain
	s.Girth += a.GirthGain
	s.Color = s.Color.Next()
	return s, nil
}

// StepFunc is called after each apple with the record of that step
type StepFunc func(rec StepRecord)

// Simulator drives a run: it owns the current snake and counts apples eaten
type Simulator struct {
	Snake Snake
	Eaten int
}

// NewSimulator creates a simulator starting from the given snake
func NewSimulator(initial Snake) *Simulator {
	return &Simulator{Snake: initial}
}

// Feed eats a single apple and returns the record of the step
func (sim *Simulator) Feed(a Apple) (StepRecord, error) {
	next, err := sim.Snake.EatApple(a)
	if err != nil {
		return StepRecord{}, err
	}
	sim.Snake = next
	sim.Eaten++
	return StepRecord{
		Step:  sim.Eaten,
		Apple: a,
		Snake: sim.Snake.State(),
	}, nil
}

// Reset puts the simulator back to the given snake with zero apples eaten
func (sim *Simulator) Reset(initial Snake) {
	sim.Snake = initial
	sim.Eaten = 0
}

// Run eats the same apple `apples` times, invoking fn after each step.
// Inputs are validated up front; no steps run and fn is never called
// when validation fails. fn may be nil.
func (sim *Simulator) Run(apples int, a Apple, fn StepFunc) error {
	if apples < 0 {
		return ErrNegativeApples
	}
	if err := a.Validate(); err != nil {
		return err
	}

	for i := 0; i < apples; i++ {
		rec, err := sim.Feed(a)
		if err != nil {
			return err
		}
		if fn != nil {
			fn(rec)
		}
	}
	return nil
}

// Summary returns a persistable summary of the run so far
func (sim *Simulator) Summary(sessionID string, a Apple) RunSummary {
	return RunSummary{
		SessionID:   sessionID,
		Apples:      sim.Eaten,
		LengthGain:  a.LengthGain,
		GirthGain:   a.GirthGain,
		FinalLength: sim.Snake.Length,
		FinalGirth:  sim.Snake.Girth,
		FinalColor:  sim.Snake.Color.String(),
		CreatedAt:   time.Now(),
	}
}
