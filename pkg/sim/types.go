package sim

import (
	"fmt"
	"time"

	"github.com/trytobebee/snakegrow/pkg/config"
)

// Snake represents the simulated snake's current size and coat color
type Snake struct {
	Length int   `json:"length"`
	Girth  int   `json:"girth"`
	Color  Color `json:"color"`
}

// NewSnake returns a snake at the configured starting size, wearing
// the first palette color
func NewSnake() Snake {
	return Snake{
		Length: config.InitialLength,
		Girth:  config.InitialGirth,
		Color:  ColorRed,
	}
}

// Description returns a short description of the snake's current size
func (s Snake) Description() string {
	return fmt.Sprintf("The snake is now %d units long and %d units around.", s.Length, s.Girth)
}

// State returns the snake as a client-facing snapshot with the color
// resolved to its name
func (s Snake) State() SnakeState {
	return SnakeState{
		Length: s.Length,
		Girth:  s.Girth,
		Color:  s.Color.String(),
	}
}

// Apple represents one growth event: how much longer and fatter the
// snake gets when it eats
type Apple struct {
	LengthGain int `json:"lengthGain"`
	GirthGain  int `json:"girthGain"`
}

// Validate rejects apples with negative growth values
func (a Apple) Validate() error {
	if a.LengthGain < 0 || a.GirthGain < 0 {
		return ErrNegativeGain
	}
	return nil
}

// SnakeState is a DTO for snake snapshots sent to clients and written
// to run records
type SnakeState struct {
	Length int    `json:"length"`
	Girth  int    `json:"girth"`
	Color  string `json:"color"`
}

// StepRecord is one line of a recorded run: the apple eaten and the
// snake immediately after eating it
type StepRecord struct {
	Step  int        `json:"step"`
	Apple Apple      `json:"apple"`
	Snake SnakeState `json:"snake"`
}

// RunSummary describes one completed simulation run for persistence
type RunSummary struct {
	SessionID   string    `json:"sessionId"`
	Apples      int       `json:"apples"`
	LengthGain  int       `json:"lengthGain"`
	GirthGain   int       `json:"girthGain"`
	FinalLength int       `json:"finalLength"`
	FinalGirth  int       `json:"finalGirth"`
	FinalColor  string    `json:"finalColor"`
	CreatedAt   time.Time `json:"createdAt"`
}
