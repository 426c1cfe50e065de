package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/trytobebee/snakegrow/pkg/config"
	"github.com/trytobebee/snakegrow/pkg/input"
	"github.com/trytobebee/snakegrow/pkg/renderer"
	"github.com/trytobebee/snakegrow/pkg/sim"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the CLI driver; it returns the process exit code so tests can
// drive it with arbitrary arguments and output sinks
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("snakegrow", flag.ContinueOnError)
	flags.SetOutput(stderr)

	apples := flags.Int("apples", config.DefaultApples, "Number of apples the snake eats")
	lengthGain := flags.Int("length-gain", config.DefaultLengthGain, "Length added per apple")
	girthGain := flags.Int("girth-gain", config.DefaultGirthGain, "Girth added per apple")
	initialLength := flags.Int("initial-length", config.InitialLength, "Starting length")
	initialGirth := flags.Int("initial-girth", config.InitialGirth, "Starting girth")
	delay := flags.Duration("delay", 0, "Pause between apples (e.g. 400ms)")
	record := flags.Bool("record", false, "Record each step to a jsonl file under records/")
	save := flags.Bool("save", false, "Persist the run summary to the history database")
	interactive := flags.Bool("interactive", false, "Feed apples by keyboard instead of a fixed count")
	art := flags.Bool("art", false, "Draw the snake after each apple")
	plain := flags.Bool("plain", false, "Disable ANSI colors in output")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *apples < 0 {
		fmt.Fprintf(stderr, "snakegrow: invalid --apples=%d: %v\n", *apples, sim.ErrNegativeApples)
		return 1
	}
	apple := sim.Apple{LengthGain: *lengthGain, GirthGain: *girthGain}
	if err := apple.Validate(); err != nil {
		fmt.Fprintf(stderr, "snakegrow: invalid gains (%d, %d): %v\n", *lengthGain, *girthGain, err)
		return 1
	}
	if *initialLength < 0 || *initialGirth < 0 {
		fmt.Fprintf(stderr, "snakegrow: initial size cannot be negative\n")
		return 1
	}

	initial := sim.Snake{Length: *initialLength, Girth: *initialGirth, Color: sim.ColorRed}
	simulator := sim.NewSimulator(initial)
	render := renderer.NewTerminalRenderer(stdout, !*plain)
	sessionID := uuid.NewString()

	var rec *sim.RunRecorder
	if *record {
		var err error
		rec, err = sim.NewRecorder(sessionID)
		if err != nil {
			fmt.Fprintf(stderr, "snakegrow: %v\n", err)
			return 1
		}
		defer rec.Close()
	}

	render.RenderInitial(simulator.Snake)

	step := func(r sim.StepRecord) {
		render.RenderStep(r)
		if *art {
			render.RenderArt(simulator.Snake)
		}
		if rec != nil {
			rec.Record(r)
		}
		if *delay > 0 {
			time.Sleep(*delay)
		}
	}

	if *interactive {
		if err := runInteractive(simulator, initial, apple, render, rec, stdout); err != nil {
			fmt.Fprintf(stderr, "snakegrow: %v\n", err)
			return 1
		}
	} else {
		if err := simulator.Run(*apples, apple, step); err != nil {
			fmt.Fprintf(stderr, "snakegrow: %v\n", err)
			return 1
		}
	}

	if rec != nil {
		rec.Close()
		fmt.Fprintf(stdout, "  📼 Recorded %d steps to %s\n", simulator.Eaten, rec.Path)
	}

	if *save {
		store, err := sim.OpenStore(config.DBPath)
		if err != nil {
			fmt.Fprintf(stderr, "snakegrow: %v\n", err)
			return 1
		}
		defer store.Close()
		if err := store.SaveRun(simulator.Summary(sessionID, apple)); err != nil {
			fmt.Fprintf(stderr, "snakegrow: %v\n", err)
			return 1
		}
		log.Printf("Saved run %s (%d apples) to %s", sessionID, simulator.Eaten, config.DBPath)
	}

	return 0
}

// runInteractive feeds the snake from the keyboard: space/enter/F eats an
// apple, R resets, Q quits.
func runInteractive(simulator *sim.Simulator, initial sim.Snake, apple sim.Apple, render *renderer.TerminalRenderer, rec *sim.RunRecorder, stdout io.Writer) error {
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer inputHandler.Stop()

	render.HideCursor()
	defer render.ShowCursor()

	fmt.Fprintln(stdout, "  Space/Enter/F to feed an apple, R to reset, Q to quit")

	inputChan := inputHandler.GetInputChan()
	for event := range inputChan {
		switch {
		case input.IsQuit(event):
			fmt.Fprintf(stdout, "\n  The snake ate %d apples. Goodbye! 👋\n", simulator.Eaten)
			return nil
		case input.IsReset(event):
			simulator.Reset(initial)
			render.RenderInitial(simulator.Snake)
		case input.IsFeed(event):
			r, err := simulator.Feed(apple)
			if err != nil {
				return err
			}
			render.RenderStep(r)
			render.RenderArt(simulator.Snake)
			if rec != nil {
				rec.Record(r)
			}
		}
	}
	return nil
}
