package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/trytobebee/snakegrow/pkg/config"
	"github.com/trytobebee/snakegrow/pkg/renderer"
	"github.com/trytobebee/snakegrow/pkg/sim"
)

func main() {
	file := flag.String("file", "", "Recorded run to replay (.jsonl); empty lists available recordings")
	delay := flag.Duration("delay", config.ReplayStepDelay, "Pause between replayed steps")
	art := flag.Bool("art", false, "Draw the snake at each replayed step")
	plain := flag.Bool("plain", false, "Disable ANSI colors in output")
	flag.Parse()

	if *file == "" {
		listRecordings()
		return
	}

	path := *file
	if filepath.Dir(path) == "." {
		path = filepath.Join(config.RecordDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: failed to open record: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	render := renderer.NewTerminalRenderer(os.Stdout, !*plain)
	fmt.Printf("  📼 Replaying %s\n", path)

	scanner := bufio.NewScanner(f)
	steps := 0
	for scanner.Scan() {
		var rec sim.StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			log.Println("JSON parse error:", err)
			continue
		}

		render.RenderStep(rec)
		if *art {
			renderArtFor(render, rec)
		}
		steps++
		time.Sleep(*delay)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "replay: read error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  Replayed %d steps.\n", steps)
}

// renderArtFor draws the snake for a replayed step. Records carry colors
// by name; unknown names are logged and the art skipped rather than drawn
// in a wrong color.
func renderArtFor(render *renderer.TerminalRenderer, rec sim.StepRecord) bool {
	color, ok := sim.ParseColor(rec.Snake.Color)
	if !ok {
		log.Println("Unknown color in record:", rec.Snake.Color)
		return false
	}
	render.RenderArt(sim.Snake{
		Length: rec.Snake.Length,
		Girth:  rec.Snake.Girth,
		Color:  color,
	})
	return true
}

// listRecordings prints the .jsonl files under records/, newest first
func listRecordings() {
	files, err := os.ReadDir(config.RecordDir)
	if err != nil {
		fmt.Printf("No recordings found in ./%s/\n", config.RecordDir)
		return
	}

	type recordFile struct {
		name string
		size int64
		time time.Time
	}

	var records []recordFile
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		records = append(records, recordFile{name: f.Name(), size: info.Size(), time: info.ModTime()})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].time.After(records[j].time)
	})

	if len(records) == 0 {
		fmt.Printf("No recordings found in ./%s/\n", config.RecordDir)
		return
	}

	fmt.Println("Available recordings:")
	for _, r := range records {
		fmt.Printf("  %s  (%d bytes, %s)\n", r.name, r.size, r.time.Format("2006-01-02 15:04:05"))
	}
	fmt.Println("\nReplay one with: replay -file <name>")
}
