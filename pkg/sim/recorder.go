package sim

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/trytobebee/snakegrow/pkg/config"
)

// RunRecorder handles asynchronous logging of simulation steps
type RunRecorder struct {
	file     *os.File
	writer   *bufio.Writer
	stepChan chan StepRecord
	wg       sync.WaitGroup
	mu       sync.Mutex
	closed   bool

	// Path is the jsonl file the recorder writes to
	Path string
}

// NewRecorder creates a recorder that writes to the default records directory.
// Filename format: run_{sessionID}_{timestamp}.jsonl
func NewRecorder(sessionID string) (*RunRecorder, error) {
	return NewRecorderAt(config.RecordDir, sessionID)
}

// NewRecorderAt creates a recorder rooted at dir
func NewRecorderAt(dir, sessionID string) (*RunRecorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("run_%s_%d.jsonl", sessionID, timestamp)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &RunRecorder{
		file:     f,
		writer:   bufio.NewWriter(f),
		stepChan: make(chan StepRecord, 256),
		Path:     path,
	}

	// Start background writer
	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Record queues a step to be written. Non-blocking (drops if full).
// The mutex is held across the send so a concurrent Close cannot close
// the channel mid-send.
func (r *RunRecorder) Record(rec StepRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.stepChan <- rec:
		// Queued successfully
	default:
		// Channel full, drop the step to keep the driver loop moving
	}
}

// Close flushes the buffer and closes the file
func (r *RunRecorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.stepChan)
	r.mu.Unlock()

	r.wg.Wait() // Wait for writeLoop to finish
	r.file.Close()
}

func (r *RunRecorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.stepChan {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording step: %v\n", err)
			continue
		}
	}
	r.writer.Flush()
}
