package sim

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	rec, err := NewRecorderAt(dir, "test-session")
	require.NoError(t, err)

	simulator := NewSimulator(NewSnake())
	err = simulator.Run(5, Apple{LengthGain: 2, GirthGain: 3}, func(step StepRecord) {
		rec.Record(step)
	})
	require.NoError(t, err)

	rec.Close()

	f, err := os.Open(rec.Path)
	require.NoError(t, err)
	defer f.Close()

	var steps []StepRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var step StepRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &step))
		steps = append(steps, step)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, steps, 5)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Step)
		assert.Equal(t, 1+(i+1)*2, step.Snake.Length)
		assert.Equal(t, 1+(i+1)*3, step.Snake.Girth)
	}
	assert.Equal(t, "purple", steps[4].Snake.Color, "palette[5 mod 6]")
}

// TestRecorder_ConcurrentRecordAndClose drives Record from several
// goroutines while Close runs; neither side may panic on the channel
func TestRecorder_ConcurrentRecordAndClose(t *testing.T) {
	rec, err := NewRecorderAt(t.TempDir(), "race")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 1; j <= 200; j++ {
				rec.Record(StepRecord{Step: j})
			}
		}()
	}

	rec.Close()
	wg.Wait()
}

func TestRecorder_RecordAfterCloseIsNoop(t *testing.T) {
	rec, err := NewRecorderAt(t.TempDir(), "closed")
	require.NoError(t, err)

	rec.Close()
	rec.Record(StepRecord{Step: 1}) // must not panic on the closed channel
	rec.Close()                     // double close is safe
}
