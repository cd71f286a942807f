package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tilecore/internal/application/replay"
	"github.com/younwookim/tilecore/internal/application/state"
	"github.com/younwookim/tilecore/internal/domain/geometry"
)

// Recorder handles tick recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	tick      int
}

// NewRecorder creates a new recorder for a stage
func NewRecorder(stage string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   "1.0",
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Ticks:     make([]replay.TickInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		tick:      0,
	}
}

// RecordTick records what the world is fed for a single tick
func (r *Recorder) RecordTick(dt float64, s state.GameState, collector geometry.Rect, hasCollector bool) {
	if !r.recording {
		return
	}

	tickInput := replay.TickInput{
		T:     r.tick,
		DT:    dt,
		State: int(s),
	}
	if hasCollector {
		tickInput.Collector = replay.NewRectInput(collector)
	}

	r.data.Ticks = append(r.data.Ticks, tickInput)
	r.tick++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Ticks) == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// TickCount returns the number of recorded ticks
func (r *Recorder) TickCount() int {
	return len(r.data.Ticks)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
