package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tilecore/internal/application/state"
	"github.com/younwookim/tilecore/internal/application/world"
	"github.com/younwookim/tilecore/internal/domain/entity"
)

// Replayer feeds recorded ticks back into a world
type Replayer struct {
	data ReplayData
	tick int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data: data,
		tick: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current tick and advances
func (r *Replayer) Next() (TickInput, bool) {
	if r.tick >= len(r.data.Ticks) {
		return TickInput{}, false
	}

	ti := r.data.Ticks[r.tick]
	r.tick++
	return ti, true
}

// Step applies the next recorded tick to w. It returns false once the
// recording is exhausted.
func (r *Replayer) Step(w *world.World) ([]*entity.Gem, bool, error) {
	ti, ok := r.Next()
	if !ok {
		return nil, false, nil
	}

	w.SetState(state.GameState(ti.State))
	if ti.Collector != nil {
		w.SetCollector(ti.Collector.Rect())
	} else {
		w.ClearCollector()
	}

	collected, err := w.Update(ti.DT)
	if err != nil {
		return collected, true, fmt.Errorf("failed to replay tick %d: %w", ti.T, err)
	}
	return collected, true, nil
}

// Run replays every remaining tick into w and returns the number of gems
// collected
func (r *Replayer) Run(w *world.World) (int, error) {
	total := 0
	for {
		collected, ok, err := r.Step(w)
		if err != nil {
			return total, err
		}
		if !ok {
			return total, nil
		}
		total += len(collected)
	}
}

// CurrentTick returns the current tick number
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the total number of ticks
func (r *Replayer) TotalTicks() int {
	return len(r.data.Ticks)
}

// Stage returns the name of the recorded stage
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.tick = 0
}

// CreateTestReplayData creates replay data for testing: fixed dt ticks in
// play with no collector
func CreateTestReplayData(ticks int, dt float64) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Ticks:     make([]TickInput, ticks),
	}

	for i := 0; i < ticks; i++ {
		data.Ticks[i] = TickInput{
			T:  i,
			DT: dt,
		}
	}

	return data
}
