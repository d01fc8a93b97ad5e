package tracing

import (
	"sync"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/massstorage/datarecording"
)

// EventTable is the table the DBTracer writes to.
const EventTable = "device_events"

// DBTracer stores events into a data recorder.
type DBTracer struct {
	mu      sync.Mutex
	backend datarecording.DataRecorder

	startTick, endTick uint64
	count              int
}

// NewDBTracer creates a new DBTracer and the table it writes to.
func NewDBTracer(dataRecorder datarecording.DataRecorder) *DBTracer {
	dataRecorder.CreateTable(EventTable, Event{})

	t := &DBTracer{backend: dataRecorder}

	atexit.Register(func() {
		t.Terminate()
	})

	return t
}

// SetTickRange limits recording to events in [startTick, endTick]. An endTick
// of 0 means no upper bound.
func (t *DBTracer) SetTickRange(startTick, endTick uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.startTick = startTick
	t.endTick = endTick
}

// RecordEvent writes the event to the backend.
func (t *DBTracer) RecordEvent(e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e.Tick < t.startTick || (t.endTick > 0 && e.Tick > t.endTick) {
		return
	}

	t.backend.InsertData(EventTable, e)
	t.count++
}

// Count returns the number of events recorded.
func (t *DBTracer) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.count
}

// Terminate flushes the recorded events.
func (t *DBTracer) Terminate() {
	t.backend.Flush()
}

// Handle flushes the recorded events when the game ends.
func (t *DBTracer) Handle(_ uint64) {
	t.Terminate()
}
