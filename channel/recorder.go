package channel

import (
	"strings"
)

const (
	RECORDER_DEFAULT_CAPACITY = 65536
)

// Event is a single recorded channel action.
type Event struct {
	At    int  // Clock reading when the action was invoked.
	Level bool // True for Activate.
}

// Recorder keeps the most recent Capacity events in a circular buffer.
type Recorder struct {
	Capacity int        // Capacity in events.
	Clock    func() int // Optional time source, typically Scheduler.Ticks.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []Event
}

var _ Channel = (*Recorder)(nil)

// Reset discards all recorded events.
func (rec *Recorder) Reset() {
	if rec.Capacity <= 0 {
		rec.Capacity = RECORDER_DEFAULT_CAPACITY
	}
	rec.ReadIndex = 0
	rec.WriteIndex = 0
	rec.Size = 0
	rec.Data = make([]Event, rec.Capacity)
}

func (rec *Recorder) Activate() {
	rec.record(true)
}

func (rec *Recorder) Deactivate() {
	rec.record(false)
}

func (rec *Recorder) record(level bool) {
	if rec.Data == nil {
		rec.Reset()
	}

	var at int
	if rec.Clock != nil {
		at = rec.Clock()
	}

	rec.Data[rec.WriteIndex] = Event{At: at, Level: level}
	rec.WriteIndex++
	if rec.WriteIndex == rec.Capacity {
		rec.WriteIndex = 0
	}

	if rec.Size == rec.Capacity {
		// Overwrote the oldest event.
		rec.ReadIndex = rec.WriteIndex
	} else {
		rec.Size++
	}
}

// Events returns the recorded events, oldest first.
func (rec *Recorder) Events() (events []Event) {
	index := rec.ReadIndex
	for range rec.Size {
		events = append(events, rec.Data[index])
		index++
		if index == rec.Capacity {
			index = 0
		}
	}
	return
}

// String renders the events as a level trace, one character per event.
func (rec *Recorder) String() string {
	var sb strings.Builder
	for _, ev := range rec.Events() {
		if ev.Level {
			sb.WriteByte(TAPE_DEFAULT_MARK)
		} else {
			sb.WriteByte(TAPE_DEFAULT_SPACE)
		}
	}
	return sb.String()
}
