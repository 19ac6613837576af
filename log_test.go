package swapbuf

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// testEvent records what was logged for assertions.
type testEvent struct {
	logiface.UnimplementedEvent
	level  logiface.Level
	msg    string
	fields map[string]any
}

func (e *testEvent) Level() logiface.Level        { return e.level }
func (e *testEvent) AddField(key string, val any) { e.fields[key] = val }
func (e *testEvent) AddMessage(msg string) bool   { e.msg = msg; return true }

type testEventFactory struct{}

func (testEventFactory) NewEvent(level logiface.Level) *testEvent {
	return &testEvent{level: level, fields: make(map[string]any)}
}

// testEvents collects written events.
type testEvents struct {
	mu     sync.Mutex
	events []*testEvent
}

func (w *testEvents) Write(event *testEvent) error {
	w.mu.Lock()
	w.events = append(w.events, event)
	w.mu.Unlock()
	return nil
}

func (w *testEvents) messages() (out []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ev := range w.events {
		out = append(out, ev.msg)
	}
	return out
}

func (w *testEvents) find(msg string) *testEvent {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ev := range w.events {
		if ev.msg == msg {
			return ev
		}
	}
	return nil
}

func newTestLogger(level logiface.Level) (*logiface.Logger[logiface.Event], *testEvents) {
	events := new(testEvents)
	logger := logiface.New[*testEvent](
		logiface.WithEventFactory[*testEvent](testEventFactory{}),
		logiface.WithWriter[*testEvent](events),
		logiface.WithLevel[*testEvent](level),
	)
	return logger.Logger(), events
}
