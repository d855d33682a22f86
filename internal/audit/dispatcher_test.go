package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/winhire/interview-engine/internal/logger"
)

type recordingWriter struct {
	mu     sync.Mutex
	events []Event
	err    error
	block  chan struct{}
}

func (w *recordingWriter) Write(_ context.Context, ev Event) error {
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, ev)
	return w.err
}

func (w *recordingWriter) actions() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.events))
	for _, ev := range w.events {
		out = append(out, ev.Action)
	}
	return out
}

func TestDispatcher_DeliversInOrderAndDrainsOnClose(t *testing.T) {
	w := &recordingWriter{}
	d := NewDispatcher(w, logger.NewTestLogger(t), 10)

	d.Dispatch(Event{Action: "interview_scheduled", Entity: "interview", EntityID: Ptr(1)})
	d.Dispatch(Event{Action: "interview_completed", Entity: "interview", EntityID: Ptr(1)})
	d.Close()

	assert.Equal(t, []string{"interview_scheduled", "interview_completed"}, w.actions())
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	w := &recordingWriter{block: make(chan struct{})}
	d := NewDispatcher(w, logger.NewNoOpLogger(), 1)

	// The worker takes the first event and blocks; the second fills the
	// queue; the rest are dropped.
	for i := 0; i < 5; i++ {
		d.Dispatch(Event{Action: "feedback_submitted"})
	}
	close(w.block)
	d.Close()

	got := len(w.actions())
	assert.GreaterOrEqual(t, got, 1)
	assert.LessOrEqual(t, got, 2)
}

func TestDispatcher_WriteErrorsAreSwallowed(t *testing.T) {
	w := &recordingWriter{err: errors.New("db down")}
	d := NewDispatcher(w, logger.NewNoOpLogger(), 0)

	d.Dispatch(Event{Action: "application_status_changed"})
	d.Close()
	d.Dispatch(Event{Action: "after_close"})

	assert.Equal(t, []string{"application_status_changed"}, w.actions())
}
