package audit

import (
	"context"
	"sync"
	"time"

	"github.com/winhire/interview-engine/internal/logger"
)

const (
	DefaultQueueSize = 100
	writeTimeout     = 5 * time.Second
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit events off the request path. A full queue drops
// the event; auditing never fails an API call.
type Dispatcher struct {
	writer Writer
	log    logger.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(w Writer, log logger.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	d := &Dispatcher{
		writer: w,
		log:    log,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.writer.Write(ctx, ev); err != nil {
			d.log.Error("audit write failed", map[string]interface{}{
				"action": ev.Action,
				"entity": ev.Entity,
				"error":  err,
			})
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", map[string]interface{}{
			"action": ev.Action,
			"entity": ev.Entity,
		})
	}
}

// Close stops intake and waits for queued events to be written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}

// Ptr is shorthand for the optional id fields on Event.
func Ptr(id uint) *uint {
	return &id
}

// Sink is what producers of audit events depend on.
type Sink interface {
	Dispatch(ev Event)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Dispatch(Event) {}
