package notify

import (
	"context"
	"sync"
	"time"

	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/metrics"
)

const sendTimeout = 10 * time.Second

// Dispatcher fans messages out to every channel on a background worker.
// Delivery failures are logged and never reach the publisher.
type Dispatcher struct {
	channels []Notifier
	log      logger.Logger
	metrics  *metrics.Metrics
	queue    chan Message

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(
	channels []Notifier,
	log logger.Logger,
	m *metrics.Metrics,
	queueSize int,
) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 100
	}
	if m == nil {
		m = metrics.NewNop()
	}
	d := &Dispatcher{
		channels: channels,
		log:      log,
		metrics:  m,
		queue:    make(chan Message, queueSize),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	for _, ch := range d.channels {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := ch.Notify(ctx, msg)
		cancel()

		if err != nil {
			d.metrics.NotificationsSent.WithLabelValues(ch.Name(), "error").Inc()
			d.log.Error("notification delivery failed", map[string]interface{}{
				"channel": ch.Name(),
				"id":      msg.ID,
				"kind":    msg.Kind,
				"error":   err,
			})
			continue
		}
		d.metrics.NotificationsSent.WithLabelValues(ch.Name(), "ok").Inc()
	}
}

func (d *Dispatcher) Publish(msg Message) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- msg:
	default:
		d.metrics.NotificationsDropped.Inc()
		d.log.Warn("notification queue full, dropping message", map[string]interface{}{
			"id":   msg.ID,
			"kind": msg.Kind,
		})
	}
}

// Close stops intake and waits for queued messages to be delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
