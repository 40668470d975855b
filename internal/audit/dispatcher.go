package audit

import (
	"context"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/metrics"
)

type Event struct {
	UserID   *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

// Recorder is what use cases see of the audit trail.
type Recorder interface {
	Dispatch(ev Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Dispatch(Event) {}

const writeTimeout = 5 * time.Second

// Dispatcher writes audit events on a background worker. A full queue drops
// the event; auditing never fails a request.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	log    log.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, size int, l log.Logger) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, size),
		log:    l,
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.logger.Log(ctx, ev); err != nil {
			level.Warn(d.log).Log("msg", "audit write failed", "action", ev.Action, "err", err)
		}
		cancel()
	}
}

// Dispatch enqueues ev. Events arriving after Close are dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.ObserveAuditDropped()
		level.Warn(d.log).Log("msg", "audit dispatcher closed, dropping event", "action", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		metrics.ObserveAuditDropped()
		level.Warn(d.log).Log("msg", "audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits until the queue is drained.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}

var _ Recorder = (*Dispatcher)(nil)
