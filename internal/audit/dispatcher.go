package audit

import (
	"context"
	"log/slog"
	"sync"
)

type Event struct {
	ActorUserID string
	Action      string
	Entity      string
	EntityID    string
	Metadata    any
}

// Sink persists a single event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink   Sink
	logger *slog.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, queueSize int, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 100
	}
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.logger.Error("audit write failed",
				slog.String("action", ev.Action),
				slog.String("entity_id", ev.EntityID),
				slog.Any("error", err),
			)
		}
	}
}

// Dispatch never blocks the request path: when the queue is full the event
// is dropped and logged.
func (d *Dispatcher) Dispatch(ev Event) {
	defer func() {
		// Dispatch after Close
		if recover() != nil {
			d.logger.Warn("audit dispatcher closed, dropping event", slog.String("action", ev.Action))
		}
	}()

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until the queue is drained.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
