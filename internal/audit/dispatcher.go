package audit

import "go.uber.org/zap"

type Event struct {
	Action    string
	Entity    string
	EntityID  uint
	RequestID string
	Metadata  any
}

// Dispatcher persists audit events off the request path. Events go
// through a buffered channel to a single worker; a full queue drops the
// event rather than slow down or fail the API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(ev.Action, ev.Entity, ev.EntityID, ev.RequestID, ev.Metadata); err != nil {
			zap.L().Warn("audit write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		zap.L().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
			zap.Uint("entity_id", ev.EntityID),
		)
	}
}

// Close drains pending events and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
