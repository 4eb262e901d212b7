package audit

// Dispatcher decouples audit logging from request handling: events go
// through a buffered queue drained by a single worker. When the queue is
// full the event is dropped instead of blocking the request.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.logger.Log(ev)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}
