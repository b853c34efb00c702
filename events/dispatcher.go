package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Dispatcher queues events and publishes them from a background goroutine.
// Publishing is best-effort: the bus being down never fails a request.
// Failed publishes are retried with backoff before being dropped.
type Dispatcher struct {
	publisher  Publisher
	logger     *slog.Logger
	queue      chan Event
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	done     chan struct{}
}

// NewDispatcher creates a dispatcher with a bounded queue
func NewDispatcher(publisher Publisher, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		publisher:  publisher,
		logger:     logger,
		queue:      make(chan Event, 256),
		maxRetries: 3,
		retryDelay: 500 * time.Millisecond,
		timeout:    5 * time.Second,
		stopChan:   make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start begins the background publishing loop
func (d *Dispatcher) Start() {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return
	}
	d.running = true
	d.mu.Unlock()

	d.logger.Info("event dispatcher started")
	go d.run()
}

// Stop drains the queue and stops the loop
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopChan)
	<-d.done
	d.logger.Info("event dispatcher stopped")
}

// Enqueue hands an event to the dispatcher without blocking the caller.
// When the queue is full the event is dropped and logged.
func (d *Dispatcher) Enqueue(event Event) {
	select {
	case d.queue <- event:
	default:
		d.logger.Warn("event queue full, dropping event",
			"event_type", event.Type,
			"event_id", event.ID,
		)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for {
		select {
		case event := <-d.queue:
			d.publish(event)
		case <-d.stopChan:
			// Drain whatever is left before exiting
			for {
				select {
				case event := <-d.queue:
					d.publish(event)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) publish(event Event) {
	var err error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(d.retryDelay * time.Duration(attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err = d.publisher.Publish(ctx, event)
		cancel()

		if err == nil {
			d.logger.Debug("event published",
				"event_type", event.Type,
				"event_id", event.ID,
			)
			return
		}
	}

	d.logger.Error("failed to publish event, giving up",
		"event_type", event.Type,
		"event_id", event.ID,
		"error", err,
	)
}
