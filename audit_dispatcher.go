package partialpass

import (
	"context"
	"sync"
	"sync/atomic"
)

// auditDispatcher decouples engine operations from the audit sink. Events are
// handed to a single background worker over a buffered channel; when the
// buffer is full and DropIfFull is set, the event is counted and discarded so
// the hot path never blocks on a slow sink.
type auditDispatcher struct {
	sink       AuditSink
	events     chan AuditEvent
	dropIfFull bool

	dropped uint64
	closed  uint32

	wg sync.WaitGroup
}

func newAuditDispatcher(cfg AuditConfig, sink AuditSink) *auditDispatcher {
	if !cfg.Enabled || sink == nil {
		return nil
	}

	d := &auditDispatcher{
		sink:       sink,
		events:     make(chan AuditEvent, cfg.BufferSize),
		dropIfFull: cfg.DropIfFull,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *auditDispatcher) run() {
	defer d.wg.Done()

	for event := range d.events {
		d.sink.Emit(context.Background(), event)
	}
}

func (d *auditDispatcher) Emit(ctx context.Context, event AuditEvent) {
	if d == nil || atomic.LoadUint32(&d.closed) == 1 {
		return
	}

	if d.dropIfFull {
		select {
		case d.events <- event:
		default:
			atomic.AddUint64(&d.dropped, 1)
		}
		return
	}

	select {
	case d.events <- event:
	case <-ctx.Done():
		atomic.AddUint64(&d.dropped, 1)
	}
}

// Dropped reports how many events were discarded because the buffer was full
// or the caller's context expired.
func (d *auditDispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return atomic.LoadUint64(&d.dropped)
}

// Close stops accepting events, drains the buffer into the sink, and waits
// for the worker to exit. Safe to call more than once.
func (d *auditDispatcher) Close() {
	if d == nil {
		return
	}
	if !atomic.CompareAndSwapUint32(&d.closed, 0, 1) {
		return
	}

	close(d.events)
	d.wg.Wait()
}
