package groomkit

import (
	"context"
	"sync"
	"sync/atomic"
)

type deliveryDispatcher struct {
	cfg       TelemetryConfig
	sink      Delivery
	ch        chan EventRecord
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func newDeliveryDispatcher(cfg TelemetryConfig, sink Delivery) *deliveryDispatcher {
	if cfg.DispatchBuffer <= 0 {
		cfg.DispatchBuffer = 1
	}
	if sink == nil {
		sink = NoOpDelivery{}
	}

	d := &deliveryDispatcher{
		cfg:  cfg,
		sink: sink,
		ch:   make(chan EventRecord, cfg.DispatchBuffer),
		done: make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *deliveryDispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case record := <-d.ch:
			d.deliver(record)
		case <-d.done:
			for {
				select {
				case record := <-d.ch:
					d.deliver(record)
				default:
					return
				}
			}
		}
	}
}

// deliver shields the dispatch loop from sink panics. A sink that fails or
// panics must never take down the recorder or lose its goroutine.
func (d *deliveryDispatcher) deliver(record EventRecord) {
	defer func() {
		_ = recover()
	}()
	d.sink.Deliver(context.Background(), record)
}

// Enqueue hands a record to the dispatch goroutine. In drop-if-full mode a
// saturated queue increments the dropped counter instead of blocking.
func (d *deliveryDispatcher) Enqueue(ctx context.Context, record EventRecord) {
	if d == nil || d.closed.Load() {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if d.cfg.DropIfFull {
		select {
		case d.ch <- record:
		case <-d.done:
		default:
			d.dropped.Add(1)
		}
		return
	}

	select {
	case d.ch <- record:
	case <-ctx.Done():
	case <-d.done:
	}
}

// Close stops intake, drains queued records through the sink, and waits for
// the dispatch goroutine to exit. Safe to call more than once.
func (d *deliveryDispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.done)
		d.wg.Wait()
	})
}

// Dropped returns how many records were discarded because the dispatch queue
// was full.
func (d *deliveryDispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}
