package groomkit

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// Delivery receives recorded events. Implementations may block on I/O; the
// recorder calls Deliver from its dispatcher goroutine, never from the
// caller's critical section, and discards anything that goes wrong.
type Delivery interface {
	Deliver(ctx context.Context, record EventRecord)
}

// NoOpDelivery drops recorded events.
type NoOpDelivery struct{}

func (NoOpDelivery) Deliver(context.Context, EventRecord) {}

// ChannelDelivery writes recorded events into a buffered channel.
type ChannelDelivery struct {
	records chan EventRecord
}

func NewChannelDelivery(buffer int) *ChannelDelivery {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelDelivery{
		records: make(chan EventRecord, buffer),
	}
}

func (d *ChannelDelivery) Deliver(ctx context.Context, record EventRecord) {
	select {
	case d.records <- record:
	case <-ctx.Done():
	}
}

func (d *ChannelDelivery) Records() <-chan EventRecord {
	return d.records
}

// JSONWriterDelivery writes one JSON object per line.
type JSONWriterDelivery struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewJSONWriterDelivery(w io.Writer) *JSONWriterDelivery {
	return &JSONWriterDelivery{
		writer: w,
	}
}

func (d *JSONWriterDelivery) Deliver(ctx context.Context, record EventRecord) {
	if d == nil || d.writer == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, _ = d.writer.Write(data)
	_, _ = d.writer.Write([]byte("\n"))
}

// ConsoleDelivery is the reference diagnostic sink. In verbose mode it writes
// one rendered line per record to the configured writer; when not verbose it
// performs no observable action. It never fails.
type ConsoleDelivery struct {
	writer  io.Writer
	verbose bool
	mu      sync.Mutex
}

// NewConsoleDelivery creates a console sink. A nil writer disables output
// regardless of verbose.
func NewConsoleDelivery(w io.Writer, verbose bool) *ConsoleDelivery {
	return &ConsoleDelivery{
		writer:  w,
		verbose: verbose,
	}
}

func (d *ConsoleDelivery) Deliver(ctx context.Context, record EventRecord) {
	if d == nil || d.writer == nil || !d.verbose {
		return
	}

	line := renderRecord(record)

	d.mu.Lock()
	defer d.mu.Unlock()

	_, _ = io.WriteString(d.writer, line)
	_, _ = io.WriteString(d.writer, "\n")
}
