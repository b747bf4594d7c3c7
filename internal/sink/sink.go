package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/yildizm/NanoLab/internal/formatter"
	"github.com/yildizm/NanoLab/internal/logger"
	"github.com/yildizm/NanoLab/internal/settings"
)

// Sink receives saved settings records. It is the hand-off point to
// whatever eventually stores them or talks to the device.
type Sink interface {
	Emit(ctx context.Context, records ...settings.Record) error
}

// LogSink writes one info line per record; nothing shows unless verbose
type LogSink struct {
	log *logger.Logger
}

// NewLogSink creates a sink reporting through log
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log.WithComponent("sink")}
}

// Emit logs each record with its entries as fields
func (s *LogSink) Emit(ctx context.Context, records ...settings.Record) error {
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := make([]logger.Field, 0, len(r.Entries))
		for _, e := range r.Entries {
			if e.Key == "summary" {
				continue
			}
			fields = append(fields, logger.F(e.Key, e.Value))
		}
		summary, _ := r.Get("summary")
		s.log.InfoWithFields("saved %s: %s", fields, r.Form, summary)
	}
	return nil
}

// WriterSink renders records with a formatter onto a writer
type WriterSink struct {
	mu        sync.Mutex
	w         io.Writer
	formatter formatter.Formatter
}

// NewWriterSink creates a sink rendering with f onto w
func NewWriterSink(w io.Writer, f formatter.Formatter) *WriterSink {
	return &WriterSink{w: w, formatter: f}
}

// Emit formats and writes all records in one block
func (s *WriterSink) Emit(ctx context.Context, records ...settings.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := s.formatter.Format(records...)
	if err != nil {
		return fmt.Errorf("failed to format records: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// MultiSink fans records out to several sinks
type MultiSink []Sink

// Emit passes records to every sink, collecting all errors
func (m MultiSink) Emit(ctx context.Context, records ...settings.Record) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(ctx, records...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps emitted records in memory; the TUI uses it to show what
// was last sent.
type Recorder struct {
	mu      sync.Mutex
	records []settings.Record
}

// Emit appends records
func (r *Recorder) Emit(_ context.Context, records ...settings.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, records...)
	return nil
}

// Records returns a copy of everything emitted so far
func (r *Recorder) Records() []settings.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]settings.Record(nil), r.records...)
}

// Last returns the most recent record for form
func (r *Recorder) Last(form string) (settings.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Form == form {
			return r.records[i], true
		}
	}
	return settings.Record{}, false
}
