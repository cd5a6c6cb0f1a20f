package storage

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/Mizuchii42/monster-toram/internal/boss"
)

// JSONLEmitter implements the Emitter interface for writing one grouped
// record per line.
type JSONLEmitter struct {
	w       io.Writer
	encoder *jsoniter.Encoder
}

// NewJSONLEmitter creates a new JSONLEmitter writing to w.
func NewJSONLEmitter(w io.Writer) *JSONLEmitter {
	return &JSONLEmitter{
		w:       w,
		encoder: json.NewEncoder(w),
	}
}

// Emit writes group as a single line.
func (e *JSONLEmitter) Emit(group *boss.GroupedRecord) error {
	return e.encoder.Encode(group)
}

// Close closes the underlying writer if it implements io.Closer.
func (e *JSONLEmitter) Close() error {
	if c, ok := e.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ArrayEmitter collects grouped records and writes them as one indented JSON
// array when closed.
type ArrayEmitter struct {
	w      io.Writer
	groups []boss.GroupedRecord
}

// NewArrayEmitter creates a new ArrayEmitter writing to w.
func NewArrayEmitter(w io.Writer) *ArrayEmitter {
	return &ArrayEmitter{
		w:      w,
		groups: make([]boss.GroupedRecord, 0),
	}
}

func (e *ArrayEmitter) Emit(group *boss.GroupedRecord) error {
	e.groups = append(e.groups, *group)
	return nil
}

// Close writes the collected array, then closes the underlying writer if it
// implements io.Closer. The first error wins.
func (e *ArrayEmitter) Close() error {
	err := EncodeArray(e.w, e.groups)
	if c, ok := e.w.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
