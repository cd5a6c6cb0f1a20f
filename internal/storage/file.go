package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	bosserr "github.com/Mizuchii42/monster-toram/pkg/errors"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
)

// ParseFormat accepts "json" or "jsonl"; empty means json.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatJSONL:
		return FormatJSONL, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json or jsonl)", s)
}

// NewEmitter returns the emitter for format writing to f.
func NewEmitter(f *os.File, format Format) Emitter {
	if format == FormatJSONL {
		return NewJSONLEmitter(f)
	}
	return NewArrayEmitter(f)
}

// LoadFile reads and decodes the flat records stored at path.
func LoadFile(path string) ([]boss.FlatRecord, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, classifyReadErr(path, err)
	}
	return records, nil
}

// LoadGroupedFile reads a grouped document written by SaveFile in the json
// format.
func LoadGroupedFile(path string) ([]boss.GroupedRecord, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	groups, err := DecodeGrouped(f)
	if err != nil {
		return nil, classifyReadErr(path, err)
	}
	return groups, nil
}

// SaveFile writes groups to path, creating or truncating it. The file is
// closed on every path; a failed close is reported as a write error.
func SaveFile(path string, groups []boss.GroupedRecord, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return bosserr.NewOutputWrite(path, err)
	}

	emitter := NewEmitter(f, format)
	for i := range groups {
		if err := emitter.Emit(&groups[i]); err != nil {
			emitter.Close()
			return bosserr.NewOutputWrite(path, err)
		}
	}
	if err := emitter.Close(); err != nil {
		return bosserr.NewOutputWrite(path, err)
	}
	return nil
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, bosserr.NewInputNotFound(path, err)
		}
		return nil, bosserr.NewInputUnreadable(path, err)
	}
	return f, nil
}

// classifyReadErr keeps typed decode errors and treats anything else as an
// I/O failure on the input.
func classifyReadErr(path string, err error) error {
	if bosserr.CodeOf(err) != "" {
		return err
	}
	return bosserr.NewInputUnreadable(path, err)
}
