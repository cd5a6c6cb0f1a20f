package storage

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	bosserr "github.com/Mizuchii42/monster-toram/pkg/errors"
)

// json leaves non-ASCII and HTML characters unescaped so names are written
// the way they appear in the source data.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

const indent = "  "

// Decode reads a whole JSON array of flat records from r. A document that is
// not valid JSON or not an array yields a MalformedJSONError; an element
// that is not an object, or whose name is not text, yields a
// MalformedInputError naming its index.
func Decode(r io.Reader) ([]boss.FlatRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) ([]boss.FlatRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, bosserr.NewMalformedJSON("input is not valid JSON", nil)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, bosserr.NewMalformedJSON(fmt.Sprintf("input must be a JSON array, got %s", kindOf(doc)), nil)
	}

	records := make([]boss.FlatRecord, 0)
	var decodeErr error
	doc.ForEach(func(_, item gjson.Result) bool {
		index := len(records)
		if !item.IsObject() {
			decodeErr = bosserr.NewMalformedInput(index, fmt.Sprintf("expected an object, got %s", kindOf(item)), nil)
			return false
		}
		if name := item.Get("name"); name.Exists() && name.Type != gjson.String && name.Type != gjson.Null {
			decodeErr = bosserr.NewMalformedInput(index, fmt.Sprintf("name must be text, got %s", kindOf(name)), nil)
			return false
		}

		var rec boss.FlatRecord
		if err := json.UnmarshalFromString(item.Raw, &rec); err != nil {
			decodeErr = bosserr.NewMalformedInput(index, "cannot decode record", err)
			return false
		}
		records = append(records, rec)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return records, nil
}

// EncodeArray writes groups as a JSON array indented by two spaces.
func EncodeArray(w io.Writer, groups []boss.GroupedRecord) error {
	if groups == nil {
		groups = []boss.GroupedRecord{}
	}
	if err := WriteJSON(w, groups); err != nil {
		return fmt.Errorf("failed to encode grouped records: %w", err)
	}
	return nil
}

// WriteJSON writes v indented by two spaces with no trailing newline.
func WriteJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(out))
	return err
}

// DecodeGrouped reads a grouped document such as one written by EncodeArray.
func DecodeGrouped(r io.Reader) ([]boss.GroupedRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
		return nil, bosserr.NewMalformedJSON("grouped input must be a JSON array", nil)
	}

	var groups []boss.GroupedRecord
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, bosserr.NewMalformedJSON("cannot decode grouped records", err)
	}
	return groups, nil
}

func kindOf(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "array"
	case r.IsObject():
		return "object"
	}
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}
	return "unknown"
}
