package storage

import (
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/Mizuchii42/monster-toram/internal/boss"
)

// Stat values hold their source text. On the way out they are re-emitted
// token by token so strings lose their escapes and nested objects and arrays
// follow the surrounding indentation. Numbers keep their source form.
func init() {
	jsoniter.RegisterTypeEncoderFunc("boss.Value", encodeValue, func(ptr unsafe.Pointer) bool {
		return (*(*boss.Value)(ptr)).IsNull()
	})
}

func encodeValue(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v := *(*boss.Value)(ptr)
	if v.IsNull() {
		stream.WriteNil()
		return
	}
	writeValue(stream, gjson.ParseBytes(v))
}

func writeValue(stream *jsoniter.Stream, r gjson.Result) {
	switch {
	case r.IsObject():
		n := 0
		r.ForEach(func(key, val gjson.Result) bool {
			if n == 0 {
				stream.WriteObjectStart()
			} else {
				stream.WriteMore()
			}
			n++
			stream.WriteObjectField(key.Str)
			writeValue(stream, val)
			return true
		})
		if n == 0 {
			stream.WriteEmptyObject()
		} else {
			stream.WriteObjectEnd()
		}
	case r.IsArray():
		n := 0
		r.ForEach(func(_, val gjson.Result) bool {
			if n == 0 {
				stream.WriteArrayStart()
			} else {
				stream.WriteMore()
			}
			n++
			writeValue(stream, val)
			return true
		})
		if n == 0 {
			stream.WriteEmptyArray()
		} else {
			stream.WriteArrayEnd()
		}
	case r.Type == gjson.String:
		stream.WriteString(r.Str)
	case r.Type == gjson.Null:
		stream.WriteNil()
	default:
		stream.WriteRaw(r.Raw)
	}
}
