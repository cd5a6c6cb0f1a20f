package boss

import (
	"encoding/json"
	"strconv"
)

// Float64 returns the value as a number. Strings holding a number are not
// converted.
func (v Value) Float64() (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Text returns the value as a string if it is a JSON string.
func (v Value) Text() (string, bool) {
	if len(v) == 0 || v[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// Native converts the value to a plain Go scalar: int64 or float64 for
// numbers, string, bool, or nil. Arrays and objects are returned as their
// raw JSON text.
func (v Value) Native() any {
	if v == nil {
		return nil
	}
	if s, ok := v.Text(); ok {
		return s
	}
	switch string(v) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
		return i
	}
	if f, ok := v.Float64(); ok {
		return f
	}
	return string(v)
}

// ValueOf encodes a plain Go value as a Value. Nil stays nil.
func ValueOf(x any) (Value, error) {
	if x == nil {
		return nil, nil
	}
	raw, err := json.Marshal(x)
	if err != nil {
		return nil, err
	}
	return Value(raw), nil
}

// Fields lists the stats in document order keyed by their JSON name.
func (s *Stats) Fields() []StatField {
	return []StatField{
		{"level", &s.Level},
		{"hp", &s.HP},
		{"xp", &s.XP},
		{"element", &s.Element},
		{"def", &s.Def},
		{"mdef", &s.MDef},
		{"flee", &s.Flee},
		{"res_phys", &s.ResPhys},
		{"res_magic", &s.ResMagic},
		{"res_crit", &s.ResCrit},
		{"guard", &s.Guard},
		{"evade", &s.Evade},
		{"proration_normal", &s.ProrationNormal},
		{"proration_phys", &s.ProrationPhys},
		{"proration_magic", &s.ProrationMagic},
	}
}

// StatField names one stat and points at its storage.
type StatField struct {
	Name  string
	Value *Value
}
