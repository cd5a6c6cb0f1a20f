package boss

// Value is a stat value copied verbatim from a source record. A nil Value
// stands for both an explicit JSON null and a missing field.
type Value []byte

// MarshalJSON writes the raw source text, or null when the value is unset.
func (v Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON keeps a copy of the raw JSON text. A literal null leaves the
// value nil.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = nil
		return nil
	}
	*v = append((*v)[:0:0], data...)
	return nil
}

// IsNull reports whether the value was null or absent.
func (v Value) IsNull() bool {
	return v == nil
}

// Stats holds the combat statistics shared by flat records and stat entries.
type Stats struct {
	Level           Value `json:"level"`
	HP              Value `json:"hp"`
	XP              Value `json:"xp"`
	Element         Value `json:"element"`
	Def             Value `json:"def"`
	MDef            Value `json:"mdef"`
	Flee            Value `json:"flee"`
	ResPhys         Value `json:"res_phys"`
	ResMagic        Value `json:"res_magic"`
	ResCrit         Value `json:"res_crit"`
	Guard           Value `json:"guard"`
	Evade           Value `json:"evade"`
	ProrationNormal Value `json:"proration_normal"`
	ProrationPhys   Value `json:"proration_phys"`
	ProrationMagic  Value `json:"proration_magic"`
}

// FlatRecord is one entry of the source document. Names usually carry a
// difficulty marker such as "Goblin King(Hard)".
type FlatRecord struct {
	Name string `json:"name"`
	Stats
}

// StatEntry is one difficulty variant of a boss.
type StatEntry struct {
	Difficulty Difficulty `json:"difficulty"`
	Stats
}

// GroupedRecord pairs a base name with all of its difficulty variants.
type GroupedRecord struct {
	Name    string      `json:"name"`
	StatDef []StatEntry `json:"statdef"`
}
