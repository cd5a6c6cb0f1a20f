package boss

// Transform groups flat records by base name. Groups appear in the order
// their base name was first seen and each group's stat entries keep input
// order. The input is not modified.
func Transform(records []FlatRecord) []GroupedRecord {
	index := make(map[string]int)
	groups := make([]GroupedRecord, 0)

	for _, rec := range records {
		base, difficulty := ParseName(rec.Name)

		i, ok := index[base]
		if !ok {
			i = len(groups)
			index[base] = i
			groups = append(groups, GroupedRecord{
				Name:    base,
				StatDef: make([]StatEntry, 0, 1),
			})
		}

		groups[i].StatDef = append(groups[i].StatDef, StatEntry{
			Difficulty: difficulty,
			Stats:      rec.Stats.clone(),
		})
	}

	return groups
}

// Flatten expands grouped records back into flat records named
// "<base>(<Difficulty>)". Transform(Flatten(g)) reproduces g.
func Flatten(groups []GroupedRecord) []FlatRecord {
	records := make([]FlatRecord, 0, len(groups))
	for _, g := range groups {
		for _, entry := range g.StatDef {
			records = append(records, FlatRecord{
				Name:  FormatName(g.Name, entry.Difficulty),
				Stats: entry.Stats.clone(),
			})
		}
	}
	return records
}

func (v Value) clone() Value {
	if v == nil {
		return nil
	}
	return append(Value(nil), v...)
}

func (s Stats) clone() Stats {
	return Stats{
		Level:           s.Level.clone(),
		HP:              s.HP.clone(),
		XP:              s.XP.clone(),
		Element:         s.Element.clone(),
		Def:             s.Def.clone(),
		MDef:            s.MDef.clone(),
		Flee:            s.Flee.clone(),
		ResPhys:         s.ResPhys.clone(),
		ResMagic:        s.ResMagic.clone(),
		ResCrit:         s.ResCrit.clone(),
		Guard:           s.Guard.clone(),
		Evade:           s.Evade.clone(),
		ProrationNormal: s.ProrationNormal.clone(),
		ProrationPhys:   s.ProrationPhys.clone(),
		ProrationMagic:  s.ProrationMagic.clone(),
	}
}
