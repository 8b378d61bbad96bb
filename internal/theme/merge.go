package theme

// Merge layers extension fragments over base. For every pool the result is
// base followed by each extension's pool in argument order; duplicates are
// kept. Neither base nor the extensions are modified.
func Merge(base *Data, extensions ...*Data) *Data {
	merged := base.Clone()
	if merged == nil {
		merged = &Data{}
	}
	for _, ext := range extensions {
		if ext != nil {
			appendData(merged, ext)
		}
	}
	return merged
}

func appendData(dst, src *Data) {
	if src.NPC != nil {
		if dst.NPC == nil {
			dst.NPC = &NPCData{}
		}
		if dst.NPC.Genders == nil {
			dst.NPC.Genders = make(map[Gender]GenderNames)
		}
		for _, g := range Genders() {
			ext, ok := src.NPC.Genders[g]
			if !ok {
				continue
			}
			cur := dst.NPC.Genders[g]
			dst.NPC.Genders[g] = GenderNames{
				Prefixes: concat(cur.Prefixes, ext.Prefixes),
				Cores:    concat(cur.Cores, ext.Cores),
				Suffixes: concat(cur.Suffixes, ext.Suffixes),
			}
		}
	}

	if src.Building != nil {
		if dst.Building == nil {
			dst.Building = &BuildingData{}
		}
		dst.Building.Prefixes = concat(dst.Building.Prefixes, src.Building.Prefixes)
		dst.Building.Suffixes = concat(dst.Building.Suffixes, src.Building.Suffixes)
		if dst.Building.Types == nil {
			dst.Building.Types = make(map[BuildingType]BuildingTypeNames)
		}
		for _, bt := range BuildingTypes() {
			ext, ok := src.Building.Types[bt]
			if !ok {
				continue
			}
			cur := dst.Building.Types[bt]
			dst.Building.Types[bt] = BuildingTypeNames{
				Prefixes:    concat(cur.Prefixes, ext.Prefixes),
				Descriptors: concat(cur.Descriptors, ext.Descriptors),
				Suffixes:    concat(cur.Suffixes, ext.Suffixes),
			}
		}
	}

	if src.City != nil {
		if dst.City == nil {
			dst.City = &CityData{}
		}
		dst.City.Prefixes = concat(dst.City.Prefixes, src.City.Prefixes)
		dst.City.Cores = concat(dst.City.Cores, src.City.Cores)
		dst.City.Suffixes = concat(dst.City.Suffixes, src.City.Suffixes)
	}

	if src.District != nil {
		if dst.District == nil {
			dst.District = &DistrictData{}
		}
		dst.District.Descriptors = concat(dst.District.Descriptors, src.District.Descriptors)
		dst.District.LocationTypes = concat(dst.District.LocationTypes, src.District.LocationTypes)
	}

	if src.Street != nil {
		if dst.Street == nil {
			dst.Street = &StreetData{}
		}
		dst.Street.Prefixes = concat(dst.Street.Prefixes, src.Street.Prefixes)
		dst.Street.Cores = concat(dst.Street.Cores, src.Street.Cores)
		dst.Street.StreetSuffixes = concat(dst.Street.StreetSuffixes, src.Street.StreetSuffixes)
	}

	if src.Faction != nil {
		if dst.Faction == nil {
			dst.Faction = &FactionData{}
		}
		dst.Faction.Prefixes = concat(dst.Faction.Prefixes, src.Faction.Prefixes)
		dst.Faction.Cores = concat(dst.Faction.Cores, src.Faction.Cores)
		dst.Faction.Suffixes = concat(dst.Faction.Suffixes, src.Faction.Suffixes)
	}
}

// concat always returns a freshly allocated pool so merged views never
// share backing arrays with their inputs.
func concat(a, b Pool) Pool {
	if a == nil && b == nil {
		return nil
	}
	out := make(Pool, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
