// Package theme holds the theme data model: syllable pools for every entity
// kind, the closed enumerations that key them, and the additive merge used to
// layer extensions over a base theme.
//
// Theme data is treated as immutable once handed to the registry; ingestion
// points take a deep copy with Clone.
package theme

// Pool is an ordered list of candidate syllables or terms for one template
// slot. A nil pool is absent; a non-nil empty pool is present but empty.
type Pool []string

func (p Pool) Clone() Pool {
	if p == nil {
		return nil
	}
	out := make(Pool, len(p))
	copy(out, p)
	return out
}

// GenderNames holds the NPC pools for one gender.
type GenderNames struct {
	Prefixes Pool
	Cores    Pool
	Suffixes Pool
}

// BuildingTypeNames holds the pools for one building classification.
type BuildingTypeNames struct {
	Prefixes    Pool
	Descriptors Pool
	Suffixes    Pool
}

type NPCData struct {
	Genders map[Gender]GenderNames
}

type BuildingData struct {
	Prefixes Pool
	Suffixes Pool
	Types    map[BuildingType]BuildingTypeNames
}

type CityData struct {
	Prefixes Pool
	Cores    Pool
	Suffixes Pool
}

type DistrictData struct {
	Descriptors   Pool
	LocationTypes Pool
}

type StreetData struct {
	Prefixes       Pool
	Cores          Pool
	StreetSuffixes Pool
}

type FactionData struct {
	Prefixes Pool
	Cores    Pool
	Suffixes Pool
}

// Data aggregates the pools for all six entity kinds. A nil section is
// absent, which is only legal for extension fragments.
type Data struct {
	NPC      *NPCData
	Building *BuildingData
	City     *CityData
	District *DistrictData
	Street   *StreetData
	Faction  *FactionData
}

func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	out := &Data{}
	if d.NPC != nil {
		out.NPC = &NPCData{}
		if d.NPC.Genders != nil {
			out.NPC.Genders = make(map[Gender]GenderNames, len(d.NPC.Genders))
			for g, names := range d.NPC.Genders {
				out.NPC.Genders[g] = GenderNames{
					Prefixes: names.Prefixes.Clone(),
					Cores:    names.Cores.Clone(),
					Suffixes: names.Suffixes.Clone(),
				}
			}
		}
	}
	if d.Building != nil {
		out.Building = &BuildingData{
			Prefixes: d.Building.Prefixes.Clone(),
			Suffixes: d.Building.Suffixes.Clone(),
		}
		if d.Building.Types != nil {
			out.Building.Types = make(map[BuildingType]BuildingTypeNames, len(d.Building.Types))
			for bt, names := range d.Building.Types {
				out.Building.Types[bt] = BuildingTypeNames{
					Prefixes:    names.Prefixes.Clone(),
					Descriptors: names.Descriptors.Clone(),
					Suffixes:    names.Suffixes.Clone(),
				}
			}
		}
	}
	if d.City != nil {
		out.City = &CityData{
			Prefixes: d.City.Prefixes.Clone(),
			Cores:    d.City.Cores.Clone(),
			Suffixes: d.City.Suffixes.Clone(),
		}
	}
	if d.District != nil {
		out.District = &DistrictData{
			Descriptors:   d.District.Descriptors.Clone(),
			LocationTypes: d.District.LocationTypes.Clone(),
		}
	}
	if d.Street != nil {
		out.Street = &StreetData{
			Prefixes:       d.Street.Prefixes.Clone(),
			Cores:          d.Street.Cores.Clone(),
			StreetSuffixes: d.Street.StreetSuffixes.Clone(),
		}
	}
	if d.Faction != nil {
		out.Faction = &FactionData{
			Prefixes: d.Faction.Prefixes.Clone(),
			Cores:    d.Faction.Cores.Clone(),
			Suffixes: d.Faction.Suffixes.Clone(),
		}
	}
	return out
}

// EachPool visits every pool path in a fixed order. Pools belonging to an
// absent section, gender or building type are visited as nil.
func (d *Data) EachPool(fn func(path string, pool Pool)) {
	var npc NPCData
	if d.NPC != nil {
		npc = *d.NPC
	}
	for _, g := range Genders() {
		names := npc.Genders[g]
		prefix := "npc." + g.Key() + "."
		fn(prefix+"prefixes", names.Prefixes)
		fn(prefix+"cores", names.Cores)
		fn(prefix+"suffixes", names.Suffixes)
	}

	var building BuildingData
	if d.Building != nil {
		building = *d.Building
	}
	fn("building.prefixes", building.Prefixes)
	fn("building.suffixes", building.Suffixes)
	for _, bt := range BuildingTypes() {
		names := building.Types[bt]
		prefix := "building.types." + bt.Key() + "."
		fn(prefix+"prefixes", names.Prefixes)
		fn(prefix+"descriptors", names.Descriptors)
		fn(prefix+"suffixes", names.Suffixes)
	}

	var city CityData
	if d.City != nil {
		city = *d.City
	}
	fn("city.prefixes", city.Prefixes)
	fn("city.cores", city.Cores)
	fn("city.suffixes", city.Suffixes)

	var district DistrictData
	if d.District != nil {
		district = *d.District
	}
	fn("district.descriptors", district.Descriptors)
	fn("district.locationTypes", district.LocationTypes)

	var street StreetData
	if d.Street != nil {
		street = *d.Street
	}
	fn("street.prefixes", street.Prefixes)
	fn("street.cores", street.Cores)
	fn("street.streetSuffixes", street.StreetSuffixes)

	var faction FactionData
	if d.Faction != nil {
		faction = *d.Faction
	}
	fn("faction.prefixes", faction.Prefixes)
	fn("faction.cores", faction.Cores)
	fn("faction.suffixes", faction.Suffixes)
}

// Pool returns the pool stored under path, as named by EachPool.
func (d *Data) Pool(path string) (Pool, bool) {
	var (
		found Pool
		ok    bool
	)
	d.EachPool(func(p string, pool Pool) {
		if p == path {
			found, ok = pool, true
		}
	})
	return found, ok
}
