package generator

import (
	"namecraft/internal/random"
	"namecraft/internal/theme"
)

// assembler draws one candidate name from the random source. Each call
// makes exactly one draw per pool it uses, in template order.
type assembler func(src random.Source) string

func pick(src random.Source, pool theme.Pool) string {
	i := src.Next(len(pool))
	if i >= len(pool) {
		return ""
	}
	return pool[i]
}

func npcAssembler(data *theme.Data, gender *theme.Gender) assembler {
	var genders map[theme.Gender]theme.GenderNames
	if data.NPC != nil {
		genders = data.NPC.Genders
	}
	all := theme.Genders()
	return func(src random.Source) string {
		var g theme.Gender
		if gender != nil {
			g = *gender
		} else {
			g = all[src.Next(len(all))]
		}
		names := genders[g]
		prefix := pick(src, names.Prefixes)
		core := pick(src, names.Cores)
		suffix := pick(src, names.Suffixes)
		return prefix + core + suffix
	}
}

func buildingAssembler(data *theme.Data, buildingType *theme.BuildingType) assembler {
	var building theme.BuildingData
	if data.Building != nil {
		building = *data.Building
	}
	if buildingType == nil {
		return func(src random.Source) string {
			prefix := pick(src, building.Prefixes)
			suffix := pick(src, building.Suffixes)
			return prefix + suffix
		}
	}
	names := building.Types[*buildingType]
	return func(src random.Source) string {
		prefix := pick(src, names.Prefixes)
		descriptor := pick(src, names.Descriptors)
		suffix := pick(src, names.Suffixes)
		return prefix + " " + descriptor + suffix
	}
}

func cityAssembler(data *theme.Data) assembler {
	var city theme.CityData
	if data.City != nil {
		city = *data.City
	}
	return func(src random.Source) string {
		prefix := pick(src, city.Prefixes)
		core := pick(src, city.Cores)
		suffix := pick(src, city.Suffixes)
		return prefix + core + suffix
	}
}

func districtAssembler(data *theme.Data) assembler {
	var district theme.DistrictData
	if data.District != nil {
		district = *data.District
	}
	return func(src random.Source) string {
		descriptor := pick(src, district.Descriptors)
		location := pick(src, district.LocationTypes)
		return descriptor + " " + location
	}
}

func streetAssembler(data *theme.Data) assembler {
	var street theme.StreetData
	if data.Street != nil {
		street = *data.Street
	}
	return func(src random.Source) string {
		prefix := pick(src, street.Prefixes)
		core := pick(src, street.Cores)
		suffix := pick(src, street.StreetSuffixes)
		return prefix + core + " " + suffix
	}
}

func factionAssembler(data *theme.Data) assembler {
	var faction theme.FactionData
	if data.Faction != nil {
		faction = *data.Faction
	}
	return func(src random.Source) string {
		prefix := pick(src, faction.Prefixes)
		core := pick(src, faction.Cores)
		suffix := pick(src, faction.Suffixes)
		return prefix + " " + core + suffix
	}
}
