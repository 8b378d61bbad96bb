package parser

import (
	"fmt"
	"sort"

	"namecraft/internal/theme"
	"namecraft/internal/validate"
)

// rawPool keeps pointers so explicit nulls can be told apart from empty
// strings.
type rawPool []*string

type rawTheme struct {
	ID       string                `json:"id" yaml:"id"`
	Extends  string                `json:"extends" yaml:"extends"`
	NPC      map[string]*rawGender `json:"npc" yaml:"npc"`
	Building *rawBuilding          `json:"building" yaml:"building"`
	City     *rawCity              `json:"city" yaml:"city"`
	District *rawDistrict          `json:"district" yaml:"district"`
	Street   *rawStreet            `json:"street" yaml:"street"`
	Faction  *rawFaction           `json:"faction" yaml:"faction"`
}

type rawGender struct {
	Prefixes rawPool `json:"prefixes" yaml:"prefixes"`
	Cores    rawPool `json:"cores" yaml:"cores"`
	Suffixes rawPool `json:"suffixes" yaml:"suffixes"`
}

type rawBuilding struct {
	Prefixes rawPool                     `json:"prefixes" yaml:"prefixes"`
	Suffixes rawPool                     `json:"suffixes" yaml:"suffixes"`
	Types    map[string]*rawBuildingType `json:"types" yaml:"types"`
}

type rawBuildingType struct {
	Prefixes    rawPool `json:"prefixes" yaml:"prefixes"`
	Descriptors rawPool `json:"descriptors" yaml:"descriptors"`
	Suffixes    rawPool `json:"suffixes" yaml:"suffixes"`
}

type rawCity struct {
	Prefixes rawPool `json:"prefixes" yaml:"prefixes"`
	Cores    rawPool `json:"cores" yaml:"cores"`
	Suffixes rawPool `json:"suffixes" yaml:"suffixes"`
}

type rawDistrict struct {
	Descriptors   rawPool `json:"descriptors" yaml:"descriptors"`
	LocationTypes rawPool `json:"locationTypes" yaml:"locationTypes"`
}

type rawStreet struct {
	Prefixes       rawPool `json:"prefixes" yaml:"prefixes"`
	Cores          rawPool `json:"cores" yaml:"cores"`
	StreetSuffixes rawPool `json:"streetSuffixes" yaml:"streetSuffixes"`
}

type rawFaction struct {
	Prefixes rawPool `json:"prefixes" yaml:"prefixes"`
	Cores    rawPool `json:"cores" yaml:"cores"`
	Suffixes rawPool `json:"suffixes" yaml:"suffixes"`
}

func (r *rawTheme) toData(report *validate.Report) *theme.Data {
	data := &theme.Data{}

	if r.NPC != nil {
		data.NPC = &theme.NPCData{Genders: make(map[theme.Gender]theme.GenderNames)}
		for _, key := range sortedKeys(r.NPC) {
			g, err := theme.ParseGender(key)
			if err != nil {
				report.Add(validate.SeverityError, validate.CodeUnknownKey, "npc."+key, fmt.Sprintf("npc.%s is not a known gender", key))
				continue
			}
			raw := r.NPC[key]
			if raw == nil {
				continue
			}
			path := "npc." + g.Key() + "."
			data.NPC.Genders[g] = theme.GenderNames{
				Prefixes: raw.Prefixes.toPool(report, path+"prefixes"),
				Cores:    raw.Cores.toPool(report, path+"cores"),
				Suffixes: raw.Suffixes.toPool(report, path+"suffixes"),
			}
		}
	}

	if r.Building != nil {
		data.Building = &theme.BuildingData{
			Prefixes: r.Building.Prefixes.toPool(report, "building.prefixes"),
			Suffixes: r.Building.Suffixes.toPool(report, "building.suffixes"),
			Types:    make(map[theme.BuildingType]theme.BuildingTypeNames),
		}
		for _, key := range sortedKeys(r.Building.Types) {
			bt, err := theme.ParseBuildingType(key)
			if err != nil {
				report.Add(validate.SeverityError, validate.CodeUnknownKey, "building.types."+key, fmt.Sprintf("building.types.%s is not a known building type", key))
				continue
			}
			raw := r.Building.Types[key]
			if raw == nil {
				continue
			}
			path := "building.types." + bt.Key() + "."
			data.Building.Types[bt] = theme.BuildingTypeNames{
				Prefixes:    raw.Prefixes.toPool(report, path+"prefixes"),
				Descriptors: raw.Descriptors.toPool(report, path+"descriptors"),
				Suffixes:    raw.Suffixes.toPool(report, path+"suffixes"),
			}
		}
	}

	if r.City != nil {
		data.City = &theme.CityData{
			Prefixes: r.City.Prefixes.toPool(report, "city.prefixes"),
			Cores:    r.City.Cores.toPool(report, "city.cores"),
			Suffixes: r.City.Suffixes.toPool(report, "city.suffixes"),
		}
	}
	if r.District != nil {
		data.District = &theme.DistrictData{
			Descriptors:   r.District.Descriptors.toPool(report, "district.descriptors"),
			LocationTypes: r.District.LocationTypes.toPool(report, "district.locationTypes"),
		}
	}
	if r.Street != nil {
		data.Street = &theme.StreetData{
			Prefixes:       r.Street.Prefixes.toPool(report, "street.prefixes"),
			Cores:          r.Street.Cores.toPool(report, "street.cores"),
			StreetSuffixes: r.Street.StreetSuffixes.toPool(report, "street.streetSuffixes"),
		}
	}
	if r.Faction != nil {
		data.Faction = &theme.FactionData{
			Prefixes: r.Faction.Prefixes.toPool(report, "faction.prefixes"),
			Cores:    r.Faction.Cores.toPool(report, "faction.cores"),
			Suffixes: r.Faction.Suffixes.toPool(report, "faction.suffixes"),
		}
	}

	return data
}

// toPool drops null entries, recording each one.
func (p rawPool) toPool(report *validate.Report, path string) theme.Pool {
	if p == nil {
		return nil
	}
	out := make(theme.Pool, 0, len(p))
	for i, entry := range p {
		if entry == nil {
			field := fmt.Sprintf("%s[%d]", path, i)
			report.Add(validate.SeverityError, validate.CodeNullEntry, field, fmt.Sprintf("%s must not be null", field))
			continue
		}
		out = append(out, *entry)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
