// Package themetest builds theme fixtures for tests.
package themetest

import (
	"fmt"

	"namecraft/internal/theme"
)

// Complete returns a complete theme in which every pool holds size entries
// of the form <label><slot><index>.
func Complete(label string, size int) *theme.Data {
	p := func(slot string) theme.Pool {
		out := make(theme.Pool, size)
		for i := range out {
			out[i] = fmt.Sprintf("%s%s%d", label, slot, i)
		}
		return out
	}

	genders := make(map[theme.Gender]theme.GenderNames)
	for _, g := range theme.Genders() {
		genders[g] = theme.GenderNames{
			Prefixes: p(g.Key() + "P"),
			Cores:    p(g.Key() + "C"),
			Suffixes: p(g.Key() + "S"),
		}
	}

	types := make(map[theme.BuildingType]theme.BuildingTypeNames)
	for _, bt := range theme.BuildingTypes() {
		types[bt] = theme.BuildingTypeNames{
			Prefixes:    p(bt.Key() + "P"),
			Descriptors: p(bt.Key() + "D"),
			Suffixes:    p(bt.Key() + "S"),
		}
	}

	return &theme.Data{
		NPC: &theme.NPCData{Genders: genders},
		Building: &theme.BuildingData{
			Prefixes: p("bldP"),
			Suffixes: p("bldS"),
			Types:    types,
		},
		City:     &theme.CityData{Prefixes: p("cityP"), Cores: p("cityC"), Suffixes: p("cityS")},
		District: &theme.DistrictData{Descriptors: p("distD"), LocationTypes: p("distL")},
		Street:   &theme.StreetData{Prefixes: p("strP"), Cores: p("strC"), StreetSuffixes: p("strS")},
		Faction:  &theme.FactionData{Prefixes: p("facP"), Cores: p("facC"), Suffixes: p("facS")},
	}
}

// CityFragment is an extension that only contributes city pools. The
// entries fill the prefix, core and suffix pools in that order, one entry
// each; pools without an entry are left nil.
func CityFragment(entries ...string) *theme.Data {
	slot := func(i int) theme.Pool {
		if i >= len(entries) {
			return nil
		}
		return theme.Pool{entries[i]}
	}
	return &theme.Data{City: &theme.CityData{
		Prefixes: slot(0),
		Cores:    slot(1),
		Suffixes: slot(2),
	}}
}
