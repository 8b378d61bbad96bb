package generator

import (
	"namecraft/internal/theme"
)

type PoolSize struct {
	Path string `json:"path" yaml:"path"`
	Size int    `json:"size" yaml:"size"`
}

// Description summarises the merged pools of one theme. Combinations is the
// number of distinct template outputs per kind before collisions between
// entries, so it is an upper bound on the names a session can emit.
type Description struct {
	Theme        string                   `json:"theme" yaml:"theme"`
	Pools        []PoolSize               `json:"pools" yaml:"pools"`
	Combinations map[theme.EntityKind]int `json:"-" yaml:"-"`
}

// CombinationsByName keys Combinations by kind name.
func (d *Description) CombinationsByName() map[string]int {
	out := make(map[string]int, len(d.Combinations))
	for kind, n := range d.Combinations {
		out[kind.String()] = n
	}
	return out
}

func (g *Generator) DescribeTheme(ref theme.Ref) (*Description, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	data, err := g.registry.Theme(ref.ID())
	if err != nil {
		return nil, err
	}

	desc := &Description{
		Theme:        ref.String(),
		Combinations: combinations(data),
	}
	data.EachPool(func(path string, pool theme.Pool) {
		desc.Pools = append(desc.Pools, PoolSize{Path: path, Size: len(pool)})
	})
	return desc, nil
}

func combinations(data *theme.Data) map[theme.EntityKind]int {
	out := make(map[theme.EntityKind]int, len(theme.EntityKinds()))

	if data.NPC != nil {
		total := 0
		for _, g := range theme.Genders() {
			names := data.NPC.Genders[g]
			total += len(names.Prefixes) * len(names.Cores) * len(names.Suffixes)
		}
		out[theme.KindNPC] = total
	}
	if data.Building != nil {
		total := len(data.Building.Prefixes) * len(data.Building.Suffixes)
		for _, bt := range theme.BuildingTypes() {
			names := data.Building.Types[bt]
			total += len(names.Prefixes) * len(names.Descriptors) * len(names.Suffixes)
		}
		out[theme.KindBuilding] = total
	}
	if data.City != nil {
		out[theme.KindCity] = len(data.City.Prefixes) * len(data.City.Cores) * len(data.City.Suffixes)
	}
	if data.District != nil {
		out[theme.KindDistrict] = len(data.District.Descriptors) * len(data.District.LocationTypes)
	}
	if data.Street != nil {
		out[theme.KindStreet] = len(data.Street.Prefixes) * len(data.Street.Cores) * len(data.Street.StreetSuffixes)
	}
	if data.Faction != nil {
		out[theme.KindFaction] = len(data.Faction.Prefixes) * len(data.Faction.Cores) * len(data.Faction.Suffixes)
	}
	return out
}
