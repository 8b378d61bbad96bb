package theme

import (
	"fmt"
	"strings"
)

// Theme enumerates the built-in themes.
type Theme int

const (
	Fantasy Theme = iota
	Elves
	Dwarves
)

var themeNames = [...]string{"Fantasy", "Elves", "Dwarves"}

// Themes returns every built-in theme in declaration order.
func Themes() []Theme {
	return []Theme{Fantasy, Elves, Dwarves}
}

func (t Theme) Valid() bool {
	return t >= 0 && int(t) < len(themeNames)
}

func (t Theme) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Theme(%d)", int(t))
	}
	return themeNames[t]
}

// Key is the lower-case identifier used for lookups and embedded data files.
func (t Theme) Key() string {
	return strings.ToLower(t.String())
}

func (t Theme) Validate() error {
	if t.Valid() {
		return nil
	}
	return invalidParameter("theme", t.String(), themeNames[:])
}

// ParseTheme resolves a built-in theme by name, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes() {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return 0, invalidParameter("theme", s, themeNames[:])
}

// Gender selects the NPC name pools.
type Gender int

const (
	Male Gender = iota
	Female
	Neutral
)

var genderNames = [...]string{"Male", "Female", "Neutral"}

func Genders() []Gender {
	return []Gender{Male, Female, Neutral}
}

func (g Gender) Valid() bool {
	return g >= 0 && int(g) < len(genderNames)
}

func (g Gender) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Gender(%d)", int(g))
	}
	return genderNames[g]
}

func (g Gender) Key() string {
	return strings.ToLower(g.String())
}

func (g Gender) Validate() error {
	if g.Valid() {
		return nil
	}
	return invalidParameter("gender", g.String(), genderNames[:])
}

func ParseGender(s string) (Gender, error) {
	for _, g := range Genders() {
		if strings.EqualFold(strings.TrimSpace(s), g.String()) {
			return g, nil
		}
	}
	return 0, invalidParameter("gender", s, genderNames[:])
}

// BuildingType is the closed set of building classifications a complete
// theme must provide pools for.
type BuildingType int

const (
	Tavern BuildingType = iota
	Inn
	Shop
	Temple
	Guild
	Smithy
	Library
)

var buildingTypeNames = [...]string{"Tavern", "Inn", "Shop", "Temple", "Guild", "Smithy", "Library"}

func BuildingTypes() []BuildingType {
	return []BuildingType{Tavern, Inn, Shop, Temple, Guild, Smithy, Library}
}

func (b BuildingType) Valid() bool {
	return b >= 0 && int(b) < len(buildingTypeNames)
}

func (b BuildingType) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BuildingType(%d)", int(b))
	}
	return buildingTypeNames[b]
}

func (b BuildingType) Key() string {
	return strings.ToLower(b.String())
}

func (b BuildingType) Validate() error {
	if b.Valid() {
		return nil
	}
	return invalidParameter("building type", b.String(), buildingTypeNames[:])
}

func ParseBuildingType(s string) (BuildingType, error) {
	for _, b := range BuildingTypes() {
		if strings.EqualFold(strings.TrimSpace(s), b.String()) {
			return b, nil
		}
	}
	return 0, invalidParameter("building type", s, buildingTypeNames[:])
}

// EntityKind is the category of thing being named. Uniqueness is tracked
// per kind.
type EntityKind int

const (
	KindNPC EntityKind = iota
	KindBuilding
	KindCity
	KindDistrict
	KindStreet
	KindFaction
)

var entityKindNames = [...]string{"NPC", "Building", "City", "District", "Street", "Faction"}

func EntityKinds() []EntityKind {
	return []EntityKind{KindNPC, KindBuilding, KindCity, KindDistrict, KindStreet, KindFaction}
}

func (k EntityKind) Valid() bool {
	return k >= 0 && int(k) < len(entityKindNames)
}

func (k EntityKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
	return entityKindNames[k]
}

func (k EntityKind) Validate() error {
	if k.Valid() {
		return nil
	}
	return invalidParameter("entity kind", k.String(), entityKindNames[:])
}

func ParseEntityKind(s string) (EntityKind, error) {
	for _, k := range EntityKinds() {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return 0, invalidParameter("entity kind", s, entityKindNames[:])
}
