package item

// Family groups item categories that share a card layout
type Family int

const (
	FamilyResource Family = iota
	FamilyWeapon
	FamilyMod
	FamilyArcane
)

var weaponCategories = map[string]bool{
	"Primary":    true,
	"Secondary":  true,
	"Melee":      true,
	"Arch-Gun":   true,
	"Arch-Melee": true,
}

// FamilyOf maps a provider category onto a family.
// Anything that is not a weapon, mod or arcane is treated as a resource.
func FamilyOf(category string) Family {
	switch {
	case weaponCategories[category]:
		return FamilyWeapon
	case category == "Mods":
		return FamilyMod
	case category == "Arcanes":
		return FamilyArcane
	default:
		return FamilyResource
	}
}

// String returns the lower case family name
func (f Family) String() string {
	switch f {
	case FamilyWeapon:
		return "weapon"
	case FamilyMod:
		return "mod"
	case FamilyArcane:
		return "arcane"
	default:
		return "resource"
	}
}

// Label returns the capitalised family name used in notices
func (f Family) Label() string {
	switch f {
	case FamilyWeapon:
		return "Weapon"
	case FamilyMod:
		return "Mod"
	case FamilyArcane:
		return "Arcane"
	default:
		return "Resource"
	}
}

// Command returns the /search subcommand that looks up this family
func (f Family) Command() string {
	if f == FamilyResource {
		return "misc"
	}
	return f.String()
}

// FamilyForCommand resolves a /search subcommand name
func FamilyForCommand(command string) (Family, bool) {
	switch command {
	case "weapon":
		return FamilyWeapon, true
	case "mod":
		return FamilyMod, true
	case "arcane":
		return FamilyArcane, true
	case "misc":
		return FamilyResource, true
	default:
		return FamilyResource, false
	}
}

// ParseFamily resolves a lower case family name as returned by String
func ParseFamily(name string) (Family, bool) {
	for _, f := range []Family{FamilyWeapon, FamilyMod, FamilyArcane, FamilyResource} {
		if f.String() == name {
			return f, true
		}
	}
	return FamilyResource, false
}
