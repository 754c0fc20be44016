package card

import (
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
)

// ViewKind identifies one page layout of a card
type ViewKind int

const (
	BasicInfo ViewKind = iota
	DetailedAttacks
	RankStats
	Components
	ComponentDropLocations
	ResourceDropLocations
)

// PageSize is the number of drop locations shown per page
const PageSize = 25

var allowedViews = map[item.Family][]ViewKind{
	item.FamilyWeapon:   {BasicInfo, DetailedAttacks, Components, ComponentDropLocations},
	item.FamilyMod:      {BasicInfo, RankStats},
	item.FamilyArcane:   {BasicInfo, RankStats, ResourceDropLocations},
	item.FamilyResource: {BasicInfo, ResourceDropLocations},
}

// String returns the select menu value of the view
func (v ViewKind) String() string {
	switch v {
	case BasicInfo:
		return "basic_info"
	case DetailedAttacks:
		return "attacks"
	case RankStats:
		return "rank_stats"
	case Components:
		return "components"
	case ComponentDropLocations:
		return "component_drops"
	case ResourceDropLocations:
		return "drop_locations"
	default:
		return "unknown"
	}
}

// Label returns the menu label of the view
func (v ViewKind) Label() string {
	switch v {
	case BasicInfo:
		return "Basic Info"
	case DetailedAttacks:
		return "Attacks (Detailed)"
	case RankStats:
		return "Rank Stats"
	case Components:
		return "Components"
	case ComponentDropLocations:
		return "Component Drop Locations"
	case ResourceDropLocations:
		return "Drop Locations"
	default:
		return "Unknown"
	}
}

// Paginated reports whether the view is split into pages
func (v ViewKind) Paginated() bool {
	return v == ResourceDropLocations
}

// ParseViewKind resolves a select menu value
func ParseViewKind(value string) (ViewKind, bool) {
	for _, v := range []ViewKind{BasicInfo, DetailedAttacks, RankStats, Components, ComponentDropLocations, ResourceDropLocations} {
		if v.String() == value {
			return v, true
		}
	}
	return BasicInfo, false
}

// AllowedViews returns the view kinds valid for a family
func AllowedViews(f item.Family) []ViewKind {
	return append([]ViewKind(nil), allowedViews[f]...)
}

// IsAllowed reports whether a view kind is valid for a family
func IsAllowed(f item.Family, v ViewKind) bool {
	for _, allowed := range allowedViews[f] {
		if allowed == v {
			return true
		}
	}
	return false
}

// OfferedViews returns the menu entries for a record: the allowed kinds that
// have data to show. ComponentDropLocations is only reachable from a component
// button and is never offered.
func OfferedViews(rec *item.Record) []ViewKind {
	var out []ViewKind
	for _, v := range allowedViews[rec.Family()] {
		if v != ComponentDropLocations && hasData(rec, v) {
			out = append(out, v)
		}
	}
	return out
}

// IsOffered reports whether the menu of the record lists the view
func IsOffered(rec *item.Record, v ViewKind) bool {
	for _, offered := range OfferedViews(rec) {
		if offered == v {
			return true
		}
	}
	return false
}

func hasData(rec *item.Record, v ViewKind) bool {
	switch v {
	case BasicInfo:
		return true
	case DetailedAttacks:
		return len(rec.Attacks) > 0
	case RankStats:
		return len(rec.LevelStats) > 0
	case Components:
		return len(rec.Components) > 0
	case ComponentDropLocations:
		return len(rec.DroppableComponents()) > 0
	case ResourceDropLocations:
		return len(rec.Drops) > 0
	default:
		return false
	}
}

// TotalPages returns the number of pages needed for n entries, at least 1
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}
