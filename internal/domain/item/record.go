package item

import "strings"

// Record is one item as returned by the items API.
// Optional numeric fields are pointers; nil means the API did not report them.
// A Record is never modified after decoding.
type Record struct {
	Name            string             `json:"name"`
	UniqueName      string             `json:"uniqueName,omitempty"`
	Description     string             `json:"description,omitempty"`
	Category        string             `json:"category"`
	Type            string             `json:"type,omitempty"`
	ProductCategory string             `json:"productCategory,omitempty"`
	ThumbnailURL    string             `json:"wikiaThumbnail,omitempty"`
	WikiURL         string             `json:"wikiaUrl,omitempty"`
	Rarity          string             `json:"rarity,omitempty"`
	Tradable        bool               `json:"tradable,omitempty"`
	Introduced      *Introduced        `json:"introduced,omitempty"`
	MasteryReq      *int               `json:"masteryReq,omitempty"`
	Disposition     *int               `json:"disposition,omitempty"`
	Polarities      []string           `json:"polarities,omitempty"`
	Polarity        string             `json:"polarity,omitempty"`
	BaseDrain       *int               `json:"baseDrain,omitempty"`
	Trigger         string             `json:"trigger,omitempty"`
	Noise           string             `json:"noise,omitempty"`
	MagazineSize    *int               `json:"magazineSize,omitempty"`
	FireRate        *float64           `json:"fireRate,omitempty"`
	ShotSpeed       *float64           `json:"shotSpeed,omitempty"`
	ReloadTime      *float64           `json:"reloadTime,omitempty"`
	Multishot       *float64           `json:"multishot,omitempty"`
	Accuracy        *float64           `json:"accuracy,omitempty"`
	CriticalChance  *float64           `json:"criticalChance,omitempty"`
	CriticalMult    *float64           `json:"criticalMultiplier,omitempty"`
	ProcChance      *float64           `json:"procChance,omitempty"`
	Damage          map[string]float64 `json:"damage,omitempty"`
	Attacks         []Attack           `json:"attacks,omitempty"`
	LevelStats      []LevelStat        `json:"levelStats,omitempty"`
	Components      []Component        `json:"components,omitempty"`
	Drops           []Drop             `json:"drops,omitempty"`
}

// Introduced names the update that added an item
type Introduced struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// Attack is one firing mode or melee attack
type Attack struct {
	Name         string             `json:"name"`
	Speed        *float64           `json:"speed,omitempty"`
	CritChance   *float64           `json:"crit_chance,omitempty"`
	CritMult     *float64           `json:"crit_mult,omitempty"`
	StatusChance *float64           `json:"status_chance,omitempty"`
	ShotType     string             `json:"shot_type,omitempty"`
	Damage       map[string]float64 `json:"damage,omitempty"`
}

// LevelStat lists the stat lines of one mod or arcane rank
type LevelStat struct {
	Stats []string `json:"stats"`
}

// Component is a crafting ingredient of an item
type Component struct {
	UniqueName  string `json:"uniqueName,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ItemCount   int    `json:"itemCount"`
	Tradable    bool   `json:"tradable,omitempty"`
	Ducats      int    `json:"ducats,omitempty"`
	Drops       []Drop `json:"drops,omitempty"`
}

// Drop is one place an item or component can be obtained
type Drop struct {
	Location string  `json:"location"`
	Type     string  `json:"type,omitempty"`
	Rarity   string  `json:"rarity,omitempty"`
	Chance   float64 `json:"chance"`
}

// Summary is a search hit
type Summary struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Family returns the family of the record
func (r *Record) Family() Family {
	return FamilyOf(r.Category)
}

// MaxRank is the highest rank index of a mod or arcane, or -1 without rank data
func (r *Record) MaxRank() int {
	return len(r.LevelStats) - 1
}

// Component returns the component with the given name
func (r *Record) Component(name string) (Component, bool) {
	for _, c := range r.Components {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Component{}, false
}

// DroppableComponents returns the components that have drop locations, in record order
func (r *Record) DroppableComponents() []Component {
	var out []Component
	for _, c := range r.Components {
		if c.Droppable() {
			out = append(out, c)
		}
	}
	return out
}

// Droppable reports whether the component has any drop locations
func (c Component) Droppable() bool {
	return len(c.Drops) > 0
}

// DropLocation returns the text after a "Location:" marker in the description
func (c Component) DropLocation() string {
	_, after, found := strings.Cut(c.Description, "Location:")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}
