package card

import (
	"fmt"
	"strconv"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	"github.com/0niSec/cephalon-seraph/internal/emoji"
)

// Input is everything needed to draw one view of a card
type Input struct {
	Record       *item.Record
	View         ViewKind
	Page         int
	ComponentKey string
	Prices       map[string]item.PriceResult
}

// Renderer draws card payloads. It holds no per-card state.
type Renderer struct {
	emoji emoji.Source
}

// NewRenderer creates a renderer that decorates cards from the given emoji source
func NewRenderer(source emoji.Source) *Renderer {
	if source == nil {
		panic("emoji source is required")
	}
	return &Renderer{emoji: source}
}

// Render draws the requested view. Missing optional fields are omitted or zeroed.
func (r *Renderer) Render(in Input) *Payload {
	table := r.emoji.Table()
	rec := in.Record

	switch in.View {
	case BasicInfo:
		switch rec.Family() {
		case item.FamilyWeapon:
			return r.weaponInfo(rec, table)
		case item.FamilyMod:
			return r.modInfo(rec, in.Prices, table)
		case item.FamilyArcane:
			return r.arcaneInfo(rec, in.Prices, table)
		default:
			return r.resourceInfo(rec)
		}
	case DetailedAttacks:
		return r.attacks(rec, table)
	case RankStats:
		return r.rankStats(rec, table)
	case Components:
		return r.components(rec, in.Prices, table)
	case ComponentDropLocations:
		return r.componentDrops(rec, in.ComponentKey)
	case ResourceDropLocations:
		return r.dropLocations(rec, in.Page)
	default:
		return r.resourceInfo(rec)
	}
}

func header(rec *item.Record, title string, color int) *Payload {
	return &Payload{
		Title:     title,
		URL:       rec.WikiURL,
		Color:     color,
		Thumbnail: rec.ThumbnailURL,
		Footer:    footerItems,
	}
}

func familyColor(f item.Family) int {
	switch f {
	case item.FamilyWeapon:
		return ColorWeapon
	case item.FamilyMod:
		return ColorMod
	case item.FamilyArcane:
		return ColorArcane
	default:
		return ColorResource
	}
}

func introducedLine(rec *item.Record) string {
	if rec.Introduced == nil {
		return ""
	}
	if rec.Introduced.Date == "" {
		return line("Introduced", rec.Introduced.Name)
	}
	return line("Introduced", rec.Introduced.Name+" - "+discordDate(rec.Introduced.Date))
}

func appendIf(lines []string, l string) []string {
	if l == "" {
		return lines
	}
	return append(lines, l)
}

func (r *Renderer) weaponInfo(rec *item.Record, table *emoji.Table) *Payload {
	p := header(rec, rec.Name, ColorWeapon)
	if rec.Description != "" {
		p.Description = "*" + rec.Description + "*"
	}

	var basic []string
	if rec.Type != "" {
		basic = append(basic, line("Type", rec.Type))
	}
	if rec.MasteryReq != nil {
		basic = append(basic, line("Mastery Rank", strconv.Itoa(*rec.MasteryReq)+" "+table.MasteryRank))
	}
	category := rec.Category
	if rec.ProductCategory != "" {
		category += " - " + splitCamelCase(rec.ProductCategory)
	}
	basic = append(basic, line("Category", category))
	if len(rec.Polarities) > 0 {
		basic = append(basic, line("Polarities", polarityList(rec.Polarities, table)))
	}
	if rec.Disposition != nil {
		basic = append(basic, line("Riven Disposition", strconv.Itoa(*rec.Disposition)))
	}
	basic = appendIf(basic, introducedLine(rec))
	p.addField("Basic Info", joinLines(basic), false)

	var stats []string
	if rec.Trigger != "" {
		stats = append(stats, line("Trigger", rec.Trigger))
	}
	if rec.Noise != "" {
		stats = append(stats, line("Noise", rec.Noise))
	}
	if rec.MagazineSize != nil {
		stats = append(stats, line("Magazine", strconv.Itoa(*rec.MagazineSize)))
	}
	numeric := []struct {
		label  string
		value  *float64
		format func(float64) string
	}{
		{"Fire Rate", rec.FireRate, formatNumber},
		{"Shot Speed", rec.ShotSpeed, formatNumber},
		{"Reload Time", rec.ReloadTime, formatNumber},
		{"Multishot", rec.Multishot, formatNumber},
		{"Accuracy", rec.Accuracy, formatNumber},
		{"Critical Chance", rec.CriticalChance, formatPercent},
		{"Critical Multiplier", rec.CriticalMult, func(v float64) string { return formatNumber(v) + "x" }},
		{"Status Chance", rec.ProcChance, formatPercent},
	}
	for _, stat := range numeric {
		if stat.value != nil {
			stats = append(stats, line(stat.label, stat.format(*stat.value)))
		}
	}
	p.addField("Weapon Info", joinLines(stats), false)
	p.addField("Damage", joinLines(damageLines(rec.Damage, table)), false)

	if len(rec.Attacks) > 0 {
		attacks := make([]string, 0, len(rec.Attacks))
		for _, a := range rec.Attacks {
			if a.ShotType == "" {
				attacks = append(attacks, a.Name)
				continue
			}
			attacks = append(attacks, a.Name+" - "+a.ShotType)
		}
		p.addField("Attacks", joinLines(attacks), false)
	}
	return p
}

func (r *Renderer) attacks(rec *item.Record, table *emoji.Table) *Payload {
	p := header(rec, rec.Name+" - Attacks (Detailed)", ColorWeapon)
	for _, a := range rec.Attacks {
		shotType := a.ShotType
		if shotType == "" {
			shotType = "None"
		}
		name := a.Name
		if name == "" {
			name = "Attack"
		}
		lines := []string{
			line("Fire Rate", formatNumber(floatOr(a.Speed, 0))+"/s"),
			line("Shot Type", shotType),
			line("Crit Chance", formatNumber(floatOr(a.CritChance, 0))+"%"),
			line("Crit Multiplier", formatNumber(floatOr(a.CritMult, 0))+"x"),
			line("Status Chance", formatNumber(floatOr(a.StatusChance, 0))+"%"),
		}
		if damage := damageLines(a.Damage, table); len(damage) > 0 {
			lines = append(lines, "", "**Damage:**")
			lines = append(lines, damage...)
		}
		p.addField(name, joinLines(lines), false)
	}
	return p
}

func (r *Renderer) modInfo(rec *item.Record, prices map[string]item.PriceResult, table *emoji.Table) *Payload {
	p := header(rec, rec.Name, ColorMod)
	p.Description = rec.Description
	p.Footer = footerPrices

	var info []string
	if rec.Type != "" {
		info = append(info, line("Type", rec.Type))
	}
	if rec.Rarity != "" {
		info = append(info, line("Rarity", rec.Rarity))
	}
	if rec.Polarity != "" {
		info = append(info, line("Polarity", polarityList([]string{rec.Polarity}, table)))
	}
	if rec.BaseDrain != nil {
		info = append(info, line("Base Drain", strconv.Itoa(*rec.BaseDrain)))
	}
	if rec.MaxRank() >= 0 {
		info = append(info, line("Max Rank", strconv.Itoa(rec.MaxRank())))
	}
	info = appendIf(info, introducedLine(rec))
	p.addField("Mod Info", joinLines(info), false)

	if rec.MaxRank() >= 0 {
		p.addField("Max Rank Stats", decorateStats(rec.LevelStats[rec.MaxRank()].Stats, table), false)
	}
	p.addField("Prices", joinLines(lookupPrices(prices, item.MarketKey(rec.Name), table)), false)
	return p
}

func arcaneInfoBlock(rec *item.Record) string {
	var info []string
	if rec.Type != "" {
		info = append(info, line("Type", rec.Type))
	}
	if rec.Rarity != "" {
		info = append(info, line("Rarity", rec.Rarity))
	}
	if rec.MaxRank() >= 0 {
		info = append(info, line("Max Rank", strconv.Itoa(rec.MaxRank())))
	}
	return joinLines(info)
}

func arcaneRankText(stat item.LevelStat, table *emoji.Table) string {
	if len(stat.Stats) == 0 {
		return ""
	}
	return decorateStat(formatDescription(stat.Stats[0]), table)
}

func (r *Renderer) arcaneInfo(rec *item.Record, prices map[string]item.PriceResult, table *emoji.Table) *Payload {
	p := header(rec, rec.Name, ColorArcane)
	p.Description = rec.Description
	p.Footer = footerPrices

	p.addField("Arcane Info", arcaneInfoBlock(rec), false)
	if rec.MaxRank() >= 0 {
		p.addField("Max Rank Stats", arcaneRankText(rec.LevelStats[rec.MaxRank()], table), false)
	}
	p.addField("Prices", joinLines(lookupPrices(prices, item.MarketKey(rec.Name), table)), false)
	return p
}

func (r *Renderer) rankStats(rec *item.Record, table *emoji.Table) *Payload {
	family := rec.Family()
	p := header(rec, rec.Name, familyColor(family))

	if family == item.FamilyArcane {
		p.Description = rec.Description
		p.addField("Arcane Info", arcaneInfoBlock(rec), false)
	}
	for rank, stat := range rec.LevelStats {
		var value string
		if family == item.FamilyArcane {
			value = arcaneRankText(stat, table)
		} else {
			value = decorateStats(stat.Stats, table)
		}
		p.addField(fmt.Sprintf("Rank %d", rank), value, false)
	}
	return p
}

func (r *Renderer) resourceInfo(rec *item.Record) *Payload {
	p := header(rec, rec.Name, familyColor(rec.Family()))
	p.Description = rec.Description

	var info []string
	if rec.Type != "" {
		info = append(info, line("Type", rec.Type))
	}
	info = append(info, line("Category", rec.Category))
	p.addField("Resource Info", joinLines(info), false)

	for _, c := range rec.Components {
		lines := []string{line("Count", strconv.Itoa(c.ItemCount))}
		if loc := c.DropLocation(); loc != "" {
			lines = append(lines, line("Location", loc))
		}
		p.addField(c.Name, joinLines(lines), false)
	}
	return p
}

func (r *Renderer) components(rec *item.Record, prices map[string]item.PriceResult, table *emoji.Table) *Payload {
	p := header(rec, rec.Name+" - Weapon Components", ColorWeapon)
	p.Footer = footerPrices

	for _, c := range rec.Components {
		lines := []string{line("Count", strconv.Itoa(c.ItemCount))}
		if loc := c.DropLocation(); loc != "" {
			lines = append(lines, line("Drops At", loc))
		}
		if c.Ducats > 0 {
			lines = append(lines, line("Ducats", strconv.Itoa(c.Ducats)+" "+table.Currency("ducats")))
		}
		if c.Tradable {
			lines = append(lines, "**Prices:**")
			lines = append(lines, lookupPrices(prices, item.ComponentMarketKey(rec.Name, c.Name), table)...)
		}
		p.addField(c.Name, joinLines(lines), false)
	}
	return p
}

func (r *Renderer) componentDrops(rec *item.Record, key string) *Payload {
	c, ok := rec.Component(key)
	title := key
	if ok {
		title = c.Name
	}
	p := header(rec, title+" - Drop Locations", ColorWeapon)
	if !ok || len(c.Drops) == 0 {
		p.Description = "No drop locations found."
		return p
	}

	for _, d := range c.Drops {
		p.addField(d.Location, joinLines([]string{
			line("Chance", formatPercent(d.Chance)),
			line("Rarity", d.Rarity),
		}), false)
	}
	if len(c.Drops) > maxFields {
		p.Footer = fmt.Sprintf("%s\nShowing %d of %d drop locations.", footerItems, maxFields, len(c.Drops))
	}
	return p
}

func (r *Renderer) dropLocations(rec *item.Record, page int) *Payload {
	p := header(rec, rec.Name+" - Drop Locations", familyColor(rec.Family()))
	p.URL = ""
	p.Thumbnail = ""

	total := TotalPages(len(rec.Drops))
	page = clampPage(page, total)
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(rec.Drops))

	for _, d := range rec.Drops[start:end] {
		p.addField(d.Location, joinLines([]string{
			line("Location", d.Location),
			line("Chance", formatPercent(d.Chance)),
			line("Rarity", d.Rarity),
			line("Type", d.Type),
		}), true)
	}
	if len(rec.Drops) == 0 {
		p.Description = "No drop locations found."
	}
	p.Footer = fmt.Sprintf("%s\nPage %d of %d", footerItems, page, total)
	return p
}

func lookupPrices(prices map[string]item.PriceResult, key string, table *emoji.Table) []string {
	result, ok := prices[key]
	return priceLines(result, ok, table)
}

func clampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
