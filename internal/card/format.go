package card

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/0niSec/cephalon-seraph/internal/emoji"
)

var (
	statPlaceholder = regexp.MustCompile(`<DT_(\w+)>(\w+)`)
	minuteSeconds   = regexp.MustCompile(`(\d+)m(\d+)s`)
)

// damageOrder is the in-game ordering of damage types; unknown types sort after it
var damageOrder = []string{
	"impact", "puncture", "slash",
	"heat", "cold", "electricity", "toxin",
	"blast", "radiation", "gas", "magnetic", "viral", "corrosive",
	"void", "tau", "true",
}

// formatNumber rounds to 2 decimal places and drops trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func formatPercent(v float64) string {
	return formatNumber(v*100) + "%"
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// splitCamelCase turns "LongGuns" into "Long Guns" and "melee" into "Melee"
func splitCamelCase(word string) string {
	var words []string
	var current []rune
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) && len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// formatDescription breaks an arcane stat sentence into display lines
func formatDescription(description string) string {
	description = strings.ReplaceAll(description, ":", ":\n")
	description = minuteSeconds.ReplaceAllString(description, "${1}m. ${2}s")
	description = strings.ReplaceAll(description, "+1 Arcane Revive", "\n+1 Arcane Revive")
	return strings.TrimSpace(description)
}

// discordDate converts YYYY-MM-DD into a Discord date timestamp, or returns it unchanged
func discordDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("<t:%d:D>", t.Unix())
}

// decorateStat replaces <DT_X>Word placeholders with the Word emoji and keeps the word
func decorateStat(stat string, table *emoji.Table) string {
	return statPlaceholder.ReplaceAllStringFunc(stat, func(match string) string {
		word := statPlaceholder.FindStringSubmatch(match)[2]
		return table.DamageType(word) + word
	})
}

func decorateStats(stats []string, table *emoji.Table) string {
	lines := make([]string, len(stats))
	for i, stat := range stats {
		lines[i] = decorateStat(stat, table)
	}
	return strings.Join(lines, "\n")
}

// polarityList renders polarities as "emoji Name" joined by commas
func polarityList(polarities []string, table *emoji.Table) string {
	parts := make([]string, 0, len(polarities))
	for _, p := range polarities {
		parts = append(parts, strings.TrimSpace(table.Polarity(p)+" "+capitalize(p)))
	}
	return strings.Join(parts, ", ")
}

// damageLines lists non-zero damage types in a stable order, excluding the total
func damageLines(damage map[string]float64, table *emoji.Table) []string {
	types := make([]string, 0, len(damage))
	for name, value := range damage {
		if value == 0 || strings.EqualFold(name, "total") {
			continue
		}
		types = append(types, name)
	}
	sort.Slice(types, func(i, j int) bool {
		ri, rj := damageRank(types[i]), damageRank(types[j])
		if ri != rj {
			return ri < rj
		}
		return types[i] < types[j]
	})

	lines := make([]string, 0, len(types))
	for _, name := range types {
		label := strings.TrimSpace(table.DamageType(name) + " **" + splitCamelCase(name) + "**")
		lines = append(lines, fmt.Sprintf("%s: %s", label, formatNumber(damage[name])))
	}
	return lines
}

func damageRank(name string) int {
	lower := strings.ToLower(name)
	for i, known := range damageOrder {
		if known == lower {
			return i
		}
	}
	return len(damageOrder)
}

// line renders a bold label and value
func line(label, value string) string {
	return "**" + label + ":** " + value
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
