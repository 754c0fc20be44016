package card

import (
	"strings"
	"unicode/utf8"
)

// Embed colors per family
const (
	ColorWeapon   = 0xE74C3C
	ColorMod      = 0xF1C40F
	ColorArcane   = 0x9B59B6
	ColorResource = 0x5865F2
)

// Discord embed limits
const (
	maxFields     = 25
	maxFieldValue = 1024
)

const (
	footerItems  = "Powered by WarframeStat.us"
	footerPrices = "Powered by WarframeStat.us and warframe.market\nPricing statistics may be delayed."
)

// Payload is a rendered card, independent of the chat platform
type Payload struct {
	Title       string
	Description string
	URL         string
	Color       int
	Thumbnail   string
	Footer      string
	Fields      []Field
}

// Field is one titled block of a card
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// addField appends a block unless its value is empty or the card is full
func (p *Payload) addField(name, value string, inline bool) {
	if value == "" || len(p.Fields) >= maxFields {
		return
	}
	if len(value) > maxFieldValue {
		value = truncate(value, maxFieldValue)
	}
	p.Fields = append(p.Fields, Field{Name: "**" + name + "**", Value: value, Inline: inline})
}

// truncate cuts s to at most n bytes, on a line boundary where possible
func truncate(s string, n int) string {
	end := n - len("\n…")
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	cut := s[:end]
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		return cut[:i] + "\n…"
	}
	return cut + "…"
}
