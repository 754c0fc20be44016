package item

import (
	"regexp"
	"strings"
)

var repeatedUnderscores = regexp.MustCompile(`_+`)

// MarketKey converts an item name into a warframe.market url name,
// e.g. "Primed Continuity" -> "primed_continuity"
func MarketKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	return repeatedUnderscores.ReplaceAllString(key, "_")
}

// ComponentMarketKey returns the url name of a component set part,
// e.g. ("Braton Prime", "Barrel") -> "braton_prime_barrel"
func ComponentMarketKey(itemName, componentName string) string {
	return MarketKey(itemName) + "_" + MarketKey(componentName)
}

// PriceQuote is one live sell order
type PriceQuote struct {
	Platinum int
	Seller   string
	Status   string
	ModRank  *int
}

// PriceResult is the outcome of one price lookup. Err set means the lookup failed
// and the entry renders as unavailable; an empty Quotes slice means no sellers.
type PriceResult struct {
	Quotes []PriceQuote
	Err    error
}
