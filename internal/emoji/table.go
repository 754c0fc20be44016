package emoji

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table maps game terms to Discord emoji markup. Keys are lower case.
type Table struct {
	DamageTypes map[string]string `yaml:"damage_types"`
	Polarities  map[string]string `yaml:"polarities"`
	Currencies  map[string]string `yaml:"currencies"`
	MasteryRank string            `yaml:"mastery_rank"`
}

// DamageType returns the emoji for a damage type, or "" when unknown
func (t *Table) DamageType(name string) string {
	return t.DamageTypes[strings.ToLower(name)]
}

// Polarity returns the emoji for a polarity, or "" when unknown
func (t *Table) Polarity(name string) string {
	return t.Polarities[strings.ToLower(name)]
}

// Currency returns the emoji for a currency, or "" when unknown
func (t *Table) Currency(name string) string {
	return t.Currencies[strings.ToLower(name)]
}

// Default returns the application emoji uploaded for the bot
func Default() *Table {
	return &Table{
		DamageTypes: map[string]string{
			"impact":      "<:impact:1284595963113242665>",
			"puncture":    "<:puncture:1284595982008451136>",
			"slash":       "<:slash:1284595994108891258>",
			"heat":        "<:heat:1284596005907464304>",
			"cold":        "<:cold:1284596014224773303>",
			"electricity": "<:electric:1284596024861524110>",
			"toxin":       "<:toxin:1284596033422233660>",
			"blast":       "<:blast:1284596042280468481>",
			"radiation":   "<:radiation:1284596050073489470>",
			"gas":         "<:gas:1284596057874890813>",
			"magnetic":    "<:magnetic:1284596066334806169>",
			"viral":       "<:viral:1284596075700686958>",
			"corrosive":   "<:corrosive:1284596085410496634>",
			"void":        "<:void:1284596095774625934>",
		},
		Polarities: map[string]string{
			"madurai": "<:maudrai:1284876072260997251>",
			"vazarin": "<:vazarin:1284876091416379422>",
			"naramon": "<:naramon:1284876114602496031>",
			"zenurik": "<:zenurik:1284876131744616458>",
			"unairu":  "<:unairu:1284876169245888542>",
			"penjaga": "<:penjaga:1284876150790819841>",
			"umbra":   "<:umbra:1284876185897271316>",
			"any":     "<:any:1284877114017054911>",
			"fusion":  "<:fusion:1284877131972608132>",
		},
		Currencies: map[string]string{
			"platinum": "💠",
			"ducats":   "🪙",
		},
		MasteryRank: "<:mastery_rank:1286096712577978388>",
	}
}

// Load reads a YAML emoji file. Sections missing from the file keep their defaults.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read emoji file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML emoji data on top of the defaults
func Parse(data []byte) (*Table, error) {
	var parsed Table
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse emoji file: %w", err)
	}

	table := Default()
	if parsed.DamageTypes != nil {
		table.DamageTypes = lowerKeys(parsed.DamageTypes)
	}
	if parsed.Polarities != nil {
		table.Polarities = lowerKeys(parsed.Polarities)
	}
	if parsed.Currencies != nil {
		table.Currencies = lowerKeys(parsed.Currencies)
	}
	if parsed.MasteryRank != "" {
		table.MasteryRank = parsed.MasteryRank
	}

	return table, nil
}

func lowerKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}
