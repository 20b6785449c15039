package catalogfile

import (
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
)

// costDoc is the cost block shared by units and equipment
type costDoc struct {
	Value    *int    `yaml:"value"`
	Currency *string `yaml:"currency"`
}

// unitDoc is one entry of units.json, keyed by unit key
type unitDoc struct {
	Name             string            `yaml:"name"`
	Cost             *costDoc          `yaml:"cost"`
	MaxCount         *int              `yaml:"max_count"`
	AllowedEquipment string            `yaml:"allowedEquipment"`
	Stats            yaml.Node         `yaml:"stats"`
	Keywords         []string          `yaml:"keywords"`
	Description      string            `yaml:"description"`
	Abilities        []catalog.Ability `yaml:"abilities"`
}

// equipmentDoc is one item of an equipment.json section
type equipmentDoc struct {
	Key          string   `yaml:"key"`
	Name         string   `yaml:"name"`
	Cost         *costDoc `yaml:"cost"`
	Effect       string   `yaml:"effect"`
	SpecialRules string   `yaml:"specialRules"`
}

// problem names the first missing field of the cost block, or "" when
// the block is complete
func (c *costDoc) problem() string {
	switch {
	case c == nil || c.Value == nil:
		return "missing cost.value"
	case c.Currency == nil || *c.Currency == "":
		return "missing cost.currency"
	}
	return ""
}

func (c *costDoc) toCost() catalog.Cost {
	return catalog.Cost{
		Amount:   *c.Value,
		Currency: catalog.ParseCurrency(*c.Currency),
	}
}

func (d *equipmentDoc) rules() string {
	if d.Effect != "" {
		return d.Effect
	}
	return d.SpecialRules
}

// stats reads the stats mapping in document order
func (d *unitDoc) stats() []catalog.Stat {
	if d.Stats.Kind != yaml.MappingNode {
		return nil
	}

	stats := make([]catalog.Stat, 0, len(d.Stats.Content)/2)
	for i := 0; i+1 < len(d.Stats.Content); i += 2 {
		stats = append(stats, catalog.Stat{
			Name:  d.Stats.Content[i].Value,
			Value: d.Stats.Content[i+1].Value,
		})
	}
	return stats
}
