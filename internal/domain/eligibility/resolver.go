package eligibility

//go:generate mockgen -destination=mock/mock_resolver.go -package=mockeligibility -source=resolver.go

import (
	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
)

// Resolver decides which equipment a unit may select
type Resolver interface {
	EligibleKeys(unit *catalog.Unit, cat *catalog.Catalog) Set
}

// Rule pins a unit's eligible set regardless of its equipment note
type Rule struct {
	UnitKey    string             `yaml:"unit"`
	Keys       []string           `yaml:"keys"`
	Categories []catalog.Category `yaml:"categories"`
}

// DefaultRules are the unit-specific exceptions of the base game
var DefaultRules = []Rule{
	{
		UnitKey: "ecclesiasticPrisoners",
		Keys:    []string{"tortureDevice"},
	},
	{
		UnitKey:    "stigmaticNuns",
		Keys:       []string{"pistol", "autoPistol", "battleCross"},
		Categories: []catalog.Category{catalog.CategoryMelee, catalog.CategoryArmor, catalog.CategoryMisc},
	},
}

// unrestricted categories are granted to every unit without a rule
var unrestricted = []catalog.Category{catalog.CategoryMelee, catalog.CategoryArmor, catalog.CategoryMisc}

type resolver struct {
	rules  map[string]Rule
	parser Parser
}

// ResolverConfig holds the pieces of the priority chain
type ResolverConfig struct {
	Rules  []Rule // Optional, DefaultRules when nil
	Parser Parser // Optional, TextParser over DefaultNames when nil
}

// RuleSet returns the rules a resolver built from c applies
func (c *ResolverConfig) RuleSet() []Rule {
	if c == nil || c.Rules == nil {
		return DefaultRules
	}
	return c.Rules
}

// NewResolver creates a Resolver that checks the rule table first and
// falls back to parsing the unit's equipment note
func NewResolver(cfg *ResolverConfig) Resolver {
	if cfg == nil {
		cfg = &ResolverConfig{}
	}

	rules := cfg.RuleSet()

	parser := cfg.Parser
	if parser == nil {
		parser = NewTextParser(nil)
	}

	byUnit := make(map[string]Rule, len(rules))
	for _, rule := range rules {
		if _, exists := byUnit[rule.UnitKey]; exists {
			continue
		}
		byUnit[rule.UnitKey] = rule
	}

	return &resolver{
		rules:  byUnit,
		parser: parser,
	}
}

// EligibleKeys implements Resolver. Only keys present in cat are returned.
func (r *resolver) EligibleKeys(unit *catalog.Unit, cat *catalog.Catalog) Set {
	set := NewSet()
	if unit == nil || cat == nil {
		return set
	}

	if rule, ok := r.rules[unit.Key]; ok {
		addKnown(set, cat, rule.Keys)
		set.Add(cat.KeysIn(rule.Categories...)...)
		return set
	}

	if keys, matched := r.parser.RangedKeys(unit.AllowedEquipment); matched {
		addKnown(set, cat, keys)
	} else {
		set.Add(cat.KeysIn(catalog.CategoryRanged)...)
	}

	set.Add(cat.KeysIn(unrestricted...)...)
	return set
}

func addKnown(set Set, cat *catalog.Catalog, keys []string) {
	for _, k := range keys {
		if _, ok := cat.Equipment(k); ok {
			set.Add(k)
		}
	}
}

// Filter returns the eligible items of one category in catalog order
func Filter(set Set, cat *catalog.Catalog, category catalog.Category) []*catalog.Equipment {
	var out []*catalog.Equipment
	for _, e := range cat.EquipmentIn(category) {
		if set.Has(e.Key) {
			out = append(out, e)
		}
	}
	return out
}
