// Package catalogfile reads the Units and Equipment documents into a
// catalog. Documents may be JSON or YAML; key order is preserved so units
// and items are shown in the order they were written. Mercenaries are
// listed last, in the order of the configured mercenary keys.
package catalogfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
)

// Config points the loader at the two documents
type Config struct {
	UnitsPath     string
	EquipmentPath string

	// MercenaryKeys flags hired units. Defaults to catalog.DefaultMercenaryKeys.
	MercenaryKeys []string
}

// Load reads both documents and builds the catalog
func Load(cfg *Config) (*catalog.Catalog, error) {
	if cfg == nil {
		return nil, armyerr.InvalidArgument("config cannot be nil")
	}

	units, err := os.ReadFile(cfg.UnitsPath)
	if err != nil {
		return nil, fmt.Errorf("read units %s: %w", cfg.UnitsPath, err)
	}

	equipment, err := os.ReadFile(cfg.EquipmentPath)
	if err != nil {
		return nil, fmt.Errorf("read equipment %s: %w", cfg.EquipmentPath, err)
	}

	return Parse(units, equipment, cfg.MercenaryKeys)
}

// Parse decodes the documents. All malformations are collected into one
// validation error; items without a key are section headers and skipped.
func Parse(unitsData, equipmentData []byte, mercenaryKeys []string) (*catalog.Catalog, error) {
	if mercenaryKeys == nil {
		mercenaryKeys = catalog.DefaultMercenaryKeys
	}
	mercenaries := make(map[string]bool, len(mercenaryKeys))
	for _, k := range mercenaryKeys {
		mercenaries[k] = true
	}

	p := &parser{}
	units := p.units(unitsData, mercenaries)
	equipment := p.equipment(equipmentData)

	if len(p.problems) > 0 {
		return nil, armyerr.Validationf("malformed catalog: %s", strings.Join(p.problems, "; ")).
			WithMeta("problems", p.problems)
	}

	return catalog.New(listingOrder(units, mercenaryKeys), equipment)
}

// listingOrder keeps core units in document order and moves mercenaries
// after them, ordered as in mercenaryKeys
func listingOrder(units []*catalog.Unit, mercenaryKeys []string) []*catalog.Unit {
	ordered := make([]*catalog.Unit, 0, len(units))
	hired := make(map[string]*catalog.Unit)
	for _, u := range units {
		if !u.Mercenary || hired[u.Key] != nil {
			ordered = append(ordered, u)
			continue
		}
		hired[u.Key] = u
	}

	for _, key := range mercenaryKeys {
		if u, ok := hired[key]; ok {
			ordered = append(ordered, u)
			delete(hired, key)
		}
	}
	return ordered
}

type parser struct {
	problems []string
}

func (p *parser) fail(format string, args ...any) {
	p.problems = append(p.problems, fmt.Sprintf(format, args...))
}

func (p *parser) mapping(data []byte, doc string) *yaml.Node {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		p.fail("%s: %v", doc, err)
		return nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		p.fail("%s: expected a mapping at the top level", doc)
		return nil
	}
	return root.Content[0]
}

func (p *parser) units(data []byte, mercenaries map[string]bool) []*catalog.Unit {
	node := p.mapping(data, "units")
	if node == nil {
		return nil
	}

	units := make([]*catalog.Unit, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		var doc unitDoc
		if err := node.Content[i+1].Decode(&doc); err != nil {
			p.fail("unit %s: %v", key, err)
			continue
		}

		ok := true
		if doc.Name == "" {
			p.fail("unit %s: missing name", key)
			ok = false
		}
		if problem := doc.Cost.problem(); problem != "" {
			p.fail("unit %s: %s", key, problem)
			ok = false
		}
		if doc.MaxCount == nil {
			p.fail("unit %s: missing max_count", key)
			ok = false
		}
		if !ok {
			continue
		}

		units = append(units, &catalog.Unit{
			Key:              key,
			Name:             doc.Name,
			Cost:             doc.Cost.toCost(),
			MaxCount:         *doc.MaxCount,
			AllowedEquipment: doc.AllowedEquipment,
			Stats:            doc.stats(),
			Keywords:         doc.Keywords,
			Description:      doc.Description,
			Abilities:        doc.Abilities,
			Mercenary:        mercenaries[key],
		})
	}
	return units
}

func (p *parser) equipment(data []byte) []*catalog.Equipment {
	node := p.mapping(data, "equipment")
	if node == nil {
		return nil
	}

	var items []*catalog.Equipment
	for i := 0; i+1 < len(node.Content); i += 2 {
		section := node.Content[i].Value
		category, known := catalog.ParseCategory(section)
		if !known {
			p.fail("equipment: unknown section %q", section)
			continue
		}

		var docs []equipmentDoc
		if err := node.Content[i+1].Decode(&docs); err != nil {
			p.fail("equipment %s: %v", section, err)
			continue
		}

		for _, doc := range docs {
			if doc.Key == "" {
				continue
			}
			if doc.Name == "" {
				p.fail("equipment %s: missing name", doc.Key)
				continue
			}
			if problem := doc.Cost.problem(); problem != "" {
				p.fail("equipment %s: %s", doc.Key, problem)
				continue
			}

			items = append(items, &catalog.Equipment{
				Key:      doc.Key,
				Name:     doc.Name,
				Cost:     doc.Cost.toCost(),
				Category: category,
				Rules:    doc.rules(),
			})
		}
	}
	return items
}
