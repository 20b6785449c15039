package catalog

import (
	"fmt"
	"strings"

	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
)

// Catalog is the read-only Units and Equipment reference data for a
// session. It is built once and never mutated, so it can be shared
// between sessions without locking.
type Catalog struct {
	units     []*Unit
	unitByKey map[string]*Unit

	equipment      []*Equipment
	equipmentByKey map[string]*Equipment
	byCategory     map[Category][]*Equipment
}

// New builds a Catalog from units and equipment in display order.
// Every problem found is reported together in a single validation error.
func New(units []*Unit, equipment []*Equipment) (*Catalog, error) {
	c := &Catalog{
		unitByKey:      make(map[string]*Unit, len(units)),
		equipmentByKey: make(map[string]*Equipment, len(equipment)),
		byCategory:     make(map[Category][]*Equipment, len(Categories)),
	}

	var problems []string

	for _, u := range units {
		if u == nil {
			continue
		}
		switch {
		case u.Key == "":
			problems = append(problems, "unit without key")
			continue
		case c.unitByKey[u.Key] != nil:
			problems = append(problems, fmt.Sprintf("duplicate unit %q", u.Key))
			continue
		}
		if u.Cost.Amount < 0 {
			problems = append(problems, fmt.Sprintf("unit %q has negative cost", u.Key))
		}
		if u.MaxCount < 0 {
			problems = append(problems, fmt.Sprintf("unit %q has negative max_count", u.Key))
		}
		c.units = append(c.units, u)
		c.unitByKey[u.Key] = u
	}

	for _, e := range equipment {
		if e == nil {
			continue
		}
		switch {
		case e.Key == "":
			problems = append(problems, "equipment without key")
			continue
		case c.equipmentByKey[e.Key] != nil:
			problems = append(problems, fmt.Sprintf("duplicate equipment %q", e.Key))
			continue
		}
		if e.Cost.Amount < 0 {
			problems = append(problems, fmt.Sprintf("equipment %q has negative cost", e.Key))
		}
		if !knownCategory(e.Category) {
			problems = append(problems, fmt.Sprintf("equipment %q has unknown category %q", e.Key, e.Category))
		}
		c.equipment = append(c.equipment, e)
		c.equipmentByKey[e.Key] = e
		c.byCategory[e.Category] = append(c.byCategory[e.Category], e)
	}

	if len(problems) > 0 {
		return nil, armyerr.Validationf("invalid catalog: %s", strings.Join(problems, "; ")).
			WithMeta("problems", problems)
	}

	return c, nil
}

func knownCategory(cat Category) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Unit looks up a unit by key
func (c *Catalog) Unit(key string) (*Unit, bool) {
	u, ok := c.unitByKey[key]
	return u, ok
}

// Equipment looks up an equipment item by key
func (c *Catalog) Equipment(key string) (*Equipment, bool) {
	e, ok := c.equipmentByKey[key]
	return e, ok
}

// Units returns every unit in document order
func (c *Catalog) Units() []*Unit {
	out := make([]*Unit, len(c.units))
	copy(out, c.units)
	return out
}

// AllEquipment returns every item, categories in document order
func (c *Catalog) AllEquipment() []*Equipment {
	out := make([]*Equipment, len(c.equipment))
	copy(out, c.equipment)
	return out
}

// EquipmentIn returns the items of one category in document order
func (c *Catalog) EquipmentIn(cat Category) []*Equipment {
	items := c.byCategory[cat]
	out := make([]*Equipment, len(items))
	copy(out, items)
	return out
}

// KeysIn returns the keys of every item in the given categories
func (c *Catalog) KeysIn(cats ...Category) []string {
	var keys []string
	for _, cat := range cats {
		for _, e := range c.byCategory[cat] {
			keys = append(keys, e.Key)
		}
	}
	return keys
}
