package roster

import (
	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
)

// DefaultGloryLimit is the glory an army may spend before it is flagged
const DefaultGloryLimit = 10

// Totals are the two independent currency accumulators
type Totals struct {
	Ducats int `json:"ducats"`
	Glory  int `json:"glory"`
}

// Plus returns the element-wise sum
func (t Totals) Plus(other Totals) Totals {
	return Totals{
		Ducats: t.Ducats + other.Ducats,
		Glory:  t.Glory + other.Glory,
	}
}

func (t *Totals) add(c catalog.Cost) {
	ducats, glory := c.Split()
	t.Ducats += ducats
	t.Glory += glory
}

// ComputeTotals adds the unit's base cost and the cost of every selected
// item, each into the bucket of its own currency. Keys missing from the
// catalog contribute nothing.
func ComputeTotals(unit *catalog.Unit, selected []string, cat *catalog.Catalog) Totals {
	var t Totals
	if unit == nil {
		return t
	}

	t.add(unit.Cost)
	for _, key := range selected {
		item, ok := cat.Equipment(key)
		if !ok {
			continue
		}
		t.add(item.Cost)
	}
	return t
}

// ArmyTotals is the roster-wide sum with the glory cap check
type ArmyTotals struct {
	Ducats     int  `json:"ducats"`
	Glory      int  `json:"glory"`
	GloryLimit int  `json:"glory_limit"`
	OverCap    bool `json:"over_cap"`
}

// TotalArmy sums every slot. OverCap is advisory and never blocks edits.
func TotalArmy(r *Roster, gloryLimit int) ArmyTotals {
	var sum Totals
	if r != nil {
		for _, s := range r.Slots {
			sum = sum.Plus(s.Totals)
		}
	}

	return ArmyTotals{
		Ducats:     sum.Ducats,
		Glory:      sum.Glory,
		GloryLimit: gloryLimit,
		OverCap:    sum.Glory > gloryLimit,
	}
}
