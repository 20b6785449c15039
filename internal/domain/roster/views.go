package roster

import (
	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	"github.com/KirkDiggler/army-builder/internal/domain/eligibility"
)

// CategoryOptions are the selectable items of one category
type CategoryOptions struct {
	Category catalog.Category
	Label    string
	Items    []*catalog.Equipment
}

// UnitOption is what the UI shows on a unit card
type UnitOption struct {
	Unit      *catalog.Unit
	Remaining int

	// Hidden is set once the unit is at its max count
	Hidden    bool
	Equipment []CategoryOptions
}

// SlotView is one row of the roster summary
type SlotView struct {
	Index     int
	ID        string
	UnitKey   string
	Name      string
	Equipment []string
	Ducats    int
	Glory     int
}

// Summary is the roster as presented: slot rows and army totals
type Summary struct {
	RosterID string
	Name     string
	Slots    []SlotView
	Army     ArmyTotals
}

// Options lists every unit with its eligible equipment and remaining
// capacity. Core units come first, mercenaries after, each group in
// catalog order. Catalogs read by catalogfile already carry mercenaries
// in their configured order.
func (m *Manager) Options(r *Roster) []UnitOption {
	units := m.catalog.Units()
	options := make([]UnitOption, 0, len(units))

	for _, mercenaries := range []bool{false, true} {
		for _, unit := range units {
			if unit.Mercenary != mercenaries {
				continue
			}
			options = append(options, m.option(r, unit))
		}
	}

	return options
}

// EquipmentOptions groups the eligible items of unitKey by category
func (m *Manager) EquipmentOptions(unitKey string) ([]CategoryOptions, error) {
	unit, err := m.unit(unitKey)
	if err != nil {
		return nil, err
	}
	return m.equipmentOptions(unit), nil
}

func (m *Manager) option(r *Roster, unit *catalog.Unit) UnitOption {
	remaining := m.RemainingCapacity(r, unit.Key)
	return UnitOption{
		Unit:      unit,
		Remaining: remaining,
		Hidden:    remaining <= 0,
		Equipment: m.equipmentOptions(unit),
	}
}

func (m *Manager) equipmentOptions(unit *catalog.Unit) []CategoryOptions {
	eligible := m.resolver.EligibleKeys(unit, m.catalog)

	groups := make([]CategoryOptions, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		groups = append(groups, CategoryOptions{
			Category: cat,
			Label:    cat.Label(),
			Items:    eligibility.Filter(eligible, m.catalog, cat),
		})
	}
	return groups
}

// Summarize builds the slot rows and army totals for display
func (m *Manager) Summarize(r *Roster) *Summary {
	summary := &Summary{
		Army: m.TotalArmy(r),
	}
	if r == nil {
		return summary
	}

	summary.RosterID = r.ID
	summary.Name = r.Name
	summary.Slots = make([]SlotView, 0, len(r.Slots))
	for i, s := range r.Slots {
		summary.Slots = append(summary.Slots, SlotView{
			Index:     i,
			ID:        s.ID,
			UnitKey:   s.UnitKey,
			Name:      s.Name,
			Equipment: append([]string(nil), s.Equipment...),
			Ducats:    s.Totals.Ducats,
			Glory:     s.Totals.Glory,
		})
	}

	return summary
}
