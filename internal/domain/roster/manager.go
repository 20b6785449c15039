package roster

import (
	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	"github.com/KirkDiggler/army-builder/internal/domain/eligibility"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
	"github.com/KirkDiggler/army-builder/internal/uuid"
)

// Manager applies roster operations against a catalog. It holds no roster
// state of its own; every call takes the roster it works on.
type Manager struct {
	catalog       *catalog.Catalog
	resolver      eligibility.Resolver
	uuidGenerator uuid.Generator
	gloryLimit    int
}

// ManagerConfig holds the dependencies of a Manager
type ManagerConfig struct {
	Catalog       *catalog.Catalog     // Required
	Resolver      eligibility.Resolver // Optional, default rule table when nil
	UUIDGenerator uuid.Generator       // Optional
	GloryLimit    int                  // Optional, DefaultGloryLimit when zero
}

// NewManager creates a Manager
func NewManager(cfg *ManagerConfig) *Manager {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}

	m := &Manager{
		catalog:       cfg.Catalog,
		resolver:      cfg.Resolver,
		uuidGenerator: cfg.UUIDGenerator,
		gloryLimit:    cfg.GloryLimit,
	}
	if m.resolver == nil {
		m.resolver = eligibility.NewResolver(nil)
	}
	if m.uuidGenerator == nil {
		m.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if m.gloryLimit == 0 {
		m.gloryLimit = DefaultGloryLimit
	}

	return m
}

// Catalog returns the catalog the manager resolves against
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// GloryLimit returns the advisory glory cap
func (m *Manager) GloryLimit() int {
	return m.gloryLimit
}

// EligibleKeys returns the equipment keys unitKey may select
func (m *Manager) EligibleKeys(unitKey string) (eligibility.Set, error) {
	unit, err := m.unit(unitKey)
	if err != nil {
		return nil, err
	}
	return m.resolver.EligibleKeys(unit, m.catalog), nil
}

// RemainingCapacity is max count minus the slots already holding unitKey.
// Unknown units have no capacity.
func (m *Manager) RemainingCapacity(r *Roster, unitKey string) int {
	unit, ok := m.catalog.Unit(unitKey)
	if !ok {
		return 0
	}
	if r == nil {
		return unit.MaxCount
	}
	return unit.MaxCount - r.Count(unitKey)
}

// AddSlots appends quantity new slots of unitKey with base-cost totals.
// Nothing is appended unless all of them fit.
func (m *Manager) AddSlots(r *Roster, unitKey string, quantity int) ([]*Slot, error) {
	if r == nil {
		return nil, armyerr.InvalidArgument("roster cannot be nil")
	}
	if quantity <= 0 {
		return nil, armyerr.InvalidArgumentf("quantity must be positive, got %d", quantity)
	}

	unit, err := m.unit(unitKey)
	if err != nil {
		return nil, err
	}

	remaining := m.RemainingCapacity(r, unitKey)
	if quantity > remaining {
		return nil, armyerr.CapacityExceeded(unitKey, quantity, remaining)
	}

	base := ComputeTotals(unit, nil, m.catalog)
	added := make([]*Slot, 0, quantity)
	for i := 0; i < quantity; i++ {
		added = append(added, &Slot{
			ID:        m.uuidGenerator.New(),
			UnitKey:   unit.Key,
			Name:      unit.Name,
			Equipment: []string{},
			Totals:    base,
		})
	}
	r.Slots = append(r.Slots, added...)

	return added, nil
}

// RemoveSlot deletes the slot at index; later slots shift down by one
func (m *Manager) RemoveSlot(r *Roster, index int) (*Slot, error) {
	if r == nil {
		return nil, armyerr.InvalidArgument("roster cannot be nil")
	}

	removed := r.Slot(index)
	if removed == nil {
		return nil, armyerr.OutOfRange(index, len(r.Slots))
	}

	slots := make([]*Slot, 0, len(r.Slots)-1)
	slots = append(slots, r.Slots[:index]...)
	slots = append(slots, r.Slots[index+1:]...)
	r.Slots = slots

	return removed, nil
}

// SetSlotEquipment replaces the slot's whole selection and recomputes its
// totals. Keys the unit may not select are left out and returned as
// dropped; duplicates collapse. Passing the same selection twice yields
// the same totals.
func (m *Manager) SetSlotEquipment(r *Roster, index int, selection []string) (Totals, []string, error) {
	if r == nil {
		return Totals{}, nil, armyerr.InvalidArgument("roster cannot be nil")
	}

	slot := r.Slot(index)
	if slot == nil {
		return Totals{}, nil, armyerr.OutOfRange(index, len(r.Slots))
	}

	unit, err := m.unit(slot.UnitKey)
	if err != nil {
		return Totals{}, nil, err
	}

	eligible := m.resolver.EligibleKeys(unit, m.catalog)
	requested := eligibility.NewSet()
	var dropped []string
	for _, key := range selection {
		if requested.Has(key) {
			continue
		}
		requested.Add(key)
		if !eligible.Has(key) {
			dropped = append(dropped, key)
		}
	}

	applied := []string{}
	for _, item := range m.catalog.AllEquipment() {
		if requested.Has(item.Key) && eligible.Has(item.Key) {
			applied = append(applied, item.Key)
		}
	}

	slot.Equipment = applied
	slot.Totals = ComputeTotals(unit, applied, m.catalog)

	return slot.Totals, dropped, nil
}

// TotalArmy sums the roster against the manager's glory limit
func (m *Manager) TotalArmy(r *Roster) ArmyTotals {
	return TotalArmy(r, m.gloryLimit)
}

func (m *Manager) unit(key string) (*catalog.Unit, error) {
	unit, ok := m.catalog.Unit(key)
	if !ok {
		return nil, armyerr.NotFoundf("unit %s not found", key).WithMeta("unit_key", key)
	}
	return unit, nil
}
