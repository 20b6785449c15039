package roster

import "time"

// Slot is one unit placed in the roster
type Slot struct {
	ID      string `json:"id"`
	UnitKey string `json:"unit_key"`
	Name    string `json:"name"`

	// Equipment holds the selected keys in catalog order
	Equipment []string `json:"equipment"`
	Totals    Totals   `json:"totals"`
}

// Roster is a player's army for one session. Slot order is insertion
// order and only matters for display.
type Roster struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Slots     []*Slot   `json:"slots"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Count returns how many slots reference unitKey
func (r *Roster) Count(unitKey string) int {
	n := 0
	for _, s := range r.Slots {
		if s.UnitKey == unitKey {
			n++
		}
	}
	return n
}

// Slot returns the slot at index, or nil when out of range
func (r *Roster) Slot(index int) *Slot {
	if index < 0 || index >= len(r.Slots) {
		return nil
	}
	return r.Slots[index]
}
