package rosters

import (
	"time"

	"github.com/KirkDiggler/army-builder/internal/domain/roster"
)

// SlotData is the stored form of a roster slot
type SlotData struct {
	ID        string   `json:"id"`
	UnitKey   string   `json:"unit_key"`
	Name      string   `json:"name"`
	Equipment []string `json:"equipment"`
	Ducats    int      `json:"ducats"`
	Glory     int      `json:"glory"`
}

// Data is the stored form of a roster
type Data struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	Slots     []SlotData `json:"slots"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toData(r *roster.Roster) *Data {
	if r == nil {
		return nil
	}

	slots := make([]SlotData, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, SlotData{
			ID:        s.ID,
			UnitKey:   s.UnitKey,
			Name:      s.Name,
			Equipment: append([]string{}, s.Equipment...),
			Ducats:    s.Totals.Ducats,
			Glory:     s.Totals.Glory,
		})
	}

	return &Data{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Slots:     slots,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromData(data *Data) *roster.Roster {
	if data == nil {
		return nil
	}

	slots := make([]*roster.Slot, 0, len(data.Slots))
	for _, s := range data.Slots {
		slots = append(slots, &roster.Slot{
			ID:        s.ID,
			UnitKey:   s.UnitKey,
			Name:      s.Name,
			Equipment: append([]string{}, s.Equipment...),
			Totals:    roster.Totals{Ducats: s.Ducats, Glory: s.Glory},
		})
	}

	return &roster.Roster{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Slots:     slots,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// clone deep-copies a roster through its stored form
func clone(r *roster.Roster) *roster.Roster {
	return fromData(toData(r))
}
