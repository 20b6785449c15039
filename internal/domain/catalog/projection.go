package catalog

// UnitRow is a unit flattened for spreadsheet export
type UnitRow struct {
	UnitKey    string
	UnitName   string
	BaseDucats int
	BaseGlory  int
}

// EquipmentRow is an equipment item flattened for spreadsheet export
type EquipmentRow struct {
	EquipKey   string
	EquipName  string
	CostDucats int
	CostGlory  int
}

// ProjectUnits splits each unit's cost into ducat and glory columns
func ProjectUnits(c *Catalog) []UnitRow {
	rows := make([]UnitRow, 0, len(c.units))
	for _, u := range c.units {
		ducats, glory := u.Cost.Split()
		rows = append(rows, UnitRow{
			UnitKey:    u.Key,
			UnitName:   u.Name,
			BaseDucats: ducats,
			BaseGlory:  glory,
		})
	}
	return rows
}

// ProjectEquipment splits each item's cost into ducat and glory columns
func ProjectEquipment(c *Catalog) []EquipmentRow {
	rows := make([]EquipmentRow, 0, len(c.equipment))
	for _, e := range c.equipment {
		ducats, glory := e.Cost.Split()
		rows = append(rows, EquipmentRow{
			EquipKey:   e.Key,
			EquipName:  e.Name,
			CostDucats: ducats,
			CostGlory:  glory,
		})
	}
	return rows
}
