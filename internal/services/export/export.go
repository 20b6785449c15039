// Package export writes the catalog and rosters to xlsx workbooks. The
// workbook has Units and Equipment lookup sheets and a Roster sheet whose
// drop-downs and formulas let the army be edited offline.
package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	"github.com/KirkDiggler/army-builder/internal/domain/roster"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
)

const (
	SheetUnits     = "Units"
	SheetEquipment = "Equipment"
	SheetRoster    = "Roster"

	// EquipColumns is how many equipment drop-downs a roster row has
	EquipColumns = 8

	// RosterRows is how many editable rows the Roster sheet has
	RosterRows = 100

	firstRow = 2
	lastRow  = firstRow + RosterRows - 1
	totalRow = lastRow + 3
)

// Roster sheet column layout (1-indexed)
const (
	colUnit     = 1
	colQuantity = 2
	colEquip    = 3 // first of EquipColumns
	colSelected = colEquip + EquipColumns
	colDucats   = colSelected + 1
	colGlory    = colDucats + 1
)

// Config holds the exporter dependencies
type Config struct {
	Catalog *catalog.Catalog // Required
	Dir     string           // Optional, defaults to the working directory
}

// Exporter builds workbooks for one catalog
type Exporter struct {
	catalog *catalog.Catalog
	dir     string
}

// NewExporter creates an Exporter
func NewExporter(cfg *Config) *Exporter {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	return &Exporter{
		catalog: cfg.Catalog,
		dir:     dir,
	}
}

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}

// Template returns the empty roster workbook
func (e *Exporter) Template() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetUnits); err != nil {
		return nil, armyerr.Wrap(err, "failed to name units sheet")
	}
	if _, err := f.NewSheet(SheetEquipment); err != nil {
		return nil, armyerr.Wrap(err, "failed to add equipment sheet")
	}
	rosterIdx, err := f.NewSheet(SheetRoster)
	if err != nil {
		return nil, armyerr.Wrap(err, "failed to add roster sheet")
	}
	f.SetActiveSheet(rosterIdx)

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, armyerr.Wrap(err, "failed to create header style")
	}

	units := catalog.ProjectUnits(e.catalog)
	f.SetSheetRow(SheetUnits, "A1", &[]any{"UnitKey", "UnitName", "BaseDucats", "BaseGlory"})
	for i, u := range units {
		f.SetSheetRow(SheetUnits, cell(1, i+2), &[]any{u.UnitKey, u.UnitName, u.BaseDucats, u.BaseGlory})
	}

	equipment := catalog.ProjectEquipment(e.catalog)
	f.SetSheetRow(SheetEquipment, "A1", &[]any{"EquipKey", "EquipName", "CostDucats", "CostGlory"})
	for i, it := range equipment {
		f.SetSheetRow(SheetEquipment, cell(1, i+2), &[]any{it.EquipKey, it.EquipName, it.CostDucats, it.CostGlory})
	}

	header := []any{"Unit", "Quantity"}
	for i := 1; i <= EquipColumns; i++ {
		header = append(header, fmt.Sprintf("Equip%d", i))
	}
	header = append(header, "Selected Items", "TotalDucats", "TotalGlory")
	f.SetSheetRow(SheetRoster, "A1", &header)

	for _, sheet := range []string{SheetUnits, SheetEquipment} {
		if err := f.SetCellStyle(sheet, "A1", "D1", headerStyleID); err != nil {
			return nil, armyerr.Wrap(err, "failed to style header")
		}
	}
	if err := f.SetCellStyle(SheetRoster, "A1", cell(colGlory, 1), headerStyleID); err != nil {
		return nil, armyerr.Wrap(err, "failed to style header")
	}

	if err := e.addValidations(f, len(units), len(equipment)); err != nil {
		return nil, err
	}

	if err := addFormulas(f); err != nil {
		return nil, err
	}

	return f, nil
}

// addValidations limits the unit and equipment columns to catalog names
func (e *Exporter) addValidations(f *excelize.File, units, equipment int) error {
	if units > 0 {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s:%s", cell(colUnit, firstRow), cell(colUnit, lastRow))
		dv.SetSqrefDropList(fmt.Sprintf("%s!$B$2:$B$%d", SheetUnits, units+1))
		if err := f.AddDataValidation(SheetRoster, dv); err != nil {
			return armyerr.Wrap(err, "failed to add unit validation")
		}
	}

	if equipment > 0 {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s:%s", cell(colEquip, firstRow), cell(colSelected-1, lastRow))
		dv.SetSqrefDropList(fmt.Sprintf("%s!$B$2:$B$%d", SheetEquipment, equipment+1))
		if err := f.AddDataValidation(SheetRoster, dv); err != nil {
			return armyerr.Wrap(err, "failed to add equipment validation")
		}
	}

	return nil
}

// addFormulas writes the per-row joins and totals plus the grand total.
// Ducat and glory totals read columns 2 and 3 of the lookup sheets.
func addFormulas(f *excelize.File) error {
	for row := firstRow; row <= lastRow; row++ {
		equipCells := ""
		for c := colEquip; c < colSelected; c++ {
			if equipCells != "" {
				equipCells += ","
			}
			equipCells += cell(c, row)
		}

		join := fmt.Sprintf(`TEXTJOIN(", ",TRUE,%s)`, equipCells)
		if err := f.SetCellFormula(SheetRoster, cell(colSelected, row), join); err != nil {
			return armyerr.Wrap(err, "failed to set selected items formula")
		}

		if err := f.SetCellFormula(SheetRoster, cell(colDucats, row), totalFormula(row, 2)); err != nil {
			return armyerr.Wrap(err, "failed to set ducat formula")
		}
		if err := f.SetCellFormula(SheetRoster, cell(colGlory, row), totalFormula(row, 3)); err != nil {
			return armyerr.Wrap(err, "failed to set glory formula")
		}
	}

	f.SetCellValue(SheetRoster, cell(colSelected-1, totalRow), "Grand Total:")
	for _, col := range []int{colDucats, colGlory} {
		sum := fmt.Sprintf("SUM(%s:%s)", cell(col, firstRow), cell(col, lastRow))
		if err := f.SetCellFormula(SheetRoster, cell(col, totalRow), sum); err != nil {
			return armyerr.Wrap(err, "failed to set grand total formula")
		}
	}

	return nil
}

// totalFormula is Quantity * (unit cost + sum of equipment costs), with
// lookupCol selecting the ducat (2) or glory (3) column after the name
func totalFormula(row, lookupCol int) string {
	unit := cell(colUnit, row)
	sum := ""
	for c := colEquip; c < colSelected; c++ {
		if sum != "" {
			sum += "+"
		}
		sum += fmt.Sprintf("IFERROR(VLOOKUP(%s,%s!$B:$D,%d,FALSE),0)", cell(c, row), SheetEquipment, lookupCol)
	}

	return fmt.Sprintf("%s*(IFERROR(VLOOKUP(%s,%s!$B:$D,%d,FALSE),0)+(%s))",
		cell(colQuantity, row), unit, SheetUnits, lookupCol, sum)
}

// Roster returns the template with one row per slot of the summary
func (e *Exporter) Roster(summary *roster.Summary) (*excelize.File, error) {
	if summary == nil {
		return nil, armyerr.InvalidArgument("summary cannot be nil")
	}
	if len(summary.Slots) > RosterRows {
		return nil, armyerr.InvalidArgumentf("roster has %d slots, the sheet holds %d", len(summary.Slots), RosterRows)
	}

	f, err := e.Template()
	if err != nil {
		return nil, err
	}

	for i, slot := range summary.Slots {
		row := firstRow + i

		unitName := slot.Name
		if unit, ok := e.catalog.Unit(slot.UnitKey); ok {
			unitName = unit.Name
		}
		f.SetCellValue(SheetRoster, cell(colUnit, row), unitName)
		f.SetCellValue(SheetRoster, cell(colQuantity, row), 1)

		if len(slot.Equipment) > EquipColumns {
			log.Printf("Slot %s has %d items, only the first %d fit the sheet",
				slot.ID, len(slot.Equipment), EquipColumns)
		}
		for j, key := range slot.Equipment {
			if j >= EquipColumns {
				break
			}
			name := key
			if item, ok := e.catalog.Equipment(key); ok {
				name = item.Name
			}
			f.SetCellValue(SheetRoster, cell(colEquip+j, row), name)
		}
	}

	return f, nil
}

// Save writes f to name inside the export directory and returns the path
func (e *Exporter) Save(f *excelize.File, name string) (string, error) {
	if f == nil {
		return "", armyerr.InvalidArgument("workbook cannot be nil")
	}
	if name == "" {
		return "", armyerr.InvalidArgument("file name is required")
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", armyerr.Wrapf(err, "failed to create export directory %s", e.dir)
	}

	path := filepath.Join(e.dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", armyerr.Wrapf(err, "failed to save workbook %s", path)
	}

	return path, nil
}
