package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/army-builder/internal/domain/roster"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
	"github.com/KirkDiggler/army-builder/internal/services/export"
	"github.com/KirkDiggler/army-builder/internal/testutils"
)

// reopen round-trips the workbook through bytes so the test reads what a
// spreadsheet application would
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	out, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = out.Close() })
	return out
}

func value(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis)
	require.NoError(t, err)
	return v
}

func TestTemplate(t *testing.T) {
	exporter := export.NewExporter(&export.Config{Catalog: testutils.CreateTestCatalog(t)})

	tmpl, err := exporter.Template()
	require.NoError(t, err)
	f := reopen(t, tmpl)

	assert.Equal(t, []string{export.SheetUnits, export.SheetEquipment, export.SheetRoster}, f.GetSheetList())

	t.Run("units sheet splits currencies", func(t *testing.T) {
		assert.Equal(t, "UnitKey", value(t, f, export.SheetUnits, "A1"))
		assert.Equal(t, "warProphet", value(t, f, export.SheetUnits, "A2"))
		assert.Equal(t, "War Prophet", value(t, f, export.SheetUnits, "B2"))
		assert.Equal(t, "80", value(t, f, export.SheetUnits, "C2"))
		assert.Equal(t, "0", value(t, f, export.SheetUnits, "D2"))

		// shrineAnchorite costs glory
		assert.Equal(t, "shrineAnchorite", value(t, f, export.SheetUnits, "A6"))
		assert.Equal(t, "0", value(t, f, export.SheetUnits, "C6"))
		assert.Equal(t, "2", value(t, f, export.SheetUnits, "D6"))
	})

	t.Run("equipment sheet", func(t *testing.T) {
		assert.Equal(t, "pistol", value(t, f, export.SheetEquipment, "A2"))
		assert.Equal(t, "Machine Gun", value(t, f, export.SheetEquipment, "B5"))
		assert.Equal(t, "0", value(t, f, export.SheetEquipment, "C5"))
		assert.Equal(t, "1", value(t, f, export.SheetEquipment, "D5"))
	})

	t.Run("roster header and formulas", func(t *testing.T) {
		assert.Equal(t, "Unit", value(t, f, export.SheetRoster, "A1"))
		assert.Equal(t, "Equip1", value(t, f, export.SheetRoster, "C1"))
		assert.Equal(t, "Equip8", value(t, f, export.SheetRoster, "J1"))
		assert.Equal(t, "Selected Items", value(t, f, export.SheetRoster, "K1"))
		assert.Equal(t, "TotalDucats", value(t, f, export.SheetRoster, "L1"))
		assert.Equal(t, "TotalGlory", value(t, f, export.SheetRoster, "M1"))

		join, err := f.GetCellFormula(export.SheetRoster, "K2")
		require.NoError(t, err)
		assert.Contains(t, join, "TEXTJOIN")
		assert.Contains(t, join, "C2,D2,E2,F2,G2,H2,I2,J2")

		ducats, err := f.GetCellFormula(export.SheetRoster, "L101")
		require.NoError(t, err)
		assert.Contains(t, ducats, "B101*(IFERROR(VLOOKUP(A101,Units!$B:$D,2,FALSE),0)")
		assert.Contains(t, ducats, "VLOOKUP(J101,Equipment!$B:$D,2,FALSE)")

		glory, err := f.GetCellFormula(export.SheetRoster, "M2")
		require.NoError(t, err)
		assert.Contains(t, glory, "VLOOKUP(A2,Units!$B:$D,3,FALSE)")

		assert.Equal(t, "Grand Total:", value(t, f, export.SheetRoster, "J104"))
		total, err := f.GetCellFormula(export.SheetRoster, "L104")
		require.NoError(t, err)
		assert.Contains(t, total, "SUM(L2:L101)")
	})

	t.Run("drop-down validations", func(t *testing.T) {
		validations, err := f.GetDataValidations(export.SheetRoster)
		require.NoError(t, err)
		require.Len(t, validations, 2)
		assert.Equal(t, "A2:A101", validations[0].Sqref)
		assert.Equal(t, "C2:J101", validations[1].Sqref)
	})
}

func TestRoster(t *testing.T) {
	exporter := export.NewExporter(&export.Config{Catalog: testutils.CreateTestCatalog(t)})

	summary := &roster.Summary{
		RosterID: "roster-1",
		Slots: []roster.SlotView{
			{Index: 0, ID: "slot-1", UnitKey: "trenchPilgrim", Name: "Trench Pilgrim", Equipment: []string{"pistol", "trenchClub"}},
			{Index: 1, ID: "slot-2", UnitKey: "shrineAnchorite", Name: "Shrine Anchorite"},
		},
	}

	wb, err := exporter.Roster(summary)
	require.NoError(t, err)
	f := reopen(t, wb)

	assert.Equal(t, "Trench Pilgrim", value(t, f, export.SheetRoster, "A2"))
	assert.Equal(t, "1", value(t, f, export.SheetRoster, "B2"))
	assert.Equal(t, "Pistol", value(t, f, export.SheetRoster, "C2"))
	assert.Equal(t, "Trench Club", value(t, f, export.SheetRoster, "D2"))
	assert.Empty(t, value(t, f, export.SheetRoster, "E2"))
	assert.Equal(t, "Shrine Anchorite", value(t, f, export.SheetRoster, "A3"))
	assert.Empty(t, value(t, f, export.SheetRoster, "A4"))
}

func TestRosterRejectsInvalidInput(t *testing.T) {
	exporter := export.NewExporter(&export.Config{Catalog: testutils.CreateTestCatalog(t)})

	_, err := exporter.Roster(nil)
	assert.True(t, armyerr.IsInvalidArgument(err))

	_, err = exporter.Roster(&roster.Summary{Slots: make([]roster.SlotView, export.RosterRows+1)})
	assert.True(t, armyerr.IsInvalidArgument(err))
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	exporter := export.NewExporter(&export.Config{Catalog: testutils.CreateTestCatalog(t), Dir: dir})

	tmpl, err := exporter.Template()
	require.NoError(t, err)

	path, err := exporter.Save(tmpl, "army_full_roster_template.xlsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "army_full_roster_template.xlsx"), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	_, err = exporter.Save(nil, "x.xlsx")
	assert.True(t, armyerr.IsInvalidArgument(err))
}

func TestNewExporterRequiresCatalog(t *testing.T) {
	assert.Panics(t, func() { export.NewExporter(&export.Config{}) })
}
