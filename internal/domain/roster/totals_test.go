package roster_test

import (
	"testing"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	"github.com/KirkDiggler/army-builder/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	unit := &catalog.Unit{Key: "u", Name: "U", Cost: catalog.Ducats(20), MaxCount: 1}
	cat, err := catalog.New(
		[]*catalog.Unit{unit},
		[]*catalog.Equipment{
			{Key: "a", Name: "A", Cost: catalog.Ducats(10), Category: catalog.CategoryMelee},
			{Key: "b", Name: "B", Cost: catalog.Glory(5), Category: catalog.CategoryArmor},
		},
	)
	require.NoError(t, err)

	t.Run("currencies stay separate", func(t *testing.T) {
		assert.Equal(t, roster.Totals{Ducats: 30, Glory: 5}, roster.ComputeTotals(unit, []string{"a", "b"}, cat))
	})

	t.Run("base cost only", func(t *testing.T) {
		assert.Equal(t, roster.Totals{Ducats: 20}, roster.ComputeTotals(unit, nil, cat))
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		assert.Equal(t, roster.Totals{Ducats: 30}, roster.ComputeTotals(unit, []string{"a", "zzz"}, cat))
	})

	t.Run("glory unit", func(t *testing.T) {
		hero := &catalog.Unit{Key: "h", Cost: catalog.Glory(3)}
		assert.Equal(t, roster.Totals{Ducats: 10, Glory: 3}, roster.ComputeTotals(hero, []string{"a"}, cat))
	})

	t.Run("nil unit", func(t *testing.T) {
		assert.Equal(t, roster.Totals{}, roster.ComputeTotals(nil, []string{"a"}, cat))
	})
}

func TestTotalArmy(t *testing.T) {
	r := &roster.Roster{
		Slots: []*roster.Slot{
			{Totals: roster.Totals{Ducats: 15}},
			{Totals: roster.Totals{Ducats: 40, Glory: 6}},
			{Totals: roster.Totals{Glory: 5}},
		},
	}

	army := roster.TotalArmy(r, roster.DefaultGloryLimit)

	assert.Equal(t, roster.ArmyTotals{Ducats: 55, Glory: 11, GloryLimit: 10, OverCap: true}, army)
	assert.Equal(t, roster.ArmyTotals{GloryLimit: 10}, roster.TotalArmy(nil, 10))
}

func TestRosterCount(t *testing.T) {
	r := &roster.Roster{
		Slots: []*roster.Slot{{UnitKey: "a"}, {UnitKey: "b"}, {UnitKey: "a"}},
	}

	assert.Equal(t, 2, r.Count("a"))
	assert.Equal(t, 0, r.Count("c"))
	assert.Nil(t, r.Slot(3))
	assert.Equal(t, "b", r.Slot(1).UnitKey)
}
