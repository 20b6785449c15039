package testutils

import (
	"testing"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	"github.com/KirkDiggler/army-builder/internal/domain/roster"
	"github.com/stretchr/testify/require"
)

// CreateTestUnits returns a small warband covering every eligibility path
func CreateTestUnits() []*catalog.Unit {
	return []*catalog.Unit{
		{
			Key:      "warProphet",
			Name:     "War Prophet",
			Cost:     catalog.Ducats(80),
			MaxCount: 1,
		},
		{
			Key:              "trenchPilgrim",
			Name:             "Trench Pilgrim",
			Cost:             catalog.Ducats(30),
			MaxCount:         5,
			AllowedEquipment: "Ranged only: Autogun, Pistol",
			Keywords:         []string{"PILGRIM"},
		},
		{
			Key:      "stigmaticNuns",
			Name:     "Stigmatic Nuns",
			Cost:     catalog.Ducats(15),
			MaxCount: 3,
		},
		{
			Key:      "ecclesiasticPrisoners",
			Name:     "Ecclesiastic Prisoners",
			Cost:     catalog.Ducats(0),
			MaxCount: 6,
		},
		{
			Key:      "shrineAnchorite",
			Name:     "Shrine Anchorite",
			Cost:     catalog.Glory(2),
			MaxCount: 1,
		},
		{
			Key:       "combatMedic",
			Name:      "Combat Medic",
			Cost:      catalog.Ducats(55),
			MaxCount:  1,
			Mercenary: true,
		},
	}
}

// CreateTestEquipment returns equipment in every category, one glory item
// among them
func CreateTestEquipment() []*catalog.Equipment {
	return []*catalog.Equipment{
		{Key: "pistol", Name: "Pistol", Cost: catalog.Ducats(6), Category: catalog.CategoryRanged},
		{Key: "autoPistol", Name: "Autogun", Cost: catalog.Ducats(10), Category: catalog.CategoryRanged},
		{Key: "battleCross", Name: "War Cross", Cost: catalog.Ducats(8), Category: catalog.CategoryRanged},
		{Key: "machineGun", Name: "Machine Gun", Cost: catalog.Glory(1), Category: catalog.CategoryRanged},
		{Key: "trenchClub", Name: "Trench Club", Cost: catalog.Ducats(3), Category: catalog.CategoryMelee},
		{Key: "sword", Name: "Sword", Cost: catalog.Ducats(5), Category: catalog.CategoryMelee},
		{Key: "standardArmour", Name: "Standard Armour", Cost: catalog.Ducats(15), Category: catalog.CategoryArmor},
		{Key: "tortureDevice", Name: "Torture Device", Cost: catalog.Ducats(15), Category: catalog.CategoryMisc, Rules: "Prisoners may be goaded forward."},
		{Key: "incense", Name: "Incense", Cost: catalog.Ducats(10), Category: catalog.CategoryMisc},
	}
}

// CreateTestCatalog builds the fixture catalog and fails the test on error
func CreateTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(CreateTestUnits(), CreateTestEquipment())
	require.NoError(t, err)
	return cat
}

// CreateTestRoster returns an empty roster with fixed identifiers
func CreateTestRoster(id, ownerID string) *roster.Roster {
	return &roster.Roster{
		ID:      id,
		OwnerID: ownerID,
		Name:    "Test Warband",
	}
}
