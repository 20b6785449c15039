package eligibility_test

import (
	"testing"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	"github.com/KirkDiggler/army-builder/internal/domain/eligibility"
	"github.com/KirkDiggler/army-builder/internal/testutils"
	"github.com/stretchr/testify/suite"
)

type ResolverTestSuite struct {
	suite.Suite
	cat      *catalog.Catalog
	resolver eligibility.Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	s.cat = testutils.CreateTestCatalog(s.T())
	s.resolver = eligibility.NewResolver(nil)
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) unit(key string) *catalog.Unit {
	u, ok := s.cat.Unit(key)
	s.Require().True(ok, "unit %s missing from fixture", key)
	return u
}

func (s *ResolverTestSuite) rangedOf(set eligibility.Set) []string {
	var keys []string
	for _, e := range eligibility.Filter(set, s.cat, catalog.CategoryRanged) {
		keys = append(keys, e.Key)
	}
	return keys
}

func (s *ResolverTestSuite) TestEveryUnitWithoutRuleGetsMeleeArmorMisc() {
	for _, key := range []string{"warProphet", "trenchPilgrim", "shrineAnchorite", "combatMedic"} {
		set := s.resolver.EligibleKeys(s.unit(key), s.cat)
		for _, k := range s.cat.KeysIn(catalog.CategoryMelee, catalog.CategoryArmor, catalog.CategoryMisc) {
			s.True(set.Has(k), "%s should be eligible for %s", key, k)
		}
	}
}

func (s *ResolverTestSuite) TestNoNoteMeansAllRanged() {
	set := s.resolver.EligibleKeys(s.unit("warProphet"), s.cat)

	s.Equal(s.cat.KeysIn(catalog.CategoryRanged), s.rangedOf(set))
	s.Equal(9, set.Len())
}

func (s *ResolverTestSuite) TestRangedOnlyNoteNarrowsRanged() {
	set := s.resolver.EligibleKeys(s.unit("trenchPilgrim"), s.cat)

	s.ElementsMatch([]string{"autoPistol", "pistol"}, s.rangedOf(set))
	s.False(set.Has("machineGun"))
	s.True(set.Has("sword"))
}

func (s *ResolverTestSuite) TestRangedOnlyIgnoresCatalogOrder() {
	reversed := testutils.CreateTestEquipment()
	reversed[0], reversed[1] = reversed[1], reversed[0]
	cat, err := catalog.New(testutils.CreateTestUnits(), reversed)
	s.Require().NoError(err)

	unit, _ := cat.Unit("trenchPilgrim")
	set := s.resolver.EligibleKeys(unit, cat)

	s.Equal([]string{"autoPistol", "pistol"}, s.keys(eligibility.Filter(set, cat, catalog.CategoryRanged)))
}

func (s *ResolverTestSuite) keys(items []*catalog.Equipment) []string {
	var out []string
	for _, e := range items {
		out = append(out, e.Key)
	}
	return out
}

func (s *ResolverTestSuite) TestPrisonersRestrictedToTortureDevice() {
	set := s.resolver.EligibleKeys(s.unit("ecclesiasticPrisoners"), s.cat)

	s.Equal([]string{"tortureDevice"}, set.Keys())
}

func (s *ResolverTestSuite) TestNunsIgnoreRangedCategory() {
	unit := s.unit("stigmaticNuns")
	unit.AllowedEquipment = "Ranged only: Machine Gun"

	set := s.resolver.EligibleKeys(unit, s.cat)

	s.ElementsMatch([]string{"pistol", "autoPistol", "battleCross"}, s.rangedOf(set))
	s.True(set.Has("trenchClub"))
	s.True(set.Has("standardArmour"))
	s.True(set.Has("incense"))
}

func (s *ResolverTestSuite) TestRuleKeysMissingFromCatalogAreSkipped() {
	resolver := eligibility.NewResolver(&eligibility.ResolverConfig{
		Rules: []eligibility.Rule{{UnitKey: "warProphet", Keys: []string{"holyRelic", "sword"}}},
	})

	set := resolver.EligibleKeys(s.unit("warProphet"), s.cat)

	s.Equal([]string{"sword"}, set.Keys())
}

func (s *ResolverTestSuite) TestNilInputs() {
	s.Zero(s.resolver.EligibleKeys(nil, s.cat).Len())
	s.Zero(s.resolver.EligibleKeys(s.unit("warProphet"), nil).Len())
}

type stubParser struct {
	keys    []string
	matched bool
}

func (p stubParser) RangedKeys(string) ([]string, bool) {
	return p.keys, p.matched
}

func (s *ResolverTestSuite) TestParserIsSwappable() {
	resolver := eligibility.NewResolver(&eligibility.ResolverConfig{
		Parser: stubParser{keys: []string{"machineGun"}, matched: true},
	})

	set := resolver.EligibleKeys(s.unit("warProphet"), s.cat)

	s.Equal([]string{"machineGun"}, s.rangedOf(set))
}

func (s *ResolverTestSuite) TestMatchedButEmptyListMeansNoRanged() {
	unit := s.unit("warProphet")
	unit.AllowedEquipment = "Ranged only: Blunderbuss"

	set := s.resolver.EligibleKeys(unit, s.cat)

	s.Empty(s.rangedOf(set))
	s.True(set.Has("sword"))
}
