package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/army-builder/internal/handlers/cli"
	"github.com/KirkDiggler/army-builder/internal/services"
	rosterService "github.com/KirkDiggler/army-builder/internal/services/roster"
	mockroster "github.com/KirkDiggler/army-builder/internal/services/roster/mock"
	"github.com/KirkDiggler/army-builder/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx      context.Context
	dir      string
	provider *services.Provider
	handler  *cli.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()

	cat := testutils.CreateTestCatalog(s.T())
	s.provider = services.NewProvider(&services.ProviderConfig{
		Catalog:   cat,
		ExportDir: s.dir,
	})

	r, err := s.provider.RosterService.CreateRoster(s.ctx, &rosterService.CreateRosterInput{
		OwnerID: "owner-1",
		Name:    "Pilgrims",
	})
	s.Require().NoError(err)

	s.handler = cli.NewHandler(&cli.HandlerConfig{
		Service:  s.provider.RosterService,
		Catalog:  cat,
		Exporter: s.provider.Exporter,
		OwnerID:  "owner-1",
		RosterID: r.ID,
	})
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) exec(line string) string {
	var out bytes.Buffer
	quit := s.handler.Execute(s.ctx, line, &out)
	s.False(quit)
	return out.String()
}

func (s *HandlerTestSuite) TestAddAndCapacity() {
	s.Contains(s.exec("add trenchPilgrim 2"), "Added 2 x Trench Pilgrim")
	s.Contains(s.exec("add warProphet"), "Added 1 x War Prophet")
	s.Contains(s.exec("add warProphet"), "error: only 0 more warProphet allowed")
	s.Contains(s.exec("add trenchPilgrim lots"), "error: quantity must be a number")
	s.Contains(s.exec("add dragon"), "error:")
}

func (s *HandlerTestSuite) TestUnitsHidesFullUnits() {
	s.exec("add warProphet")

	out := s.exec("units")
	s.NotContains(out, "warProphet")
	s.Contains(out, "trenchPilgrim")
	s.Contains(out, "Mercenaries")
	s.Less(strings.Index(out, "Core"), strings.Index(out, "Mercenaries"))
	s.Less(strings.Index(out, "Mercenaries"), strings.Index(out, "combatMedic"))
}

func (s *HandlerTestSuite) TestOptions() {
	out := s.exec("options stigmaticNuns")
	s.Contains(out, "Ranged")
	s.Contains(out, "battleCross")
	s.NotContains(out, "machineGun")

	s.Contains(s.exec("options dragon"), "error:")
	s.Contains(s.exec("options"), "usage: options")
}

func (s *HandlerTestSuite) TestEquipAndShow() {
	s.exec("add trenchPilgrim")
	s.exec("add warProphet")

	out := s.exec("equip 1 pistol sword machineGun")
	s.Contains(out, "#1 Trench Pilgrim: Pistol, Sword (41 ducats, 0 glory)")
	s.Contains(out, "Not allowed for Trench Pilgrim: machineGun")

	out = s.exec("show")
	s.Contains(out, "Pilgrims")
	s.Contains(out, "Pistol, Sword")
	s.Contains(out, "Total: 121 ducats, 0/10 glory")
	s.NotContains(out, "Glory limit exceeded")

	s.Contains(s.exec("equip 7 pistol"), "error: no slot 7, roster has 2")
}

func (s *HandlerTestSuite) TestRemove() {
	s.exec("add trenchPilgrim")
	s.exec("add warProphet")

	s.Contains(s.exec("rm 1"), "Removed #1 Trench Pilgrim")
	s.Contains(s.exec("rm 5"), "error: no slot 5, roster has 1")
	s.Contains(s.exec("rm x"), "error: slot must be a number")

	out := s.exec("show")
	s.Contains(out, "#1")
	s.Contains(out, "War Prophet")
}

func (s *HandlerTestSuite) TestExportAndTemplate() {
	s.exec("add trenchPilgrim")

	s.Contains(s.exec("export army.xlsx"), "Wrote")
	_, err := os.Stat(filepath.Join(s.dir, "army.xlsx"))
	s.NoError(err)

	s.Contains(s.exec("template"), "Wrote")
	_, err = os.Stat(filepath.Join(s.dir, "army_full_roster_template.xlsx"))
	s.NoError(err)
}

func (s *HandlerTestSuite) TestRosterSwitching() {
	first := s.handler.RosterID()

	s.Contains(s.exec("new Second Band"), "Started Second Band")
	second := s.handler.RosterID()
	s.NotEqual(first, second)

	out := s.exec("rosters")
	s.Contains(out, first)
	s.Contains(out, "* "+second)

	s.Contains(s.exec("drop "+second), "error: cannot drop the roster in use")
	s.Contains(s.exec("use "+first), "Using Pilgrims")
	s.Contains(s.exec("drop "+second), "Dropped "+second)
	s.Contains(s.exec("use "+second), "error:")
}

func (s *HandlerTestSuite) TestUnknownCommandAndHelp() {
	s.Contains(s.exec("dance"), `unknown command "dance"`)
	s.Contains(s.exec("help"), "Commands:")
	s.Empty(s.exec("   "))
}

func (s *HandlerTestSuite) TestRun() {
	var out bytes.Buffer
	err := s.handler.Run(s.ctx, strings.NewReader("add warProphet\nshow\nquit\nadd warProphet\n"), &out)
	s.Require().NoError(err)

	s.Contains(out.String(), "Added 1 x War Prophet")
	s.Contains(out.String(), "Total: 80 ducats")
	s.Equal(1, strings.Count(out.String(), "Added"))
}

func TestHandlerReportsServiceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockroster.NewMockService(ctrl)

	handler := cli.NewHandler(&cli.HandlerConfig{
		Service:  svc,
		Catalog:  testutils.CreateTestCatalog(t),
		OwnerID:  "owner-1",
		RosterID: "roster-1",
	})

	svc.EXPECT().UnitOptions(gomock.Any(), "roster-1").Return(nil, errors.New("redis down"))

	var out bytes.Buffer
	handler.Execute(context.Background(), "units", &out)
	assert.Contains(t, out.String(), "error: redis down")

	out.Reset()
	handler.Execute(context.Background(), "export", &out)
	assert.Contains(t, out.String(), "export is not configured")
}

func TestShowFlagsGloryOverLimit(t *testing.T) {
	ctx := context.Background()
	cat := testutils.CreateTestCatalog(t)
	provider := services.NewProvider(&services.ProviderConfig{
		Catalog:    cat,
		GloryLimit: 1,
	})

	r, err := provider.RosterService.CreateRoster(ctx, &rosterService.CreateRosterInput{OwnerID: "owner-1"})
	require.NoError(t, err)

	handler := cli.NewHandler(&cli.HandlerConfig{
		Service:  provider.RosterService,
		Catalog:  cat,
		OwnerID:  "owner-1",
		RosterID: r.ID,
	})

	var out bytes.Buffer
	handler.Execute(ctx, "add shrineAnchorite", &out)
	handler.Execute(ctx, "show", &out)

	assert.Contains(t, out.String(), "Total: 0 ducats, 2/1 glory")
	assert.Contains(t, out.String(), "Glory limit exceeded by 1")
}

func TestNewHandlerRequiresDependencies(t *testing.T) {
	require.Panics(t, func() { cli.NewHandler(&cli.HandlerConfig{}) })
}
