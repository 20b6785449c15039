package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/army-builder/internal/services"
	rosterService "github.com/KirkDiggler/army-builder/internal/services/roster"
	"github.com/KirkDiggler/army-builder/internal/testutils"
)

func TestNewProviderDefaultsToInMemory(t *testing.T) {
	provider := services.NewProvider(&services.ProviderConfig{
		Catalog:    testutils.CreateTestCatalog(t),
		GloryLimit: 4,
	})

	require.NotNil(t, provider.RosterService)
	require.NotNil(t, provider.Exporter)
	assert.Equal(t, 4, provider.Manager.GloryLimit())

	ctx := context.Background()
	r, err := provider.RosterService.CreateRoster(ctx, &rosterService.CreateRosterInput{OwnerID: "owner-1"})
	require.NoError(t, err)

	got, err := provider.RosterService.GetRoster(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}
