package config_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/army-builder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"CATALOG_UNITS_PATH", "CATALOG_EQUIPMENT_PATH", "ELIGIBILITY_RULES_PATH",
		"GLORY_LIMIT", "ROSTER_TTL", "REDIS_URL", "EXPORT_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "data/units.json", cfg.Catalog.UnitsPath)
	assert.Equal(t, "data/equipment.json", cfg.Catalog.EquipmentPath)
	assert.Empty(t, cfg.Catalog.RulesPath)
	assert.Equal(t, 10, cfg.Roster.GloryLimit)
	assert.Equal(t, 24*time.Hour, cfg.Roster.TTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "out", cfg.Export.Dir)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_UNITS_PATH", "/srv/units.yaml")
	t.Setenv("ELIGIBILITY_RULES_PATH", "/srv/rules.yaml")
	t.Setenv("GLORY_LIMIT", "15")
	t.Setenv("ROSTER_TTL", "90m")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/units.yaml", cfg.Catalog.UnitsPath)
	assert.Equal(t, "/srv/rules.yaml", cfg.Catalog.RulesPath)
	assert.Equal(t, 15, cfg.Roster.GloryLimit)
	assert.Equal(t, 90*time.Minute, cfg.Roster.TTL)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"GLORY_LIMIT": "ten",
		"ROSTER_TTL":  "tomorrow",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}

	t.Run("negative glory limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GLORY_LIMIT", "-1")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
