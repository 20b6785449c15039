package eligibility_test

import (
	"testing"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	"github.com/KirkDiggler/army-builder/internal/domain/eligibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextParser_RangedKeys(t *testing.T) {
	parser := eligibility.NewTextParser(nil)

	tests := []struct {
		name        string
		text        string
		wantKeys    []string
		wantMatched bool
	}{
		{
			name:        "english list",
			text:        "Ranged only: Autogun, Pistol",
			wantKeys:    []string{"autoPistol", "pistol"},
			wantMatched: true,
		},
		{
			name:        "lower case with semicolons",
			text:        "ranged: only pistol; war cross",
			wantKeys:    []string{"pistol", "battleCross"},
			wantMatched: true,
		},
		{
			name:        "russian clause",
			text:        "Любое ближнее. Дальн. только Pistol, Autogun",
			wantKeys:    []string{"pistol", "autoPistol"},
			wantMatched: true,
		},
		{
			name:        "list stops at sentence end",
			text:        "Ranged only: pistol. Melee: war cross",
			wantKeys:    []string{"pistol"},
			wantMatched: true,
		},
		{
			name:        "unknown names dropped",
			text:        "RANGED ONLY: Blunderbuss,  WAR   CROSS , Flamer",
			wantKeys:    []string{"battleCross"},
			wantMatched: true,
		},
		{
			name:        "words inside longer words",
			text:        "Unranged onlyish stuff",
			wantMatched: false,
		},
		{
			name:        "only glued to a longer word",
			text:        "Ranged onlyish: pistol",
			wantMatched: false,
		},
		{
			name:        "russian word inside a longer word",
			text:        "Недальн. только Pistol",
			wantMatched: false,
		},
		{
			name:        "no clause",
			text:        "Any weapons and armour",
			wantMatched: false,
		},
		{
			name:        "empty",
			text:        "",
			wantMatched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, matched := parser.RangedKeys(tt.text)
			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestTextParser_CustomNames(t *testing.T) {
	parser := eligibility.NewTextParser(map[string]string{"Jezzail": "jezzail"})

	keys, matched := parser.RangedKeys("Ranged only: jezzail, pistol")

	assert.True(t, matched)
	assert.Equal(t, []string{"jezzail"}, keys)
}

func TestParseRules(t *testing.T) {
	cfg, err := eligibility.ParseRules([]byte(`
rules:
  - unit: torturer
    keys: [tortureDevice]
  - unit: sniper
    keys: [jezzail]
    categories: [melee, misc]
names:
  jezzail: jezzail
`))
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, "torturer", cfg.Rules[0].UnitKey)
	assert.Equal(t, []catalog.Category{catalog.CategoryMelee, catalog.CategoryMisc}, cfg.Rules[1].Categories)

	keys, matched := cfg.Parser.RangedKeys("ranged only: Jezzail")
	assert.True(t, matched)
	assert.Equal(t, []string{"jezzail"}, keys)
}

func TestParseRules_Invalid(t *testing.T) {
	_, err := eligibility.ParseRules([]byte("rules:\n  - keys: [pistol]\n"))
	assert.Error(t, err)

	_, err = eligibility.ParseRules([]byte("rules:\n  - unit: a\n    categories: [artillery]\n"))
	assert.Error(t, err)

	_, err = eligibility.ParseRules([]byte("rules: [unterminated"))
	assert.Error(t, err)
}

func TestParseRules_DefaultsWhenOmitted(t *testing.T) {
	cfg, err := eligibility.ParseRules([]byte("{}"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Rules)
	assert.Equal(t, eligibility.DefaultRules, cfg.RuleSet())

	keys, _ := cfg.Parser.RangedKeys("ranged only: autogun")
	assert.Equal(t, []string{"autoPistol"}, keys)
}

func TestSet(t *testing.T) {
	set := eligibility.NewSet("b", "a")
	set.Add("c", "a")

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has("c"))
	assert.False(t, set.Has("d"))
	assert.Equal(t, []string{"a", "b", "c"}, set.Keys())
}

func TestResolverConfig_RuleSet(t *testing.T) {
	var missing *eligibility.ResolverConfig
	assert.Equal(t, eligibility.DefaultRules, missing.RuleSet())

	explicit := []eligibility.Rule{{UnitKey: "torturer", Keys: []string{"tortureDevice"}}}
	assert.Equal(t, explicit, (&eligibility.ResolverConfig{Rules: explicit}).RuleSet())

	cfg, err := eligibility.ParseRules([]byte("rules: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.RuleSet())
}
