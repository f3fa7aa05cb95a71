package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liferpg/internal/engine"
)

func TestParseEnv_Defaults(t *testing.T) {
	for _, k := range []string{"LRPG_STATE_BACKEND", "LRPG_AUTH_POLICY", "LRPG_OPENAI_MODEL", "LRPG_SEED", "LRPG_DEBUG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.StateBackend)
	assert.Equal(t, "bcrypt", cfg.AuthPolicy)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.False(t, cfg.Debug)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("LRPG_STATE_BACKEND", "redis")
	t.Setenv("LRPG_REDIS_ADDR", "cache:6379")
	t.Setenv("LRPG_SEED", "42")
	t.Setenv("LRPG_DEBUG", "true")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.StateBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
}

func TestParseEnv_UnknownBackend(t *testing.T) {
	t.Setenv("LRPG_STATE_BACKEND", "mongo")
	_, err := ParseEnv()
	assert.Error(t, err)
}

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadRules_MergesOverCatalog(t *testing.T) {
	path := writeRules(t, `
daily_quests:
  - id: q-walk
    label: Walk 8k steps
    xp: 60
    coins: 6
  - id: q-stretch
    xp: 20
random_quests:
  - Paint something
bosses:
  - id: b-one
    name: Lazy Ogre
    min_streak: 2
    xp: 100
    coins: 10
tiers:
  emom: [1, 2, 3, 4, 5, 6]
`)
	r, err := LoadRules(path)
	require.NoError(t, err)

	base := engine.DefaultCatalog()
	cat := r.Catalog(base)

	require.Len(t, cat.DailyQuests, 2)
	assert.Equal(t, "q-stretch", cat.DailyQuests[1].Label, "label defaults to id")
	assert.Equal(t, engine.QuestDaily, cat.DailyQuests[0].Kind)
	assert.Equal(t, base.HardcoreQuests, cat.HardcoreQuests, "missing sections keep defaults")
	assert.Equal(t, []string{"Paint something"}, cat.RandomQuests)

	require.Len(t, cat.Bosses, 1)
	assert.Equal(t, engine.BossMini, cat.Bosses[0].Tier)
	assert.Equal(t, 1.0, cat.Bosses[0].Scaling)

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, cat.Tiers[engine.StatStamina])
	assert.Equal(t, base.Tiers[engine.StatPullups], cat.Tiers[engine.StatPullups])
	assert.Equal(t, []float64{5, 10, 15, 20, 30, 45}, base.Tiers[engine.StatStamina], "base is not mutated")
}

func TestLoadRules_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "daily_quests: [",
		"missing id":     "daily_quests:\n  - label: x\n",
		"duplicate id":   "daily_quests:\n  - id: a\nhardcore_quests:\n  - id: a\n",
		"reserved id":    "daily_quests:\n  - id: q-sleep\n",
		"bad boss tier":  "bosses:\n  - id: b\n    tier: GIANT\n",
		"bad stat":       "tiers:\n  charisma: [1, 2, 3, 4, 5, 6]\n",
		"short tier row": "tiers:\n  pullups: [1, 2]\n",
	}
	for name, body := range cases {
		_, err := LoadRules(writeRules(t, body))
		assert.Error(t, err, name)
	}

	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNilRulesKeepCatalog(t *testing.T) {
	var r *Rules
	base := engine.DefaultCatalog()
	assert.Equal(t, base, r.Catalog(base))
}
