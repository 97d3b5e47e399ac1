package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAppliedWhenNoFileOrEnv(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Dashboard.MaxSnapshots)
	assert.Equal(t, 10, cfg.Recommendation.TopN)
	assert.Equal(t, "general", cfg.Context.Domain)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("QUALITYCLI_MAX_SNAPSHOTS", "25")
	t.Setenv("QUALITYCLI_TOP_N", "5")
	t.Setenv("QUALITYCLI_CONTEXT_DOMAIN", "finance")
	t.Setenv("QUALITYCLI_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Dashboard.MaxSnapshots)
	assert.Equal(t, 5, cfg.Recommendation.TopN)
	assert.Equal(t, "finance", cfg.Context.Domain)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FileValuesOverridenByEnv(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/qualitycli.toml"
	require.NoError(t, os.WriteFile(path, []byte("[dashboard]\nmax_snapshots = 50\n"), 0o644))

	t.Setenv("QUALITYCLI_MAX_SNAPSHOTS", "75")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 75, cfg.Dashboard.MaxSnapshots)
}

func TestValidate_RejectsNonPositiveMaxSnapshots(t *testing.T) {
	cfg := &Config{Dashboard: DashboardConfig{MaxSnapshots: 0}, Recommendation: RecommendationConfig{TopN: 1}}
	assert.Error(t, cfg.Validate())
}

func TestProjectContext_ConvertsConfiguredFields(t *testing.T) {
	cfg := &Config{Context: ContextConfig{Domain: "healthcare", Stage: "production", TeamSize: "large", Criticality: "mission-critical"}}
	ctx := cfg.ProjectContext()

	assert.Equal(t, "healthcare", string(ctx.Domain))
	assert.Equal(t, "production", string(ctx.Stage))
	assert.Equal(t, "large", string(ctx.TeamSize))
	assert.Equal(t, "mission-critical", string(ctx.Criticality))
}
