package runtimeinfo_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwestly/restval/runtimeinfo"
)

func TestLoad(t *testing.T) {
	t.Setenv("RESTVAL_ENVIRONMENT", "production")
	t.Setenv("RESTVAL_SCRIPT_ID", "customscript_orders")
	t.Setenv("RESTVAL_DEPLOYMENT_ID", "customdeploy_1")
	t.Setenv("RESTVAL_LOG_LEVEL", "debug")

	info, err := runtimeinfo.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", info.Environment)
	assert.Equal(t, "customscript_orders", info.ScriptID)
	assert.Equal(t, "customdeploy_1", info.DeploymentID)
	assert.True(t, info.IsProduction())
	assert.Equal(t, slog.LevelDebug, info.SlogLevel())
}

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers the restore; unsetting afterwards makes the
	// variables genuinely absent so envDefault applies.
	t.Setenv("RESTVAL_ENVIRONMENT", "")
	t.Setenv("RESTVAL_LOG_LEVEL", "")
	os.Unsetenv("RESTVAL_ENVIRONMENT")
	os.Unsetenv("RESTVAL_LOG_LEVEL")

	info, err := runtimeinfo.Load()
	require.NoError(t, err)
	assert.Equal(t, "sandbox", info.Environment)
	assert.False(t, info.IsProduction())
	assert.Equal(t, slog.LevelInfo, info.SlogLevel())
}

func TestSlogLevel_UnknownFallsBackToInfo(t *testing.T) {
	info := runtimeinfo.Info{LogLevel: "verbose"}
	assert.Equal(t, slog.LevelInfo, info.SlogLevel())
}
