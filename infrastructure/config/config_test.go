package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TABLE_NAME", "")
	t.Setenv("EVENT_BUS_NAME", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "serverless-template-table", cfg.DynamoDBTable)
	assert.Empty(t, cfg.EventBusName, "no bus by default; publication disabled")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.EnableTracing)
	assert.True(t, cfg.EnableCORS)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("TABLE_NAME", "hmaas-table")
	t.Setenv("EVENT_BUS_NAME", "hmaas-bus")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ENABLE_TRACING", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "hmaas-table", cfg.DynamoDBTable)
	assert.Equal(t, "hmaas-bus", cfg.EventBusName)
	assert.True(t, cfg.EnableTracing)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_ProductionRequiresEventBus(t *testing.T) {
	cfg := &Config{
		Environment:   "production",
		DynamoDBTable: "hmaas-table",
	}
	assert.Error(t, cfg.Validate())

	cfg.EventBusName = "hmaas-bus"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_TableRequired(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.Error(t, cfg.Validate())
}
