package gemini_test

import (
	"context"
	"testing"

	"github.com/pulseai/modex"
	"github.com/pulseai/modex/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewClient(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, modex.ECONFIG, modex.ErrorCode(err))
	assert.Contains(t, modex.ErrorMessage(err), "API key required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("You extract modules.")

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "You extract modules.", config.SystemInstruction.Parts[0].Text)
}

func TestBuildConfig_SetsZeroTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("prompt")

	require.NotNil(t, config.Temperature)
	assert.Zero(t, *config.Temperature)
}

func TestBuildConfig_ConstrainsResponseToJSON(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("prompt")

	assert.Equal(t, "application/json", config.ResponseMIMEType)
}
