package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
)

func TestSettingsShow_Defaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Default state:    Maharashtra")
	assert.Contains(t, out, "Skip onboarding:  false")
}

func TestSettingsState(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "state", "Tamil Nadu")
	require.NoError(t, err)
	assert.Contains(t, out, "Default state updated.")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StateTamilNadu, settings.DefaultState)
}

func TestSettingsState_AllStates(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "state", "")
	require.NoError(t, err)

	out, err := execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "(all states)")
}

func TestSettingsState_Unknown(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "state", "Atlantis")

	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestSettingsOnboarding(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "onboarding", "skip")
	require.NoError(t, err)

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.True(t, settings.SkipOnboarding)

	_, err = execute(t, "settings", "onboarding", "show")
	require.NoError(t, err)
	settings, err = env.settings.Get()
	require.NoError(t, err)
	assert.False(t, settings.SkipOnboarding)
}

func TestSettingsOnboarding_InvalidArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "onboarding", "maybe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}
