package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmill.dev/cli/internal/core/rng"
	"taskmill.dev/cli/internal/plugins/random"
)

// TestCatalog_Plugin_BuildsBuiltins tests catalog lookup
func TestCatalog_Plugin_BuildsBuiltins(t *testing.T) {
	catalog := NewCatalog(rng.NewDefaultRegistry(), rng.DefaultAlgorithm, 0)

	pl, err := catalog.Plugin(random.PluginName)
	require.NoError(t, err)
	assert.Equal(t, random.PluginName, pl.Name())
}

// TestCatalog_Plugin_UnknownName_Fails tests the unknown-plugin path
func TestCatalog_Plugin_UnknownName_Fails(t *testing.T) {
	catalog := NewCatalog(rng.NewDefaultRegistry(), rng.DefaultAlgorithm, 0)

	pl, err := catalog.Plugin("does-not-exist")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPlugin)
	assert.Nil(t, pl)
}

// TestCatalog_Names_ListsBuiltins tests the catalog listing
func TestCatalog_Names_ListsBuiltins(t *testing.T) {
	catalog := NewCatalog(rng.NewDefaultRegistry(), rng.DefaultAlgorithm, 0)
	assert.Equal(t, []string{random.PluginName}, catalog.Names())
}

// TestCatalog_Plugin_BuildsFreshInstances verifies lookups do not share
// plugin instances
func TestCatalog_Plugin_BuildsFreshInstances(t *testing.T) {
	catalog := NewCatalog(rng.NewDefaultRegistry(), rng.DefaultAlgorithm, 0)

	first, err := catalog.Plugin(random.PluginName)
	require.NoError(t, err)
	second, err := catalog.Plugin(random.PluginName)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}
