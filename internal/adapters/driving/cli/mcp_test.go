package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seva-cli/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_DescribesTools(t *testing.T) {
	assert.Contains(t, mcpServeCmd.Long, "list_services")
	assert.Contains(t, mcpServeCmd.Long, "seva://services/{id}")
}

func TestMCPServeCmd_RequiresCatalog(t *testing.T) {
	resetState()
	defer resetState()

	_, err := execute(t, "mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingCatalogService)
}
