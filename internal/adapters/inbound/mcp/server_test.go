package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/orderdesk/orderdesk/internal/adapters/inbound/mcp"
)

func TestNewOrderDeskMCPServer(t *testing.T) {
	s := mcpadapter.NewOrderDeskMCPServer("orders.json")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewOrderDeskMCPServer("orders.json")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"orderdesk_list_products",
		"orderdesk_list_customers",
		"orderdesk_place_order",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools))
}
