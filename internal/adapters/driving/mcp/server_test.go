package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("requires a query service", func(t *testing.T) {
		_, err := NewServer(&Ports{})
		assert.ErrorIs(t, err, ErrMissingQueryService)
	})

	t.Run("stats service is optional", func(t *testing.T) {
		server, err := NewServer(&Ports{Query: &mockQueryService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestServer_handleCatalogResource(t *testing.T) {
	server, err := NewServer(&Ports{Query: &mockQueryService{}})
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uriScheme + "catalog"},
	}
	result, err := server.handleCatalogResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &names))
	assert.Equal(t, domain.AllObjects, names)
}

func TestServer_handleParticipantsResource(t *testing.T) {
	mockQuery := &mockQueryService{
		participants: []domain.Participant{
			{Number: 1, Scenes: make([]domain.Scene, 3)},
			{Number: 2, Scenes: make([]domain.Scene, 1)},
		},
	}
	server, err := NewServer(&Ports{Query: mockQuery})
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uriScheme + "participants"},
	}
	result, err := server.handleParticipantsResource(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"number":1,"scenes":3},{"number":2,"scenes":1}]`, result.Contents[0].Text)
}
