package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for boxed resources.
const uriScheme = "boxed://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the object catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "Clean names of every object in the box-packing dataset",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// Static resource for the imported participants and their scenes.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "participants",
		Name:        "participants",
		Description: "Imported participants with their scene counts",
		MIMEType:    "application/json",
	}, s.handleParticipantsResource)
}

// handleCatalogResource returns the object catalog.
func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(domain.AllObjects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleParticipantsResource returns the imported participants.
func (s *Server) handleParticipantsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	participants, err := s.ports.Query.Participants(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}

	type participantInfo struct {
		Number int `json:"number"`
		Scenes int `json:"scenes"`
	}

	infos := make([]participantInfo, len(participants))
	for i := range participants {
		infos[i] = participantInfo{
			Number: participants[i].Number,
			Scenes: len(participants[i].Scenes),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling participants: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
