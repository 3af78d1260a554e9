package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// SequencesInput is the input schema for the packing_sequences tool.
type SequencesInput struct {
	UniqueOnly bool `json:"unique_only,omitempty" jsonschema:"restrict to scenes guaranteed to contain each object at most once"`
	StartToken bool `json:"start_token,omitempty" jsonschema:"prepend the <start> token to every sequence"`
}

// SequencesOutput is the output schema for the packing_sequences tool.
type SequencesOutput struct {
	Sequences [][]string `json:"sequences"`
	Count     int        `json:"count"`
}

// GraspPosesInput is the input schema for the grasp_poses tool.
type GraspPosesInput struct {
	Kind    string   `json:"kind" jsonschema:"grasp kind: pick or place"`
	Objects []string `json:"objects,omitempty" jsonschema:"clean object names to filter by; empty means all objects"`
}

// PoseOutput is one grasp pose: a 3x3 rotation matrix and a translation
// vector in metres.
type PoseOutput struct {
	Rotation    [3][3]float64 `json:"rotation"`
	Translation [3]float64    `json:"translation"`
}

// GraspPosesOutput is the output schema for the grasp_poses tool.
type GraspPosesOutput struct {
	Poses map[string][]PoseOutput `json:"poses"`
	Count int                     `json:"count"`
}

// DurationsOutput is the output schema for the scene_durations tool.
// All values are in milliseconds.
type DurationsOutput struct {
	DurationsMS []int64 `json:"durations_ms"`
	Count       int     `json:"count"`
	Mean        float64 `json:"mean,omitempty"`
	StdDev      float64 `json:"std_dev,omitempty"`
	Median      float64 `json:"median,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "packing_sequences",
		Description: "List the object packing order of every recorded box-packing scene",
	}, s.handleSequences)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "grasp_poses",
		Description: "List recorded pick or place poses, grouped by object name",
	}, s.handleGraspPoses)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scene_durations",
		Description: "List scene durations in milliseconds with summary statistics",
	}, s.handleDurations)
}

// handleSequences handles the packing_sequences tool invocation.
func (s *Server) handleSequences(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SequencesInput,
) (*mcp.CallToolResult, SequencesOutput, error) {
	opts := domain.SequenceOptions{
		UniqueOnly: input.UniqueOnly,
		StartToken: input.StartToken,
	}
	sequences, err := s.ports.Query.Sequences(ctx, opts)
	if err != nil {
		return nil, SequencesOutput{}, err
	}

	return nil, SequencesOutput{Sequences: sequences, Count: len(sequences)}, nil
}

// handleGraspPoses handles the grasp_poses tool invocation.
func (s *Server) handleGraspPoses(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GraspPosesInput,
) (*mcp.CallToolResult, GraspPosesOutput, error) {
	poses, err := s.ports.Query.GraspPoses(ctx, domain.GraspKind(input.Kind), input.Objects)
	if err != nil {
		return nil, GraspPosesOutput{}, err
	}

	output := GraspPosesOutput{Poses: make(map[string][]PoseOutput, len(poses))}
	for name, list := range poses {
		converted := make([]PoseOutput, len(list))
		for i := range list {
			converted[i] = PoseOutput{
				Rotation:    list[i].Rotation,
				Translation: list[i].Translation,
			}
		}
		output.Poses[name] = converted
		output.Count += len(converted)
	}
	return nil, output, nil
}

// handleDurations handles the scene_durations tool invocation.
func (s *Server) handleDurations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, DurationsOutput, error) {
	durations, err := s.ports.Query.SceneDurations(ctx)
	if err != nil {
		return nil, DurationsOutput{}, err
	}

	output := DurationsOutput{DurationsMS: durations, Count: len(durations)}
	if s.ports.Stats != nil {
		stats, err := s.ports.Stats.Durations(ctx)
		switch {
		case errors.Is(err, domain.ErrEmptyDataset):
			// No trajectories imported; the raw list is still useful.
		case err != nil:
			return nil, DurationsOutput{}, err
		default:
			output.Mean = stats.Mean
			output.StdDev = stats.StdDev
			output.Median = stats.Median
		}
	}
	return nil, output, nil
}
