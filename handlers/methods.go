// ABOUTME: Communication method MCP tool handlers
// ABOUTME: Implements add_method, list_methods, move_method, and delete_method tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

type MethodHandlers struct {
	store *store.Store
}

func NewMethodHandlers(s *store.Store) *MethodHandlers {
	return &MethodHandlers{store: s}
}

type AddMethodInput struct {
	Name        string `json:"name" jsonschema:"Method name (required, unique)"`
	Description string `json:"description" jsonschema:"What the method is (required)"`
	Sequence    int    `json:"sequence,omitempty" jsonschema:"1-based position; omitted or out of range appends"`
	Mandatory   bool   `json:"mandatory,omitempty" jsonschema:"Whether the method is mandatory"`
}

type MethodOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Sequence    int    `json:"sequence"`
	Mandatory   bool   `json:"mandatory"`
}

func (h *MethodHandlers) AddMethod(ctx context.Context, request *mcp.CallToolRequest, input AddMethodInput) (*mcp.CallToolResult, MethodOutput, error) {
	created, err := h.store.CreateMethod(ctx, models.CommunicationMethod{
		Name:        input.Name,
		Description: input.Description,
		Sequence:    input.Sequence,
		Mandatory:   input.Mandatory,
	})
	if err != nil {
		return nil, MethodOutput{}, fmt.Errorf("failed to create method: %w", err)
	}
	return nil, methodToOutput(*created), nil
}

type ListMethodsInput struct{}

type ListMethodsOutput struct {
	Methods []MethodOutput `json:"methods"`
}

func (h *MethodHandlers) ListMethods(_ context.Context, request *mcp.CallToolRequest, input ListMethodsInput) (*mcp.CallToolResult, ListMethodsOutput, error) {
	methods := h.store.Methods()
	out := ListMethodsOutput{Methods: make([]MethodOutput, len(methods))}
	for i, m := range methods {
		out.Methods[i] = methodToOutput(m)
	}
	return nil, out, nil
}

type MoveMethodInput struct {
	MethodID  string `json:"method_id" jsonschema:"UUID of the method to move"`
	Direction string `json:"direction" jsonschema:"'up' or 'down'"`
}

func (h *MethodHandlers) MoveMethod(ctx context.Context, request *mcp.CallToolRequest, input MoveMethodInput) (*mcp.CallToolResult, ListMethodsOutput, error) {
	id, err := parseID("method_id", input.MethodID)
	if err != nil {
		return nil, ListMethodsOutput{}, err
	}

	if err := h.store.MoveMethod(ctx, id, store.Direction(input.Direction)); err != nil {
		return nil, ListMethodsOutput{}, fmt.Errorf("failed to move method: %w", err)
	}

	return h.ListMethods(ctx, request, ListMethodsInput{})
}

type DeleteMethodInput struct {
	MethodID string `json:"method_id" jsonschema:"UUID of the method to delete"`
}

func (h *MethodHandlers) DeleteMethod(ctx context.Context, request *mcp.CallToolRequest, input DeleteMethodInput) (*mcp.CallToolResult, MessageOutput, error) {
	id, err := parseID("method_id", input.MethodID)
	if err != nil {
		return nil, MessageOutput{}, err
	}

	if err := h.store.DeleteMethod(ctx, id); err != nil {
		return nil, MessageOutput{}, fmt.Errorf("failed to delete method: %w", err)
	}

	return nil, MessageOutput{Message: fmt.Sprintf("Deleted method: %s", id)}, nil
}

func methodToOutput(m models.CommunicationMethod) MethodOutput {
	return MethodOutput{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Sequence:    m.Sequence,
		Mandatory:   m.Mandatory,
	}
}
