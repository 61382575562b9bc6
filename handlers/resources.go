// ABOUTME: MCP resource handlers exposing calendar data by URI
// ABOUTME: Read-only views of companies, methods, and the computed schedule
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sankar2i/calendar/store"
)

const resourceScheme = "calendar://"

type ResourceHandlers struct {
	store *store.Store
}

func NewResourceHandlers(s *store.Store) *ResourceHandlers {
	return &ResourceHandlers{store: s}
}

// ReadResource handles resource read requests
func (h *ResourceHandlers) ReadResource(ctx context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, resourceScheme) {
		return nil, fmt.Errorf("invalid URI scheme: expected %s", resourceScheme)
	}

	parts := strings.Split(strings.TrimPrefix(uri, resourceScheme), "/")

	switch parts[0] {
	case "companies":
		if len(parts) == 1 {
			return h.readAllCompanies(uri)
		}
		return h.readCompany(uri, parts[1])

	case "methods":
		return jsonResource(uri, h.store.Methods())

	case "schedule":
		return h.readSchedule(uri)

	default:
		return nil, mcp.ResourceNotFoundError(uri)
	}
}

func (h *ResourceHandlers) readAllCompanies(uri string) (*mcp.ReadResourceResult, error) {
	st := h.store.Snapshot()
	out := make([]CompanyOutput, len(st.Companies))
	for i := range st.Companies {
		out[i] = companyToOutput(&st.Companies[i], st.IsOverridden(st.Companies[i].ID))
	}
	return jsonResource(uri, out)
}

func (h *ResourceHandlers) readCompany(uri, idStr string) (*mcp.ReadResourceResult, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid company ID: %w", err)
	}

	st := h.store.Snapshot()
	company, ok := st.Company(id)
	if !ok {
		return nil, mcp.ResourceNotFoundError(uri)
	}
	return jsonResource(uri, companyToOutput(&company, st.IsOverridden(id)))
}

func (h *ResourceHandlers) readSchedule(uri string) (*mcp.ReadResourceResult, error) {
	sched := h.store.Schedule()

	data := struct {
		Today    string        `json:"today"`
		Overdue  int           `json:"overdue"`
		DueToday int           `json:"due_today"`
		Warning  string        `json:"warning,omitempty"`
		Events   []EventOutput `json:"events"`
	}{
		Today:    sched.Today,
		Overdue:  sched.Counts.Overdue,
		DueToday: sched.Counts.DueToday,
		Warning:  sched.Result.Warning,
		Events:   make([]EventOutput, 0, len(sched.Result.Events)),
	}
	for _, e := range sched.Result.Events {
		data.Events = append(data.Events, eventToOutput(e, sched.State.IsOverridden(e.CompanyID)))
	}

	return jsonResource(uri, data)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}}, nil
}
