// ABOUTME: Scheduling MCP tool handlers
// ABOUTME: Implements log_communication, build_events, get_notifications, and override_highlight tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

type ScheduleHandlers struct {
	store *store.Store
}

func NewScheduleHandlers(s *store.Store) *ScheduleHandlers {
	return &ScheduleHandlers{store: s}
}

type LogCommunicationInput struct {
	CompanyID string `json:"company_id" jsonschema:"UUID of the company"`
	Type      string `json:"type" jsonschema:"Communication method name, e.g. 'Email'"`
	Date      string `json:"date,omitempty" jsonschema:"Date as YYYY-MM-DD, not in the future (default today)"`
	Notes     string `json:"notes,omitempty" jsonschema:"Notes about the communication"`
}

func (h *ScheduleHandlers) LogCommunication(ctx context.Context, request *mcp.CallToolRequest, input LogCommunicationInput) (*mcp.CallToolResult, CompanyOutput, error) {
	companyID, err := parseID("company_id", input.CompanyID)
	if err != nil {
		return nil, CompanyOutput{}, err
	}

	date := input.Date
	if date == "" {
		date = h.store.Today()
	}

	updated, err := h.store.LogCommunication(ctx, companyID, models.Communication{
		Type:  input.Type,
		Date:  date,
		Notes: input.Notes,
	})
	if err != nil {
		return nil, CompanyOutput{}, fmt.Errorf("failed to log communication: %w", err)
	}

	return nil, companyToOutput(updated, h.store.Snapshot().IsOverridden(companyID)), nil
}

type BuildEventsInput struct {
	Status string `json:"status,omitempty" jsonschema:"Only return events with this status: overdue, due-today, or upcoming"`
}

type EventOutput struct {
	CompanyID  string `json:"company_id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
	Color      string `json:"color"`
	Overridden bool   `json:"overridden"`
}

func eventToOutput(e models.CalendarEvent, overridden bool) EventOutput {
	return EventOutput{
		CompanyID:  e.CompanyID.String(),
		Title:      e.Title,
		Date:       e.Date,
		Status:     string(e.Status),
		Type:       e.Type,
		Notes:      e.Notes,
		Color:      e.BackgroundColor,
		Overridden: overridden,
	}
}

type BuildEventsOutput struct {
	Today   string        `json:"today"`
	Events  []EventOutput `json:"events"`
	Warning string        `json:"warning,omitempty"`
}

func (h *ScheduleHandlers) BuildEvents(_ context.Context, request *mcp.CallToolRequest, input BuildEventsInput) (*mcp.CallToolResult, BuildEventsOutput, error) {
	sched := h.store.Schedule()

	events := []EventOutput{}
	for _, e := range sched.Result.Events {
		if input.Status != "" && string(e.Status) != input.Status {
			continue
		}
		events = append(events, eventToOutput(e, sched.State.IsOverridden(e.CompanyID)))
	}

	return nil, BuildEventsOutput{
		Today:   sched.Today,
		Events:  events,
		Warning: sched.Result.Warning,
	}, nil
}

type GetNotificationsInput struct{}

type NotificationsOutput struct {
	Overdue  int    `json:"overdue"`
	DueToday int    `json:"due_today"`
	Total    int    `json:"total"`
	Warning  string `json:"warning,omitempty"`
}

func (h *ScheduleHandlers) GetNotifications(_ context.Context, request *mcp.CallToolRequest, input GetNotificationsInput) (*mcp.CallToolResult, NotificationsOutput, error) {
	sched := h.store.Schedule()
	return nil, NotificationsOutput{
		Overdue:  sched.Counts.Overdue,
		DueToday: sched.Counts.DueToday,
		Total:    sched.Counts.Total,
		Warning:  sched.Result.Warning,
	}, nil
}

type OverrideHighlightInput struct {
	CompanyID string `json:"company_id" jsonschema:"UUID of the company"`
	Clear     bool   `json:"clear,omitempty" jsonschema:"Restore the highlight instead of overriding it"`
}

func (h *ScheduleHandlers) OverrideHighlight(ctx context.Context, request *mcp.CallToolRequest, input OverrideHighlightInput) (*mcp.CallToolResult, MessageOutput, error) {
	companyID, err := parseID("company_id", input.CompanyID)
	if err != nil {
		return nil, MessageOutput{}, err
	}

	if input.Clear {
		if err := h.store.ClearOverride(ctx, companyID); err != nil {
			return nil, MessageOutput{}, fmt.Errorf("failed to clear override: %w", err)
		}
		return nil, MessageOutput{Message: fmt.Sprintf("Highlight restored: %s", companyID)}, nil
	}

	if err := h.store.OverrideHighlight(ctx, companyID); err != nil {
		return nil, MessageOutput{}, fmt.Errorf("failed to override highlight: %w", err)
	}
	return nil, MessageOutput{Message: fmt.Sprintf("Highlight overridden: %s", companyID)}, nil
}
