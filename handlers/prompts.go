// ABOUTME: MCP prompt handlers for reusable outreach workflows
// ABOUTME: Builds prompts from the current schedule and a company's recent history
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

type PromptHandlers struct {
	store *store.Store
}

func NewPromptHandlers(s *store.Store) *PromptHandlers {
	return &PromptHandlers{store: s}
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	switch request.Params.Name {
	case "outreach-plan":
		return h.getOutreachPlanPrompt()
	case "company-summary":
		return h.getCompanySummaryPrompt(request.Params.Arguments)
	default:
		return nil, fmt.Errorf("unknown prompt: %s", request.Params.Name)
	}
}

func (h *PromptHandlers) getOutreachPlanPrompt() (*mcp.GetPromptResult, error) {
	sched := h.store.Schedule()

	var promptText strings.Builder
	promptText.WriteString(fmt.Sprintf("Today is %s. Plan today's outreach.\n", sched.Today))

	writeGroup := func(heading string, events []models.CalendarEvent) {
		promptText.WriteString(fmt.Sprintf("\n%s (%d):\n", heading, len(events)))
		for _, e := range events {
			promptText.WriteString(fmt.Sprintf("- %s: %s due %s\n", e.Title, e.Type, e.Date))
			if c, ok := sched.State.Company(e.CompanyID); ok {
				if last, ok := c.LastCommunication(); ok {
					promptText.WriteString(fmt.Sprintf("  last: %s on %s", last.Type, last.Date))
					if last.Notes != "" {
						promptText.WriteString(fmt.Sprintf(" (%s)", last.Notes))
					}
					promptText.WriteString("\n")
				}
			}
		}
	}
	writeGroup("Overdue", sched.Grids.Overdue)
	writeGroup("Due today", sched.Grids.DueToday)

	if sched.Result.Warning != "" {
		promptText.WriteString(fmt.Sprintf("\nWarning: %s\n", sched.Result.Warning))
	}

	promptText.WriteString("\nFor each company, suggest a short message that fits the method")
	promptText.WriteString(" and builds on the last communication. Handle overdue companies first.")

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Outreach plan for %s", sched.Today),
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: promptText.String()},
			},
		},
	}, nil
}

func (h *PromptHandlers) getCompanySummaryPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	ref, ok := args["company"]
	if !ok || strings.TrimSpace(ref) == "" {
		return nil, fmt.Errorf("company is required")
	}

	st := h.store.Snapshot()
	company, ok := st.FindCompanyByName(ref)
	if id, err := uuid.Parse(ref); err == nil {
		company, ok = st.Company(id)
	}
	if !ok {
		return nil, fmt.Errorf("company %q: %w", ref, store.ErrNotFound)
	}

	var promptText strings.Builder
	promptText.WriteString(fmt.Sprintf("Company: %s\n", company.Name))
	promptText.WriteString(fmt.Sprintf("Location: %s\n", company.Location))
	promptText.WriteString(fmt.Sprintf("Cadence: every %s\n", company.Periodicity))
	if company.LinkedIn != nil {
		promptText.WriteString(fmt.Sprintf("LinkedIn: %s\n", *company.LinkedIn))
	}
	if company.Comments != "" {
		promptText.WriteString(fmt.Sprintf("Comments: %s\n", company.Comments))
	}

	if len(company.History) == 0 {
		promptText.WriteString("\nNo communications logged yet.\n")
	} else {
		promptText.WriteString("\nRecent communications (newest first):\n")
		for _, entry := range company.History {
			promptText.WriteString(fmt.Sprintf("- %s %s", entry.Date, entry.Type))
			if entry.Notes != "" {
				promptText.WriteString(": " + entry.Notes)
			}
			promptText.WriteString("\n")
		}
	}

	promptText.WriteString("\nSummarise the relationship and recommend the next communication.")

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Summary for company: %s", company.Name),
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: promptText.String()},
			},
		},
	}, nil
}
