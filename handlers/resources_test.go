// ABOUTME: Tests for MCP resources and prompts
package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sankar2i/calendar/models"
)

func readResource(t *testing.T, h *ResourceHandlers, uri string) (*mcp.ReadResourceResult, error) {
	t.Helper()
	return h.ReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
}

func TestReadResources(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	acme, err := s.CreateCompany(ctx, models.Company{Name: "Acme", Location: "Paris", Periodicity: "1 week"})
	require.NoError(t, err)
	_, err = s.LogCommunication(ctx, acme.ID, models.Communication{Type: "Email", Date: "2024-02-26"})
	require.NoError(t, err)

	h := NewResourceHandlers(s)

	res, err := readResource(t, h, "calendar://companies")
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)
	var companies []CompanyOutput
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &companies))
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].Name)

	res, err = readResource(t, h, "calendar://companies/"+acme.ID.String())
	require.NoError(t, err)
	assert.Contains(t, res.Contents[0].Text, "2024-02-26")

	res, err = readResource(t, h, "calendar://methods")
	require.NoError(t, err)
	assert.Contains(t, res.Contents[0].Text, "LinkedIn Post")

	res, err = readResource(t, h, "calendar://schedule")
	require.NoError(t, err)
	var sched struct {
		Today    string        `json:"today"`
		DueToday int           `json:"due_today"`
		Events   []EventOutput `json:"events"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &sched))
	assert.Equal(t, "2024-03-04", sched.Today)
	assert.Equal(t, 1, sched.DueToday)
	require.Len(t, sched.Events, 1)
	assert.Equal(t, "due-today", sched.Events[0].Status)
}

func TestReadResourceErrors(t *testing.T) {
	h := NewResourceHandlers(setupTestStore(t))

	tests := []string{
		"crm://companies",
		"calendar://deals",
		"calendar://companies/not-a-uuid",
		"calendar://companies/00000000-0000-0000-0000-000000000001",
	}
	for _, uri := range tests {
		t.Run(uri, func(t *testing.T) {
			_, err := readResource(t, h, uri)
			assert.Error(t, err)
		})
	}
}

func TestGetPrompts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	acme, err := s.CreateCompany(ctx, models.Company{Name: "Acme", Location: "Paris", Periodicity: "1 day"})
	require.NoError(t, err)
	_, err = s.LogCommunication(ctx, acme.ID, models.Communication{Type: "Phone Call", Date: "2024-03-01", Notes: "asked for pricing"})
	require.NoError(t, err)

	h := NewPromptHandlers(s)
	get := func(name string, args map[string]string) (*mcp.GetPromptResult, error) {
		return h.GetPrompt(ctx, &mcp.GetPromptRequest{
			Params: &mcp.GetPromptParams{Name: name, Arguments: args},
		})
	}

	res, err := get("outreach-plan", nil)
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	text := res.Messages[0].Content.(*mcp.TextContent).Text
	assert.Contains(t, text, "Today is 2024-03-04")
	assert.Contains(t, text, "Overdue (1)")
	assert.Contains(t, text, "asked for pricing")

	res, err = get("company-summary", map[string]string{"company": "acme"})
	require.NoError(t, err)
	text = res.Messages[0].Content.(*mcp.TextContent).Text
	assert.Contains(t, text, "Cadence: every 1 day")
	assert.Contains(t, text, "2024-03-01 Phone Call: asked for pricing")

	_, err = get("company-summary", nil)
	assert.Error(t, err)

	_, err = get("company-summary", map[string]string{"company": "Globex"})
	assert.Error(t, err)

	_, err = get("deal-analysis", nil)
	assert.Error(t, err)
}
