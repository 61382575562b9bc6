// ABOUTME: Company MCP tool handlers
// ABOUTME: Implements add_company, list_companies, update_company, and delete_company tools
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

type CompanyHandlers struct {
	store *store.Store
}

func NewCompanyHandlers(s *store.Store) *CompanyHandlers {
	return &CompanyHandlers{store: s}
}

type AddCompanyInput struct {
	Name                  string   `json:"name" jsonschema:"Company name (required)"`
	Location              string   `json:"location" jsonschema:"Company location (required)"`
	LinkedIn              string   `json:"linkedin,omitempty" jsonschema:"LinkedIn profile URL"`
	Emails                []string `json:"emails,omitempty" jsonschema:"Email addresses"`
	Phones                []string `json:"phones,omitempty" jsonschema:"Phone numbers"`
	Comments              string   `json:"comments,omitempty" jsonschema:"Comments about the company"`
	Periodicity           string   `json:"periodicity,omitempty" jsonschema:"Communication cadence such as '2 weeks' (default '2 weeks')"`
	NextCommunicationType string   `json:"next_communication_type,omitempty" jsonschema:"Preferred method for the next communication"`
}

type CommunicationOutput struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Date  string `json:"date"`
	Notes string `json:"notes,omitempty"`
}

type CompanyOutput struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	Location              string                `json:"location"`
	LinkedIn              string                `json:"linkedin,omitempty"`
	Emails                []string              `json:"emails,omitempty"`
	Phones                []string              `json:"phones,omitempty"`
	Comments              string                `json:"comments,omitempty"`
	Periodicity           string                `json:"periodicity"`
	NextCommunicationType string                `json:"next_communication_type,omitempty"`
	History               []CommunicationOutput `json:"history,omitempty"`
	HighlightOverridden   bool                  `json:"highlight_overridden,omitempty"`
	CreatedAt             string                `json:"created_at"`
	UpdatedAt             string                `json:"updated_at"`
}

func (h *CompanyHandlers) AddCompany(ctx context.Context, request *mcp.CallToolRequest, input AddCompanyInput) (*mcp.CallToolResult, CompanyOutput, error) {
	company := models.Company{
		Name:                  input.Name,
		Location:              input.Location,
		Emails:                input.Emails,
		Phones:                input.Phones,
		Comments:              input.Comments,
		Periodicity:           input.Periodicity,
		NextCommunicationType: input.NextCommunicationType,
	}
	if input.LinkedIn != "" {
		company.LinkedIn = &input.LinkedIn
	}

	created, err := h.store.CreateCompany(ctx, company)
	if err != nil {
		return nil, CompanyOutput{}, fmt.Errorf("failed to create company: %w", err)
	}

	return nil, companyToOutput(created, false), nil
}

type ListCompaniesInput struct {
	Query string `json:"query,omitempty" jsonschema:"Case-insensitive filter on name or location"`
}

type ListCompaniesOutput struct {
	Companies []CompanyOutput `json:"companies"`
}

func (h *CompanyHandlers) ListCompanies(_ context.Context, request *mcp.CallToolRequest, input ListCompaniesInput) (*mcp.CallToolResult, ListCompaniesOutput, error) {
	st := h.store.Snapshot()
	q := strings.ToLower(strings.TrimSpace(input.Query))

	result := []CompanyOutput{}
	for i := range st.Companies {
		c := &st.Companies[i]
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Location), q) {
			continue
		}
		result = append(result, companyToOutput(c, st.IsOverridden(c.ID)))
	}

	return nil, ListCompaniesOutput{Companies: result}, nil
}

type UpdateCompanyInput struct {
	CompanyID             string    `json:"company_id" jsonschema:"UUID of the company to update"`
	Name                  *string   `json:"name,omitempty" jsonschema:"Updated company name"`
	Location              *string   `json:"location,omitempty" jsonschema:"Updated location"`
	LinkedIn              *string   `json:"linkedin,omitempty" jsonschema:"Updated LinkedIn URL (empty clears)"`
	Emails                *[]string `json:"emails,omitempty" jsonschema:"Replacement email addresses"`
	Phones                *[]string `json:"phones,omitempty" jsonschema:"Replacement phone numbers"`
	Comments              *string   `json:"comments,omitempty" jsonschema:"Updated comments"`
	Periodicity           *string   `json:"periodicity,omitempty" jsonschema:"Updated cadence such as '1 month'"`
	NextCommunicationType *string   `json:"next_communication_type,omitempty" jsonschema:"Updated preferred method"`
}

func (h *CompanyHandlers) UpdateCompany(ctx context.Context, request *mcp.CallToolRequest, input UpdateCompanyInput) (*mcp.CallToolResult, CompanyOutput, error) {
	companyID, err := parseID("company_id", input.CompanyID)
	if err != nil {
		return nil, CompanyOutput{}, err
	}

	company, ok := h.store.Company(companyID)
	if !ok {
		return nil, CompanyOutput{}, fmt.Errorf("company %s: %w", companyID, store.ErrNotFound)
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Location != nil {
		company.Location = *input.Location
	}
	if input.LinkedIn != nil {
		company.LinkedIn = input.LinkedIn
	}
	if input.Emails != nil {
		company.Emails = *input.Emails
	}
	if input.Phones != nil {
		company.Phones = *input.Phones
	}
	if input.Comments != nil {
		company.Comments = *input.Comments
	}
	if input.Periodicity != nil {
		company.Periodicity = *input.Periodicity
	}
	if input.NextCommunicationType != nil {
		company.NextCommunicationType = *input.NextCommunicationType
	}

	updated, err := h.store.UpdateCompany(ctx, company)
	if err != nil {
		return nil, CompanyOutput{}, fmt.Errorf("failed to update company: %w", err)
	}

	return nil, companyToOutput(updated, h.store.Snapshot().IsOverridden(companyID)), nil
}

type DeleteCompanyInput struct {
	CompanyID string `json:"company_id" jsonschema:"UUID of the company to delete"`
}

type MessageOutput struct {
	Message string `json:"message"`
}

func (h *CompanyHandlers) DeleteCompany(ctx context.Context, request *mcp.CallToolRequest, input DeleteCompanyInput) (*mcp.CallToolResult, MessageOutput, error) {
	companyID, err := parseID("company_id", input.CompanyID)
	if err != nil {
		return nil, MessageOutput{}, err
	}

	if err := h.store.DeleteCompany(ctx, companyID); err != nil {
		return nil, MessageOutput{}, fmt.Errorf("failed to delete company: %w", err)
	}

	return nil, MessageOutput{Message: fmt.Sprintf("Deleted company: %s", companyID)}, nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return id, nil
}

func companyToOutput(c *models.Company, overridden bool) CompanyOutput {
	out := CompanyOutput{
		ID:                    c.ID.String(),
		Name:                  c.Name,
		Location:              c.Location,
		Emails:                c.Emails,
		Phones:                c.Phones,
		Comments:              c.Comments,
		Periodicity:           c.Periodicity,
		NextCommunicationType: c.NextCommunicationType,
		HighlightOverridden:   overridden,
		CreatedAt:             c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             c.UpdatedAt.Format(time.RFC3339),
	}
	if c.LinkedIn != nil {
		out.LinkedIn = *c.LinkedIn
	}
	for _, e := range c.History {
		out.History = append(out.History, CommunicationOutput{
			ID:    e.ID.String(),
			Type:  e.Type,
			Date:  e.Date,
			Notes: e.Notes,
		})
	}
	return out
}
