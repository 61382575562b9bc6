// ABOUTME: MCP server construction
// ABOUTME: Registers every calendar tool, resource, and prompt against a store
package handlers

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sankar2i/calendar/store"
)

// NewServer builds an MCP server exposing the calendar tools.
func NewServer(s *store.Store, version string) *mcp.Server {
	companyHandlers := NewCompanyHandlers(s)
	methodHandlers := NewMethodHandlers(s)
	scheduleHandlers := NewScheduleHandlers(s)
	resourceHandlers := NewResourceHandlers(s)
	promptHandlers := NewPromptHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "calendar",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_company",
		Description: "Add a company with its location, contacts, and communication cadence",
	}, companyHandlers.AddCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_companies",
		Description: "List companies with their recent communication history",
	}, companyHandlers.ListCompanies)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_company",
		Description: "Update fields of an existing company; omitted fields are kept",
	}, companyHandlers.UpdateCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_company",
		Description: "Delete a company and its communication history",
	}, companyHandlers.DeleteCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_method",
		Description: "Add a communication method at a position in the sequence",
	}, methodHandlers.AddMethod)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_methods",
		Description: "List communication methods in sequence order",
	}, methodHandlers.ListMethods)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_method",
		Description: "Move a communication method one position up or down",
	}, methodHandlers.MoveMethod)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_method",
		Description: "Delete a communication method and renumber the rest",
	}, methodHandlers.DeleteMethod)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_communication",
		Description: "Log a communication with a company; only the five most recent are kept",
	}, scheduleHandlers.LogCommunication)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_events",
		Description: "Compute the next scheduled communication for every company",
	}, scheduleHandlers.BuildEvents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_notifications",
		Description: "Count overdue and due-today communications",
	}, scheduleHandlers.GetNotifications)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "override_highlight",
		Description: "Hide a company from the overdue and due-today lists, or restore it with clear",
	}, scheduleHandlers.OverrideHighlight)

	for _, r := range []*mcp.Resource{
		{URI: "calendar://companies", Name: "companies", Description: "All companies with recent history", MIMEType: "application/json"},
		{URI: "calendar://methods", Name: "methods", Description: "Communication methods in sequence order", MIMEType: "application/json"},
		{URI: "calendar://schedule", Name: "schedule", Description: "Next communication per company with notification counts", MIMEType: "application/json"},
	} {
		server.AddResource(r, resourceHandlers.ReadResource)
	}
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "calendar://companies/{id}",
		Name:        "company",
		Description: "One company by UUID",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	server.AddPrompt(&mcp.Prompt{
		Name:        "outreach-plan",
		Description: "Draft today's outreach for overdue and due-today companies",
	}, promptHandlers.GetPrompt)
	server.AddPrompt(&mcp.Prompt{
		Name:        "company-summary",
		Description: "Summarise a company's recent communications",
		Arguments: []*mcp.PromptArgument{
			{Name: "company", Description: "Company UUID or name", Required: true},
		},
	}, promptHandlers.GetPrompt)

	return server
}
