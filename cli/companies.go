// ABOUTME: Company CLI commands
// ABOUTME: Admin commands for adding, listing, editing, and deleting companies
package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

// AddCompanyCommand adds a new company
func AddCompanyCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name (required)")
	location := fs.String("location", "", "Company location (required)")
	linkedin := fs.String("linkedin", "", "LinkedIn profile URL")
	var emails, phones listFlag
	fs.Var(&emails, "email", "Email address (repeatable or comma-separated)")
	fs.Var(&phones, "phone", "Phone number (repeatable or comma-separated)")
	comments := fs.String("comments", "", "Comments about the company")
	periodicity := fs.String("periodicity", models.DefaultPeriodicity, "Communication cadence, e.g. \"2 weeks\"")
	next := fs.String("next-type", "", "Preferred type for the next communication")
	_ = fs.Parse(args)

	company := models.Company{
		Name:                  *name,
		Location:              *location,
		Emails:                emails,
		Phones:                phones,
		Comments:              *comments,
		Periodicity:           *periodicity,
		NextCommunicationType: *next,
	}
	if *linkedin != "" {
		company.LinkedIn = linkedin
	}

	created, err := s.CreateCompany(context.Background(), company)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Company created: %s (ID: %s)\n", created.Name, created.ID)
	fmt.Fprintf(stdout, "  Location: %s\n", created.Location)
	fmt.Fprintf(stdout, "  Periodicity: %s\n", created.Periodicity)
	return nil
}

// ListCompaniesCommand lists all companies
func ListCompaniesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-companies", flag.ExitOnError)
	query := fs.String("query", "", "Filter by name or location")
	_ = fs.Parse(args)

	q := strings.ToLower(strings.TrimSpace(*query))
	var companies []models.Company
	for _, c := range s.Companies() {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Location), q) {
			continue
		}
		companies = append(companies, c)
	}

	if len(companies) == 0 {
		fmt.Fprintln(stdout, "No companies found")
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tLOCATION\tPERIODICITY\tLAST CONTACT\tEMAILS\tID")
	_, _ = fmt.Fprintln(w, "----\t--------\t-----------\t------------\t------\t--")

	for _, c := range companies {
		last := "-"
		if entry, ok := c.LastCommunication(); ok {
			last = entry.Date + " " + entry.Type
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, c.Location, c.Periodicity, last, orDash(strings.Join(c.Emails, ", ")), c.ID)
	}

	_ = w.Flush()
	fmt.Fprintf(stdout, "\nTotal: %d companies\n", len(companies))
	return nil
}

// UpdateCompanyCommand edits the flags that were given and keeps the rest
func UpdateCompanyCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name")
	location := fs.String("location", "", "Company location")
	linkedin := fs.String("linkedin", "", "LinkedIn profile URL (empty clears)")
	var emails, phones listFlag
	fs.Var(&emails, "email", "Replace email addresses")
	fs.Var(&phones, "phone", "Replace phone numbers")
	comments := fs.String("comments", "", "Comments about the company")
	periodicity := fs.String("periodicity", "", "Communication cadence")
	next := fs.String("next-type", "", "Preferred type for the next communication")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: update-company [flags] <id-or-name>")
	}

	company, err := resolveCompany(s.Snapshot(), fs.Arg(0))
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			company.Name = *name
		case "location":
			company.Location = *location
		case "linkedin":
			company.LinkedIn = linkedin
		case "email":
			company.Emails = emails
		case "phone":
			company.Phones = phones
		case "comments":
			company.Comments = *comments
		case "periodicity":
			company.Periodicity = *periodicity
		case "next-type":
			company.NextCommunicationType = *next
		}
	})

	updated, err := s.UpdateCompany(context.Background(), company)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Company updated: %s (ID: %s)\n", updated.Name, updated.ID)
	return nil
}

// DeleteCompanyCommand removes a company and its history
func DeleteCompanyCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-company", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Confirm deletion")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-company --yes <id-or-name>")
	}

	company, err := resolveCompany(s.Snapshot(), fs.Arg(0))
	if err != nil {
		return err
	}

	if !*yes {
		return fmt.Errorf("refusing to delete %s without --yes", company.Name)
	}

	if err := s.DeleteCompany(context.Background(), company.ID); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Company deleted: %s\n", company.Name)
	return nil
}
