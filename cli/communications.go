// ABOUTME: Communication logging CLI commands
// ABOUTME: Commands for logging a communication and viewing recent history
package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

// LogCommand records a communication with a company
func LogCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	company := fs.String("company", "", "Company ID or name (required)")
	kind := fs.String("type", "", "Communication method name (required)")
	date := fs.String("date", "", "Date of the communication, YYYY-MM-DD (default: today)")
	notes := fs.String("notes", "", "Notes about the communication")
	_ = fs.Parse(args)

	c, err := resolveCompany(s.Snapshot(), *company)
	if err != nil {
		return err
	}

	when := *date
	if when == "" {
		when = s.Today()
	}

	updated, err := s.LogCommunication(context.Background(), c.ID, models.Communication{
		Type:  *kind,
		Date:  when,
		Notes: *notes,
	})
	if err != nil {
		return fmt.Errorf("failed to log communication: %w", err)
	}

	entry, _ := updated.LastCommunication()
	fmt.Fprintf(stdout, "✓ Logged %s with %s on %s\n", entry.Type, updated.Name, entry.Date)
	return nil
}

// HistoryCommand shows the most recent communications for a company
func HistoryCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: history <id-or-name>")
	}

	c, err := resolveCompany(s.Snapshot(), fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s (%s), every %s\n\n", c.Name, c.Location, c.Periodicity)
	if len(c.History) == 0 {
		fmt.Fprintln(stdout, "No communications logged")
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tTYPE\tNOTES")
	_, _ = fmt.Fprintln(w, "----\t----\t-----")
	for _, entry := range c.History {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Date, entry.Type, orDash(entry.Notes))
	}
	_ = w.Flush()
	return nil
}
