// ABOUTME: Schedule CLI commands built on the aggregate scheduler
// ABOUTME: Dashboard, calendar, notifications, highlight overrides, and iCalendar export
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/ical"
	"github.com/Sankar2i/calendar/store"
	"github.com/Sankar2i/calendar/viz"
)

func printWarning(res cadence.Result) {
	if res.Warning != "" {
		fmt.Fprintf(stdout, "⚠️  %s\n\n", res.Warning)
	}
}

// DashboardCommand prints the overdue and due-today grids with recent history
func DashboardCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	stats := viz.GenerateDashboardStats(s.Schedule())
	fmt.Fprint(stdout, viz.RenderDashboard(stats))
	return nil
}

// CalendarCommand prints a month view of upcoming communications
func CalendarCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("calendar", flag.ExitOnError)
	month := fs.String("month", "", "Month to show, YYYY-MM (default: current month)")
	_ = fs.Parse(args)

	sched := s.Schedule()

	start, err := time.Parse("2006-01", sched.Today[:7])
	if err != nil {
		return err
	}
	if *month != "" {
		if start, err = time.Parse("2006-01", *month); err != nil {
			return fmt.Errorf("invalid --month %q: want YYYY-MM", *month)
		}
	}

	printWarning(sched.Result)
	fmt.Fprint(stdout, viz.RenderMonth(start, sched.Result.Events, sched.Today))
	return nil
}

// NotificationsCommand prints the notification badge counts
func NotificationsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	_ = fs.Parse(args)

	sched := s.Schedule()
	printWarning(sched.Result)
	fmt.Fprintf(stdout, "🔔 %d notifications\n", sched.Counts.Total)
	fmt.Fprintf(stdout, "  🔴 %d overdue\n", sched.Counts.Overdue)
	fmt.Fprintf(stdout, "  🟡 %d due today\n", sched.Counts.DueToday)
	return nil
}

// OverrideCommand hides a company from the overdue and due-today grids
func OverrideCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("override", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: override <id-or-name>")
	}

	c, err := resolveCompany(s.Snapshot(), fs.Arg(0))
	if err != nil {
		return err
	}

	if err := s.OverrideHighlight(context.Background(), c.ID); err != nil {
		return fmt.Errorf("failed to override highlight: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Highlight overridden for %s\n", c.Name)
	return nil
}

// ClearOverrideCommand restores a company's highlight
func ClearOverrideCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("clear-override", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: clear-override <id-or-name>")
	}

	c, err := resolveCompany(s.Snapshot(), fs.Arg(0))
	if err != nil {
		return err
	}

	if err := s.ClearOverride(context.Background(), c.ID); err != nil {
		return fmt.Errorf("failed to clear override: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Highlight restored for %s\n", c.Name)
	return nil
}

// ExportICSCommand writes the schedule as an iCalendar file
func ExportICSCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("export-ics", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	sched := s.Schedule()

	var w io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := ical.Encode(w, sched.Result.Events, time.Now()); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}

	if *output != "" {
		fmt.Fprintf(stdout, "✓ Exported %d events to %s\n", len(sched.Result.Events), *output)
	}
	return nil
}
