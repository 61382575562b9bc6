// ABOUTME: Communication method CLI commands
// ABOUTME: Admin commands for the ordered list of communication methods
package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

// AddMethodCommand adds a communication method
func AddMethodCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-method", flag.ExitOnError)
	name := fs.String("name", "", "Method name (required)")
	description := fs.String("description", "", "Method description (required)")
	sequence := fs.Int("sequence", 0, "Position in the sequence (default: last)")
	mandatory := fs.Bool("mandatory", false, "Whether the method is mandatory")
	_ = fs.Parse(args)

	created, err := s.CreateMethod(context.Background(), models.CommunicationMethod{
		Name:        *name,
		Description: *description,
		Sequence:    *sequence,
		Mandatory:   *mandatory,
	})
	if err != nil {
		return fmt.Errorf("failed to create method: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Method created: %s (#%d, ID: %s)\n", created.Name, created.Sequence, created.ID)
	return nil
}

// ListMethodsCommand lists methods in sequence order
func ListMethodsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-methods", flag.ExitOnError)
	_ = fs.Parse(args)

	methods := s.Methods()
	if len(methods) == 0 {
		fmt.Fprintln(stdout, "No communication methods found")
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tNAME\tMANDATORY\tDESCRIPTION\tID")
	_, _ = fmt.Fprintln(w, "-\t----\t---------\t-----------\t--")
	for _, m := range methods {
		mandatory := "no"
		if m.Mandatory {
			mandatory = "yes"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.Sequence, m.Name, mandatory, m.Description, m.ID)
	}
	_ = w.Flush()
	return nil
}

// UpdateMethodCommand edits a method; --sequence moves it
func UpdateMethodCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-method", flag.ExitOnError)
	name := fs.String("name", "", "Method name")
	description := fs.String("description", "", "Method description")
	sequence := fs.Int("sequence", 0, "New position in the sequence")
	mandatory := fs.Bool("mandatory", false, "Whether the method is mandatory")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: update-method [flags] <id-or-name>")
	}

	method, err := resolveMethod(s.Snapshot(), fs.Arg(0))
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			method.Name = *name
		case "description":
			method.Description = *description
		case "sequence":
			method.Sequence = *sequence
		case "mandatory":
			method.Mandatory = *mandatory
		}
	})

	updated, err := s.UpdateMethod(context.Background(), method)
	if err != nil {
		return fmt.Errorf("failed to update method: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Method updated: %s (#%d)\n", updated.Name, updated.Sequence)
	return nil
}

// MoveMethodCommand swaps a method with its neighbour
func MoveMethodCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("move-method", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		return fmt.Errorf("usage: move-method <id-or-name> <up|down>")
	}

	method, err := resolveMethod(s.Snapshot(), fs.Arg(0))
	if err != nil {
		return err
	}

	if err := s.MoveMethod(context.Background(), method.ID, store.Direction(fs.Arg(1))); err != nil {
		return fmt.Errorf("failed to move method: %w", err)
	}

	moved, _ := s.Snapshot().Method(method.ID)
	fmt.Fprintf(stdout, "✓ %s is now #%d\n", moved.Name, moved.Sequence)
	return nil
}

// DeleteMethodCommand removes a method and renumbers the rest
func DeleteMethodCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-method", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Confirm deletion")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-method --yes <id-or-name>")
	}

	method, err := resolveMethod(s.Snapshot(), fs.Arg(0))
	if err != nil {
		return err
	}

	if !*yes {
		return fmt.Errorf("refusing to delete %s without --yes", method.Name)
	}

	if err := s.DeleteMethod(context.Background(), method.ID); err != nil {
		return fmt.Errorf("failed to delete method: %w", err)
	}

	fmt.Fprintf(stdout, "✓ Method deleted: %s\n", method.Name)
	return nil
}
