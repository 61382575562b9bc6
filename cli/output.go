// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Output writer, repeatable flags, and company/method lookup by ID or name
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout

// listFlag collects a repeatable or comma-separated flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, models.SplitList(v)...)
	return nil
}

// resolveCompany finds a company by ID, falling back to a case-insensitive name match.
func resolveCompany(st store.State, ref string) (models.Company, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Company{}, fmt.Errorf("company ID or name is required")
	}
	if id, err := uuid.Parse(ref); err == nil {
		if c, ok := st.Company(id); ok {
			return c, nil
		}
	}
	if c, ok := st.FindCompanyByName(ref); ok {
		return c, nil
	}
	return models.Company{}, fmt.Errorf("company %q: %w", ref, store.ErrNotFound)
}

func resolveMethod(st store.State, ref string) (models.CommunicationMethod, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.CommunicationMethod{}, fmt.Errorf("method ID or name is required")
	}
	if id, err := uuid.Parse(ref); err == nil {
		if m, ok := st.Method(id); ok {
			return m, nil
		}
	}
	if m, ok := st.MethodByName(ref); ok {
		return m, nil
	}
	return models.CommunicationMethod{}, fmt.Errorf("method %q: %w", ref, store.ErrNotFound)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
