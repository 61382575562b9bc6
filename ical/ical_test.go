// ABOUTME: Tests for iCalendar export
package ical

import (
	"bytes"
	"testing"
	"time"

	goical "github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sankar2i/calendar/models"
)

func TestEncode(t *testing.T) {
	id := uuid.New()
	events := []models.CalendarEvent{
		{
			CompanyID: id,
			Title:     "Acme",
			Date:      "2024-03-04",
			Status:    models.StatusDueToday,
			Type:      "Email",
			Notes:     "Ask about renewal, pricing",
		},
	}
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, events, now))

	cal, err := goical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	evs := cal.Events()
	require.Len(t, evs, 1)

	uid, err := evs[0].Props.Text(goical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, id.String()+UIDSuffix, uid)

	summary, err := evs[0].Props.Text(goical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Acme: Email", summary)

	desc, err := evs[0].Props.Text(goical.PropDescription)
	require.NoError(t, err)
	assert.Equal(t, "Ask about renewal, pricing", desc)

	start := evs[0].Props.Get(goical.PropDateTimeStart)
	require.NotNil(t, start)
	assert.Equal(t, "20240304", start.Value)
}

func TestEncodeRejectsBadDate(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []models.CalendarEvent{{CompanyID: uuid.New(), Title: "X", Date: "soon"}}, time.Now())
	assert.Error(t, err)
}
