package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

func TestSnapshotLoadEmpty(t *testing.T) {
	repo := NewSnapshotRepository(openMemory(t))

	st, ok, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, st.Companies)
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(openMemory(t))
	ctx := context.Background()

	created := time.Date(2024, 2, 26, 9, 30, 0, 0, time.UTC)
	link := "https://linkedin.com/company/acme"
	acme := models.Company{
		ID:          uuid.New(),
		Name:        "Acme",
		Location:    "Paris",
		LinkedIn:    &link,
		Emails:      []string{"a@acme.io", "b@acme.io"},
		Periodicity: "1 week",
		History: []models.Communication{
			{ID: ulid.Make(), Type: "Email", Date: "2024-03-01", Notes: "follow-up"},
			{ID: ulid.Make(), Type: "Phone Call", Date: "2024-02-20"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
	globex := models.Company{
		ID:          uuid.New(),
		Name:        "Globex",
		Location:    "Springfield",
		Phones:      []string{"+1 555 0100"},
		Periodicity: "2 months",
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	st := store.NewState()
	st.Companies = []models.Company{globex, acme}
	st.Overrides[acme.ID] = true

	require.NoError(t, repo.Save(ctx, st))

	got, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, got.Companies, 2)
	assert.Equal(t, "Globex", got.Companies[0].Name, "insertion order is kept")
	assert.Nil(t, got.Companies[0].LinkedIn)
	assert.Equal(t, []string{"+1 555 0100"}, got.Companies[0].Phones)
	assert.Nil(t, got.Companies[0].Emails)
	assert.Empty(t, got.Companies[0].History)

	a := got.Companies[1]
	require.NotNil(t, a.LinkedIn)
	assert.Equal(t, link, *a.LinkedIn)
	assert.Equal(t, acme.Emails, a.Emails)
	assert.Equal(t, acme.History, a.History)
	assert.True(t, a.CreatedAt.Equal(created))

	assert.Equal(t, st.Methods, got.Methods)
	assert.True(t, got.IsOverridden(acme.ID))
	assert.False(t, got.IsOverridden(globex.ID))
}

func TestSnapshotSaveReplaces(t *testing.T) {
	repo := NewSnapshotRepository(openMemory(t))
	ctx := context.Background()

	st := store.NewState()
	st.Companies = []models.Company{{ID: uuid.New(), Name: "Acme", Location: "Paris", Periodicity: "1 week"}}
	require.NoError(t, repo.Save(ctx, st))

	st.Companies = nil
	st.Methods = nil
	require.NoError(t, repo.Save(ctx, st))

	got, ok, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "an emptied state is still initialized")
	assert.Empty(t, got.Companies)
	assert.Empty(t, got.Methods)
}

func TestStoreOverSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "calendar.db")
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	database, err := OpenDatabase(path)
	require.NoError(t, err)

	s, err := store.Open(ctx, NewSnapshotRepository(database),
		store.WithClock(func() time.Time { return now }),
		store.WithLocation(time.UTC),
	)
	require.NoError(t, err)

	c, err := s.CreateCompany(ctx, models.Company{Name: "Acme", Location: "Paris", Periodicity: "1 week"})
	require.NoError(t, err)
	_, err = s.LogCommunication(ctx, c.ID, models.Communication{Type: "Email", Date: "2024-03-01"})
	require.NoError(t, err)
	require.NoError(t, database.Close())

	database, err = OpenDatabase(path)
	require.NoError(t, err)
	defer database.Close()

	reopened, err := store.Open(ctx, NewSnapshotRepository(database))
	require.NoError(t, err)

	got, ok := reopened.Company(c.ID)
	require.True(t, ok)
	require.Len(t, got.History, 1)
	assert.Equal(t, "2024-03-01", got.History[0].Date)
	assert.Len(t, reopened.Methods(), 5)
}
