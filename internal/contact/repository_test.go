package contact

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalabs/contacts-api/internal/store"
)

// newTestRepo runs the repository against an in-memory SQLite database;
// the SQL dialect used here (`?` placeholders, plain column lists) is
// shared between MySQL and SQLite, so no external services are required.
func newTestRepo(t *testing.T) Repository {
	t.Helper()

	db, err := store.Open(context.Background(), store.Config{
		DSN:        ":memory:",
		DriverName: "sqlite3",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(context.Background(), `
		CREATE TABLE contacts (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			name     TEXT NOT NULL,
			lastname TEXT NOT NULL,
			email    TEXT NOT NULL,
			phone    TEXT NOT NULL,
			website  TEXT,
			address  TEXT,
			company  TEXT
		)`)
	require.NoError(t, err)

	return NewRepository(db)
}

func mustInsert(t *testing.T, repo Repository, payload map[string]any) int64 {
	t.Helper()
	m, err := New(payload, ModeInsert)
	require.NoError(t, err)

	id, err := repo.Insert(context.Background(), m)
	require.NoError(t, err)
	require.NotZero(t, id)
	return id
}

func TestRepository_InsertAndFetchByID(t *testing.T) {
	repo := newTestRepo(t)
	id := mustInsert(t, repo, validPayload())

	rec, err := repo.FetchByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", rec.Name)
	assert.Equal(t, "Diaz", rec.Lastname)
	assert.Equal(t, "ana@x.com", rec.Email)
	assert.Equal(t, "+14155551234", rec.Phone)
	// Optional columns that were never supplied come back as NULL.
	assert.Nil(t, rec.Website)
	assert.Nil(t, rec.Address)
	assert.Nil(t, rec.Company)
}

func TestRepository_InsertWithOptionalFields(t *testing.T) {
	repo := newTestRepo(t)
	payload := validPayload()
	payload["company"] = "Acme"
	id := mustInsert(t, repo, payload)

	rec, err := repo.FetchByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, rec.Company)
	assert.Equal(t, "Acme", *rec.Company)
	assert.Nil(t, rec.Website)
}

func TestRepository_FetchByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FetchByID(context.Background(), 404)
	assert.True(t, store.IsNotFound(err), "want ErrNotFound, got %v", err)
}

func TestRepository_FetchAll(t *testing.T) {
	repo := newTestRepo(t)
	mustInsert(t, repo, validPayload())

	second := validPayload()
	second["name"] = "Eva"
	mustInsert(t, repo, second)

	records, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRepository_Update_PartialTouchesOnlySuppliedFields(t *testing.T) {
	repo := newTestRepo(t)
	id := mustInsert(t, repo, validPayload())

	m, err := New(map[string]any{"company": "Acme"}, ModeUpdate)
	require.NoError(t, err)

	affected, err := repo.Update(context.Background(), id, m)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	rec, err := repo.FetchByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, rec.Company)
	assert.Equal(t, "Acme", *rec.Company)
	// Untouched columns keep their values.
	assert.Equal(t, "Ana", rec.Name)
	assert.Equal(t, "ana@x.com", rec.Email)
}

func TestRepository_Update_NonExistentID(t *testing.T) {
	repo := newTestRepo(t)

	m, err := New(map[string]any{"company": "Acme"}, ModeUpdate)
	require.NoError(t, err)

	affected, err := repo.Update(context.Background(), 404, m)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	id := mustInsert(t, repo, validPayload())

	affected, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
