package contact

import (
	"context"
	"fmt"

	"github.com/agendalabs/contacts-api/internal/store"
)

// Record represents a row in the contacts table. Optional columns are
// pointers so NULL survives the round trip.
type Record struct {
	ID       int64
	Name     string
	Lastname string
	Email    string
	Phone    string
	Website  *string
	Address  *string
	Company  *string
}

// Repository defines the contract for contact persistence operations.
// Store-connectivity failures propagate upward unchanged; absence is
// reported as store.ErrNotFound (fetch) or zero affected rows (write).
type Repository interface {
	FetchAll(ctx context.Context) ([]Record, error)
	FetchByID(ctx context.Context, id int64) (Record, error)
	Insert(ctx context.Context, m *Contact) (int64, error)
	Update(ctx context.Context, id int64, m *Contact) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// repository is the production implementation backed by a store.Querier.
type repository struct {
	q store.Querier
}

// NewRepository returns a Repository backed by q.
func NewRepository(q store.Querier) Repository {
	return &repository{q: q}
}

const (
	sqlFetchAll = `SELECT id, name, lastname, email, phone, website, address, company FROM contacts`

	sqlFetchByID = sqlFetchAll + ` WHERE id = ?`

	sqlDelete = `DELETE FROM contacts WHERE id = ?`
)

// FetchAll returns every contact row.
func (r *repository) FetchAll(ctx context.Context) ([]Record, error) {
	rows, err := r.q.Query(ctx, sqlFetchAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Lastname, &rec.Email, &rec.Phone,
			&rec.Website, &rec.Address, &rec.Company); err != nil {
			return nil, fmt.Errorf("contact: scan: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// FetchByID returns a single contact by primary key.
// Returns store.ErrNotFound when no record matches.
func (r *repository) FetchByID(ctx context.Context, id int64) (Record, error) {
	var rec Record
	err := r.q.QueryRow(ctx, sqlFetchByID, id).Scan(
		&rec.ID, &rec.Name, &rec.Lastname, &rec.Email, &rec.Phone,
		&rec.Website, &rec.Address, &rec.Company)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Insert persists a validated insert-mode contact and returns the
// generated identifier. The statement is assembled entirely from the
// model's projections; column order and bind order both follow the schema.
func (r *repository) Insert(ctx context.Context, m *Contact) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO contacts (%s) VALUES (%s)`,
		m.FieldsForInsert(), m.Placeholders())

	res, err := r.q.Exec(ctx, query, m.BindValues()...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update applies a partial update touching only the model's populated
// fields and returns the number of affected rows.
func (r *repository) Update(ctx context.Context, id int64, m *Contact) (int64, error) {
	query := fmt.Sprintf(`UPDATE contacts SET %s WHERE id = ?`, m.FieldsForUpdate())

	res, err := r.q.Exec(ctx, query, append(m.BindValues(), id)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a contact by id and returns the number of affected rows.
func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.Exec(ctx, sqlDelete, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ Repository = (*repository)(nil)
