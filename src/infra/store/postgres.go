package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"contactbook/src/core/domain"
	"contactbook/src/infra/db"
)

// PostgresStore persists the address book snapshot in a single table.
// Save replaces the table contents in one transaction; Load reads the rows
// back in their saved order. The whole-snapshot contract is identical to the
// file store's.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresStore constructs a store backed by Postgres and ensures the
// snapshot table exists.
func NewPostgresStore(ctx context.Context, pg *db.Postgres, log *slog.Logger) (*PostgresStore, error) {
	s := &PostgresStore{pool: pg.Pool, log: log}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure contacts schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS contacts (
			position INT NOT NULL,
			id       UUID NOT NULL,
			name     TEXT PRIMARY KEY,
			phones   TEXT[] NOT NULL DEFAULT '{}',
			birthday DATE
		)
	`
	_, err := s.pool.Exec(ctx, ddl)
	return err
}

// Load reads the persisted snapshot. An empty table yields an empty book.
func (s *PostgresStore) Load(ctx context.Context) (*domain.AddressBook, error) {
	const q = `
		SELECT id, name, phones, birthday
		FROM contacts
		ORDER BY position
	`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var snap snapshot
	snap.Version = snapshotVersion
	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			phones   []string
			birthday *time.Time
		)
		if err := rows.Scan(&id, &name, &phones, &birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		rs := recordSnapshot{ID: id, Name: name, Phones: phones}
		if birthday != nil {
			rs.Birthday = birthday.Format(domain.BirthdayLayout)
		}
		snap.Records = append(snap.Records, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact rows: %w", err)
	}

	book, err := restoreBook(snap)
	if err != nil {
		return nil, fmt.Errorf("contacts table is corrupted: %w", err)
	}
	s.log.Debug("snapshot loaded from postgres", "records", book.Len())
	return book, nil
}

// Save replaces the table contents with the book's full state in one
// transaction, preserving record order via the position column.
func (s *PostgresStore) Save(ctx context.Context, book *domain.AddressBook) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	const ins = `
		INSERT INTO contacts (position, id, name, phones, birthday)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i, rs := range takeSnapshot(book).Records {
		var birthday *time.Time
		if rs.Birthday != "" {
			d, err := time.Parse(domain.BirthdayLayout, rs.Birthday)
			if err != nil {
				return fmt.Errorf("failed to encode birthday for %s: %w", rs.Name, err)
			}
			birthday = &d
		}
		if _, err := tx.Exec(ctx, ins, i, rs.ID, rs.Name, rs.Phones, birthday); err != nil {
			return fmt.Errorf("failed to insert contact %s: %w", rs.Name, err)
		}
	}

	return tx.Commit(ctx)
}

// Health checks if the database is reachable.
func (s *PostgresStore) Health(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
