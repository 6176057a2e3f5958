// Package store contains the snapshot store adapters behind ports.BookStore:
// a JSON file store (the default) and a Postgres-backed store. Both persist
// the address book as a whole snapshot, written once per session.
package store

import (
	"github.com/google/uuid"

	"contactbook/src/core/domain"
)

// snapshotVersion guards against loading snapshots written by an
// incompatible future format.
const snapshotVersion = 1

// snapshot is the serialized form of a whole address book.
type snapshot struct {
	Version int              `json:"version"`
	Records []recordSnapshot `json:"records"`
}

// recordSnapshot is the serialized form of one contact record. Phones keep
// their insertion order; an empty birthday means none is set.
type recordSnapshot struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phones   []string  `json:"phones"`
	Birthday string    `json:"birthday,omitempty"`
}

// takeSnapshot flattens the book into its serialized form.
func takeSnapshot(book *domain.AddressBook) snapshot {
	snap := snapshot{Version: snapshotVersion}
	for _, r := range book.Records() {
		snap.Records = append(snap.Records, takeRecordSnapshot(r))
	}
	return snap
}

func takeRecordSnapshot(r *domain.Record) recordSnapshot {
	rs := recordSnapshot{
		ID:     r.ID(),
		Name:   r.Name().String(),
		Phones: make([]string, 0, len(r.Phones())),
	}
	for _, p := range r.Phones() {
		rs.Phones = append(rs.Phones, p.String())
	}
	if bd, ok := r.Birthday(); ok {
		rs.Birthday = bd.String()
	}
	return rs
}

// restoreBook rebuilds an address book from its serialized form, re-validating
// every field so corrupted snapshots fail loudly instead of loading garbage.
func restoreBook(snap snapshot) (*domain.AddressBook, error) {
	book := domain.NewAddressBook()
	for _, rs := range snap.Records {
		r, err := domain.RestoreRecord(rs.ID, rs.Name, rs.Phones, rs.Birthday)
		if err != nil {
			return nil, err
		}
		book.AddRecord(r)
	}
	return book, nil
}
