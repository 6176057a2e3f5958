// Package ports defines interfaces (ports) that connect the core domain to
// infrastructure, following the ports and adapters pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/store. This keeps the core free of storage dependencies.
package ports

import (
	"context"

	"contactbook/src/core/domain"
)

// BookStore persists the address book as a whole snapshot: loaded once at
// startup and written once at shutdown. Implementations do not need to
// support concurrent access or partial updates.
type BookStore interface {
	// Load reads the persisted snapshot. A missing snapshot is not an error;
	// it yields an empty address book.
	Load(ctx context.Context) (*domain.AddressBook, error)

	// Save overwrites the persisted snapshot with the book's full state.
	Save(ctx context.Context, book *domain.AddressBook) error

	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}
