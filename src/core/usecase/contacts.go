// Package usecase implements the command-level operations of the assistant.
// Services operate on the in-memory address book and return domain errors;
// translating errors to user-facing text is the REPL boundary's job.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"contactbook/src/core/domain"
	"contactbook/src/core/ports"
)

// ContactService owns the in-memory address book for the session and the
// store used to persist it at shutdown.
type ContactService struct {
	book  *domain.AddressBook
	store ports.BookStore
	log   *slog.Logger

	// now is injectable for deterministic birthday-window tests.
	now func() time.Time
}

// NewContactService wires a service around an already-loaded address book.
func NewContactService(book *domain.AddressBook, store ports.BookStore, log *slog.Logger) *ContactService {
	return &ContactService{
		book:  book,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// AddContact adds phone to the named contact, creating the contact first if
// it does not exist. It reports whether a new contact was created.
func (s *ContactService) AddContact(name, phone string) (created bool, err error) {
	record, ok := s.book.Find(name)
	if !ok {
		record, err = domain.NewRecord(name)
		if err != nil {
			return false, err
		}
		created = true
	}
	if err := record.AddPhone(phone); err != nil {
		return false, err
	}
	if created {
		s.book.AddRecord(record)
		s.log.Debug("contact created", "name", name)
	}
	return created, nil
}

// ChangePhone replaces oldPhone with newPhone on an existing contact.
func (s *ContactService) ChangePhone(name, oldPhone, newPhone string) error {
	record, ok := s.book.Find(name)
	if !ok {
		return domain.NewNotFoundError("contact " + name)
	}
	return record.EditPhone(oldPhone, newPhone)
}

// RemoveContact deletes the named contact from the book.
func (s *ContactService) RemoveContact(name string) error {
	return s.book.Delete(name)
}

// Phones returns the contact's phone numbers in insertion order.
func (s *ContactService) Phones(name string) ([]domain.Phone, error) {
	record, ok := s.book.Find(name)
	if !ok {
		return nil, domain.NewNotFoundError("contact " + name)
	}
	return record.Phones(), nil
}

// All returns every record in insertion order.
func (s *ContactService) All() []*domain.Record {
	return s.book.Records()
}

// SetBirthday sets the birthday on an existing contact.
func (s *ContactService) SetBirthday(name, date string) error {
	record, ok := s.book.Find(name)
	if !ok {
		return domain.NewNotFoundError("contact " + name)
	}
	return record.SetBirthday(date)
}

// Birthday returns the contact's birthday and whether one is set.
func (s *ContactService) Birthday(name string) (domain.Birthday, bool, error) {
	record, ok := s.book.Find(name)
	if !ok {
		return domain.Birthday{}, false, domain.NewNotFoundError("contact " + name)
	}
	bd, set := record.Birthday()
	return bd, set, nil
}

// UpcomingBirthdays returns the records with a birthday in the next
// windowDays days, counted from today.
func (s *ContactService) UpcomingBirthdays(windowDays int) []*domain.Record {
	return s.book.UpcomingBirthdays(s.now(), windowDays)
}

// Persist writes the whole book to the configured store.
func (s *ContactService) Persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.book); err != nil {
		return err
	}
	s.log.Info("address book persisted", "records", s.book.Len())
	return nil
}
