package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Record aggregates one contact's data: an immutable name, an ordered list of
// phone numbers (duplicates may coexist) and at most one birthday.
type Record struct {
	id       uuid.UUID
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record for the given contact name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{id: uuid.New(), name: n}, nil
}

// RestoreRecord rebuilds a record from persisted state. Each field is
// re-validated, so a corrupted snapshot surfaces as a validation error.
// An empty birthday string means the contact has no birthday set.
func RestoreRecord(id uuid.UUID, name string, phones []string, birthday string) (*Record, error) {
	r, err := NewRecord(name)
	if err != nil {
		return nil, err
	}
	if id != uuid.Nil {
		r.id = id
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if birthday != "" {
		if err := r.SetBirthday(birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ID returns the record's stable identity.
func (r *Record) ID() uuid.UUID { return r.id }

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns the phone numbers in insertion order. The returned slice is
// a copy; mutating it does not affect the record.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the contact's birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates and appends a phone number. Duplicates are not checked.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every entry equal to number. Removing a number that is
// not present is a no-op, not an error.
func (r *Record) RemovePhone(number string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if string(p) != number {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldNumber with a validated
// newNumber. It fails with a not found error if oldNumber is absent.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	for i, p := range r.phones {
		if string(p) == oldNumber {
			np, err := NewPhone(newNumber)
			if err != nil {
				return err
			}
			r.phones[i] = np
			return nil
		}
	}
	return NewNotFoundError("phone " + oldNumber)
}

// FindPhone returns the first phone equal to number, if any. Read-only.
func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, p := range r.phones {
		if string(p) == number {
			return p, true
		}
	}
	return "", false
}

// SetBirthday validates and sets the birthday, replacing any existing value.
func (r *Record) SetBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// String produces the canonical one-line description of the record.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = string(p)
	}
	birthday := "No birthday"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Name: %s, Phones: %s, Birthday: %s", r.name, strings.Join(phones, "; "), birthday)
}
