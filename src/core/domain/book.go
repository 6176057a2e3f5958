package domain

import "time"

// AddressBook is the keyed collection of all records, keyed by contact name.
// Insertion order is preserved so listings are deterministic; overwriting an
// existing name keeps its original position.
type AddressBook struct {
	records map[Name]*Record
	order   []Name
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[Name]*Record)}
}

// AddRecord inserts the record under its name, silently replacing any prior
// record with the same name. Callers wanting update semantics should
// fetch-then-mutate via Find instead.
func (b *AddressBook) AddRecord(r *Record) {
	if _, exists := b.records[r.Name()]; !exists {
		b.order = append(b.order, r.Name())
	}
	b.records[r.Name()] = r
}

// Find returns the record for name, if present. Never fails.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[Name(name)]
	return r, ok
}

// Delete removes the record for name. It fails with a not found error if the
// name is absent.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[Name(name)]; !ok {
		return NewNotFoundError("contact " + name)
	}
	delete(b.records, Name(name))
	for i, n := range b.order {
		if n == Name(name) {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.records) }

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, n := range b.order {
		out = append(out, b.records[n])
	}
	return out
}

// UpcomingBirthdays returns, in insertion order, every record whose birthday
// projected onto today's year falls within [today, today+windowDays], both
// ends inclusive.
//
// The projection deliberately does not wrap into the next year: a January
// birthday evaluated in late December is not reported. A Feb-29 birthday
// projected onto a non-leap year normalizes to Mar-1 (time.Date semantics).
func (b *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) []*Record {
	start := atMidnight(today)
	end := start.AddDate(0, 0, windowDays)

	var upcoming []*Record
	for _, n := range b.order {
		r := b.records[n]
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		projected := time.Date(start.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, start.Location())
		if !projected.Before(start) && !projected.After(end) {
			upcoming = append(upcoming, r)
		}
	}
	return upcoming
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
