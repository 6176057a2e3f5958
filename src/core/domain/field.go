// Package domain contains the core domain model for the contact book:
// validated field values, contact records, the address book itself, and
// domain-specific errors.
//
// Rules for this package:
//   - No infrastructure concerns (storage, terminal I/O, etc.)
//   - Entities validate their own invariants
//   - Value objects are immutable once constructed
package domain

import (
	"regexp"
	"time"
)

// BirthdayLayout is the textual format for birthdays, DD.MM.YYYY.
const BirthdayLayout = "02.01.2006"

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Name is a contact's display name. It doubles as the primary key within an
// AddressBook: case-sensitive, stored verbatim.
type Name string

// NewName validates and constructs a contact name.
func NewName(value string) (Name, error) {
	if value == "" {
		return "", NewValidationError("name", "name must not be empty")
	}
	return Name(value), nil
}

func (n Name) String() string { return string(n) }

// Phone is a phone number of exactly 10 decimal digits, no separators and no
// country code.
type Phone string

// NewPhone validates and constructs a phone number.
func NewPhone(value string) (Phone, error) {
	if !phonePattern.MatchString(value) {
		return "", NewValidationError("phone", "phone must be 10 digits")
	}
	return Phone(value), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a calendar date parsed from the fixed DD.MM.YYYY format.
// No year-range restriction is enforced.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a birthday from its textual form. Both a malformed string
// and an impossible calendar date (e.g. 31.02.2024) are validation errors.
func NewBirthday(value string) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, NewValidationError("birthday", "invalid date format, use DD.MM.YYYY")
	}
	return Birthday{date: d}, nil
}

// Day returns the day of the month.
func (b Birthday) Day() int { return b.date.Day() }

// Month returns the month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Year returns the birth year.
func (b Birthday) Year() int { return b.date.Year() }

// String formats the birthday back to DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
