package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestAddressBook_AddFind(t *testing.T) {
	book := NewAddressBook()

	alice := mustRecord(t, "Alice", "1234567890")
	book.AddRecord(alice)

	got, ok := book.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, []Phone{"1234567890"}, got.Phones())

	_, ok = book.Find("Bob")
	assert.False(t, ok)

	// Names are case-sensitive keys.
	_, ok = book.Find("alice")
	assert.False(t, ok)
}

func TestAddressBook_OverwriteKeepsPosition(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(mustRecord(t, "Alice", "1111111111"))
	book.AddRecord(mustRecord(t, "Bob", "2222222222"))
	book.AddRecord(mustRecord(t, "Alice", "3333333333"))

	records := book.Records()
	require.Len(t, records, 2)
	assert.Equal(t, Name("Alice"), records[0].Name())
	assert.Equal(t, []Phone{"3333333333"}, records[0].Phones())
	assert.Equal(t, Name("Bob"), records[1].Name())
}

func TestAddressBook_Delete(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(mustRecord(t, "Alice"))
	book.AddRecord(mustRecord(t, "Bob"))

	require.NoError(t, book.Delete("Alice"))
	_, ok := book.Find("Alice")
	assert.False(t, ok)
	assert.Equal(t, 1, book.Len())

	err := book.Delete("Alice")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestAddressBook_RecordsOrder(t *testing.T) {
	book := NewAddressBook()
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		book.AddRecord(mustRecord(t, name))
	}

	var names []Name
	for _, r := range book.Records() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []Name{"Charlie", "Alice", "Bob"}, names)
}

func TestAddressBook_UpcomingBirthdays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	withBirthday := func(name, birthday string) *Record {
		r := mustRecord(t, name)
		require.NoError(t, r.SetBirthday(birthday))
		return r
	}

	t.Run("includes birthdays inside the forward window", func(t *testing.T) {
		book := NewAddressBook()
		book.AddRecord(withBirthday("InWindow", "15.06.1990"))
		book.AddRecord(withBirthday("Outside", "20.06.1990"))
		book.AddRecord(mustRecord(t, "NoBirthday"))

		got := book.UpcomingBirthdays(day(2024, time.June, 10), 7)
		require.Len(t, got, 1)
		assert.Equal(t, Name("InWindow"), got[0].Name())
	})

	t.Run("window is inclusive on both ends", func(t *testing.T) {
		book := NewAddressBook()
		book.AddRecord(withBirthday("Today", "10.06.1985"))
		book.AddRecord(withBirthday("LastDay", "17.06.1985"))
		book.AddRecord(withBirthday("Past", "09.06.1985"))
		book.AddRecord(withBirthday("Beyond", "18.06.1985"))

		got := book.UpcomingBirthdays(day(2024, time.June, 10), 7)
		require.Len(t, got, 2)
		assert.Equal(t, Name("Today"), got[0].Name())
		assert.Equal(t, Name("LastDay"), got[1].Name())
	})

	t.Run("birth year is ignored", func(t *testing.T) {
		book := NewAddressBook()
		book.AddRecord(withBirthday("Old", "15.06.1950"))

		got := book.UpcomingBirthdays(day(2024, time.June, 10), 7)
		assert.Len(t, got, 1)
	})

	t.Run("no wraparound into the next year", func(t *testing.T) {
		// A Jan 2 birthday evaluated on Dec 30 projects to Jan 2 of the
		// current year, which is already in the past, so it is not reported.
		book := NewAddressBook()
		book.AddRecord(withBirthday("NewYear", "02.01.1990"))

		got := book.UpcomingBirthdays(day(2024, time.December, 30), 7)
		assert.Empty(t, got)
	})

	t.Run("results keep insertion order", func(t *testing.T) {
		book := NewAddressBook()
		book.AddRecord(withBirthday("Second", "12.06.1990"))
		book.AddRecord(withBirthday("First", "11.06.1990"))

		got := book.UpcomingBirthdays(day(2024, time.June, 10), 7)
		require.Len(t, got, 2)
		assert.Equal(t, Name("Second"), got[0].Name())
		assert.Equal(t, Name("First"), got[1].Name())
	})

	t.Run("feb 29 projects to mar 1 on non-leap years", func(t *testing.T) {
		book := NewAddressBook()
		book.AddRecord(withBirthday("Leapling", "29.02.2000"))

		// 2025 is not a leap year; the projection normalizes to Mar 1.
		got := book.UpcomingBirthdays(day(2025, time.February, 26), 7)
		assert.Len(t, got, 1)
	})
}
