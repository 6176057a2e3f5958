package repl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/src/core/domain"
	"contactbook/src/core/usecase"
)

type memStore struct {
	saved *domain.AddressBook
}

func (m *memStore) Load(context.Context) (*domain.AddressBook, error) {
	return domain.NewAddressBook(), nil
}

func (m *memStore) Save(_ context.Context, book *domain.AddressBook) error {
	m.saved = book
	return nil
}

func (m *memStore) Health(context.Context) error { return nil }

// runScript feeds the given lines to a fresh REPL and returns its output.
func runScript(t *testing.T, script string) (string, *memStore) {
	t.Helper()
	store := &memStore{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewContactService(domain.NewAddressBook(), store, log)

	var out bytes.Buffer
	r := New(svc, 7, log, strings.NewReader(script), &out)
	require.NoError(t, r.Run(context.Background()))
	return out.String(), store
}

func TestParseInput(t *testing.T) {
	cmd, args := parseInput("ADD Alice 1234567890")
	assert.Equal(t, "add", cmd)
	assert.Equal(t, []string{"Alice", "1234567890"}, args)

	cmd, args = parseInput("   ")
	assert.Equal(t, "", cmd)
	assert.Nil(t, args)

	cmd, args = parseInput("hello")
	assert.Equal(t, "hello", cmd)
	assert.Empty(t, args)
}

func TestREPL_Transcript(t *testing.T) {
	out, _ := runScript(t, strings.Join([]string{
		"hello",
		"add Alice 1234567890",
		"add Alice 0987654321",
		"phone Alice",
		"close",
	}, "\n"))

	want := msgWelcome + "\n" +
		msgPrompt + msgHello + "\n" +
		msgPrompt + msgContactAdded + "\n" +
		msgPrompt + msgContactUpdated + "\n" +
		msgPrompt + "Alice: 1234567890; 0987654321\n" +
		msgPrompt + msgGoodBye + "\n"
	assert.Equal(t, want, out)
}

func TestREPL_Commands(t *testing.T) {
	t.Run("change", func(t *testing.T) {
		out, _ := runScript(t, "add Alice 1111111111\nchange Alice 1111111111 2222222222\nphone Alice\nexit\n")
		assert.Contains(t, out, "Phone for Alice updated from 1111111111 to 2222222222.")
		assert.Contains(t, out, "Alice: 2222222222")
	})

	t.Run("change on unknown contact", func(t *testing.T) {
		out, _ := runScript(t, "change Bob 1111111111 2222222222\nexit\n")
		assert.Contains(t, out, msgContactMissing)
	})

	t.Run("all lists records in insertion order", func(t *testing.T) {
		out, _ := runScript(t, "add Bob 1111111111\nadd Alice 2222222222\nall\nexit\n")
		bob := strings.Index(out, "Name: Bob, Phones: 1111111111, Birthday: No birthday")
		alice := strings.Index(out, "Name: Alice, Phones: 2222222222, Birthday: No birthday")
		require.GreaterOrEqual(t, bob, 0)
		require.GreaterOrEqual(t, alice, 0)
		assert.Less(t, bob, alice)
	})

	t.Run("all on empty book", func(t *testing.T) {
		out, _ := runScript(t, "all\nexit\n")
		assert.Contains(t, out, msgNoContacts)
	})

	t.Run("birthday set and shown", func(t *testing.T) {
		out, _ := runScript(t, "add Alice 1234567890\nadd-birthday Alice 15.06.1990\nshow-birthday Alice\nexit\n")
		assert.Contains(t, out, "Birthday for Alice added as 15.06.1990.")
		assert.Contains(t, out, "Alice's birthday is on 15.06.1990.")
	})

	t.Run("birthday not set", func(t *testing.T) {
		out, _ := runScript(t, "add Alice 1234567890\nshow-birthday Alice\nexit\n")
		assert.Contains(t, out, "Alice does not have a birthday set.")
	})

	t.Run("birthdays with none upcoming", func(t *testing.T) {
		out, _ := runScript(t, "birthdays\nexit\n")
		assert.Contains(t, out, msgNoBirthdays)
	})

	t.Run("invalid command", func(t *testing.T) {
		out, _ := runScript(t, "frobnicate\nexit\n")
		assert.Contains(t, out, msgInvalidCommand)
	})

	t.Run("empty lines are ignored", func(t *testing.T) {
		out, _ := runScript(t, "\n\nhello\nexit\n")
		assert.Equal(t, 1, strings.Count(out, msgHello))
	})
}

func TestREPL_ErrorRecovery(t *testing.T) {
	t.Run("validation error text", func(t *testing.T) {
		out, _ := runScript(t, "add Alice 123\nhello\nexit\n")
		assert.Contains(t, out, "Invalid phone: phone must be 10 digits.")
		// The loop keeps going after the error.
		assert.Contains(t, out, msgHello)
	})

	t.Run("invalid birthday text", func(t *testing.T) {
		out, _ := runScript(t, "add Alice 1234567890\nadd-birthday Alice 31.02.2024\nexit\n")
		assert.Contains(t, out, "Invalid birthday: invalid date format, use DD.MM.YYYY.")
	})

	t.Run("argument count errors show usage", func(t *testing.T) {
		out, _ := runScript(t, "add Alice\nchange Alice\nphone\nadd-birthday Alice\nshow-birthday\nexit\n")
		assert.Contains(t, out, "Usage: add <name> <phone>")
		assert.Contains(t, out, "Usage: change <name> <old phone> <new phone>")
		assert.Contains(t, out, "Usage: phone <name>")
		assert.Contains(t, out, "Usage: add-birthday <name> <DD.MM.YYYY>")
		assert.Contains(t, out, "Usage: show-birthday <name>")
	})
}

func TestREPL_PersistsOnExit(t *testing.T) {
	t.Run("close persists", func(t *testing.T) {
		out, store := runScript(t, "add Alice 1234567890\nclose\n")
		assert.Contains(t, out, msgGoodBye)
		require.NotNil(t, store.saved)
		assert.Equal(t, 1, store.saved.Len())
	})

	t.Run("end of input persists", func(t *testing.T) {
		out, store := runScript(t, "add Alice 1234567890\n")
		assert.Contains(t, out, msgGoodBye)
		require.NotNil(t, store.saved)
		assert.Equal(t, 1, store.saved.Len())
	})
}

func TestFromDomainError(t *testing.T) {
	assert.Equal(t, msgContactMissing, FromDomainError(domain.NewNotFoundError("contact Bob")))
	assert.Equal(t, "Invalid phone: phone must be 10 digits.",
		FromDomainError(domain.NewValidationError("phone", "phone must be 10 digits")))
	assert.Equal(t, "Usage: add <name> <phone>",
		FromDomainError(domain.NewArgumentCountError("Usage: add <name> <phone>")))
}
