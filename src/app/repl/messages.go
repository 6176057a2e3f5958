// Package repl implements the interactive command loop: tokenizing input
// lines, dispatching to handlers, and translating domain errors into
// human-readable replies. Domain and usecase code never formats user-facing
// error text; it all funnels through FromDomainError here.
package repl

import (
	"errors"

	"contactbook/src/core/domain"
)

// Fixed replies of the assistant.
const (
	msgWelcome        = "Welcome to the assistant bot!"
	msgPrompt         = "Enter a command: "
	msgHello          = "How can I help you?"
	msgGoodBye        = "Good bye!"
	msgInvalidCommand = "Invalid command."
	msgContactAdded   = "Contact added."
	msgContactUpdated = "Contact updated."
	msgNoContacts     = "No contacts."
	msgNoBirthdays    = "No birthdays in the next week."
	msgContactMissing = "Contact not found."
)

// FromDomainError converts a domain error to the reply printed to the user.
// This centralizes error handling and ensures consistent messages; the loop
// always recovers, so every error becomes a one-line reply.
func FromDomainError(err error) string {
	var domainErr *domain.DomainError
	switch {
	case domain.IsNotFound(err):
		return msgContactMissing
	case domain.IsValidationError(err):
		if errors.As(err, &domainErr) {
			return "Invalid " + domainErr.Field + ": " + domainErr.Message + "."
		}
		return "Invalid input: " + err.Error() + "."
	case domain.IsBadArguments(err):
		if errors.As(err, &domainErr) {
			return domainErr.Message
		}
		return err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}
