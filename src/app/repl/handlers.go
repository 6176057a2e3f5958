package repl

import (
	"fmt"
	"strings"

	"contactbook/src/core/domain"
	"contactbook/src/core/usecase"
)

// Handlers maps parsed commands onto contact service operations. Every
// handler returns the reply to print or a domain error; argument counts are
// checked here, at the dispatch boundary.
type Handlers struct {
	svc        *usecase.ContactService
	windowDays int
}

// NewHandlers wires handlers around the contact service.
func NewHandlers(svc *usecase.ContactService, windowDays int) *Handlers {
	return &Handlers{svc: svc, windowDays: windowDays}
}

func (h *Handlers) addContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", domain.NewArgumentCountError("Usage: add <name> <phone>")
	}
	created, err := h.svc.AddContact(args[0], args[1])
	if err != nil {
		return "", err
	}
	if created {
		return msgContactAdded, nil
	}
	return msgContactUpdated, nil
}

func (h *Handlers) changePhone(args []string) (string, error) {
	if len(args) != 3 {
		return "", domain.NewArgumentCountError("Usage: change <name> <old phone> <new phone>")
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]
	if err := h.svc.ChangePhone(name, oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone for %s updated from %s to %s.", name, oldPhone, newPhone), nil
}

func (h *Handlers) showPhones(args []string) (string, error) {
	if len(args) != 1 {
		return "", domain.NewArgumentCountError("Usage: phone <name>")
	}
	phones, err := h.svc.Phones(args[0])
	if err != nil {
		return "", err
	}
	joined := make([]string, len(phones))
	for i, p := range phones {
		joined[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", args[0], strings.Join(joined, "; ")), nil
}

func (h *Handlers) showAll() (string, error) {
	records := h.svc.All()
	if len(records) == 0 {
		return msgNoContacts, nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handlers) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", domain.NewArgumentCountError("Usage: add-birthday <name> <DD.MM.YYYY>")
	}
	name, date := args[0], args[1]
	if err := h.svc.SetBirthday(name, date); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for %s added as %s.", name, date), nil
}

func (h *Handlers) showBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", domain.NewArgumentCountError("Usage: show-birthday <name>")
	}
	name := args[0]
	bd, set, err := h.svc.Birthday(name)
	if err != nil {
		return "", err
	}
	if !set {
		return fmt.Sprintf("%s does not have a birthday set.", name), nil
	}
	return fmt.Sprintf("%s's birthday is on %s.", name, bd), nil
}

func (h *Handlers) upcomingBirthdays() (string, error) {
	upcoming := h.svc.UpcomingBirthdays(h.windowDays)
	if len(upcoming) == 0 {
		return msgNoBirthdays, nil
	}
	lines := make([]string, len(upcoming))
	for i, r := range upcoming {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}
