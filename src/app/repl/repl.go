package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"contactbook/src/core/usecase"
)

// REPL reads commands line by line, processes each to completion and prints
// one reply. It is strictly single-threaded over the address book; the only
// goroutine it spawns feeds stdin lines into the loop so shutdown signals can
// interrupt a blocking read.
type REPL struct {
	svc      *usecase.ContactService
	handlers *Handlers
	log      *slog.Logger
	in       io.Reader
	out      io.Writer
}

// New constructs a REPL over the given reader and writer.
func New(svc *usecase.ContactService, windowDays int, log *slog.Logger, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		svc:      svc,
		handlers: NewHandlers(svc, windowDays),
		log:      log,
		in:       in,
		out:      out,
	}
}

// parseInput splits a line into a lowercased command and its raw arguments.
// An empty or all-blank line yields an empty command.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Run drives the loop until close/exit, end of input, or context
// cancellation. All exits persist the address book first.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, msgWelcome)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		fmt.Fprint(r.out, msgPrompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return r.quit(context.Background())
		case line, ok := <-lines:
			if !ok {
				// End of input behaves like the close command.
				if err := <-scanErr; err != nil {
					r.log.Error("failed to read input", "error", err)
				}
				return r.quit(ctx)
			}

			command, args := parseInput(line)
			if command == "" {
				continue
			}
			if command == "close" || command == "exit" {
				return r.quit(ctx)
			}
			fmt.Fprintln(r.out, r.dispatch(command, args))
		}
	}
}

// dispatch routes one command to its handler and translates any error into
// the reply text. It never lets an error escape the loop.
func (r *REPL) dispatch(command string, args []string) string {
	var (
		reply string
		err   error
	)
	switch command {
	case "hello":
		reply = msgHello
	case "add":
		reply, err = r.handlers.addContact(args)
	case "change":
		reply, err = r.handlers.changePhone(args)
	case "phone":
		reply, err = r.handlers.showPhones(args)
	case "all":
		reply, err = r.handlers.showAll()
	case "add-birthday":
		reply, err = r.handlers.addBirthday(args)
	case "show-birthday":
		reply, err = r.handlers.showBirthday(args)
	case "birthdays":
		reply, err = r.handlers.upcomingBirthdays()
	default:
		reply = msgInvalidCommand
	}
	if err != nil {
		r.log.Debug("command failed", "command", command, "error", err)
		return FromDomainError(err)
	}
	return reply
}

// quit persists the book and says goodbye.
func (r *REPL) quit(ctx context.Context) error {
	fmt.Fprintln(r.out, msgGoodBye)
	return r.svc.Persist(ctx)
}
