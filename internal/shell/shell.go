package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jeanpaul/contacts/internal/contact"
	"github.com/jeanpaul/contacts/internal/tui"
)

// MaxLineSize bounds a single input line.
const MaxLineSize = 1 << 20

// Saver persists the address book when the session ends.
type Saver interface {
	Save(book *contact.AddressBook) error
}

type Options struct {
	Store Saver
	Clock clock.Clock
	Query contact.BirthdayQuery
	Theme tui.Theme
	Log   *zap.Logger
}

// Shell is an interactive session over one address book. It reads one command
// per line, runs it to completion and prints the result.
type Shell struct {
	book  *contact.AddressBook
	store Saver
	clock clock.Clock
	query contact.BirthdayQuery
	theme tui.Theme
	log   *zap.Logger

	in  *bufio.Scanner
	out io.Writer
}

func New(book *contact.AddressBook, opts Options) *Shell {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Query.Window == 0 {
		opts.Query.Window = contact.DefaultWindow
	}
	return &Shell{
		book:  book,
		store: opts.Store,
		clock: opts.Clock,
		query: opts.Query,
		theme: opts.Theme,
		log:   opts.Log.Named("shell"),
	}
}

// Run reads commands from in until close/exit or end of input, then saves the
// book. Command failures are reported and never end the session. A read
// failure ends the session too; the book is still saved and the read error
// is returned.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.in = bufio.NewScanner(in)
	s.in.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	s.out = out

	fmt.Fprintln(out, s.theme.Banner("Welcome to the assistant bot!"))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, s.theme.Prompt("Enter a command: "))
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(out)
			if err := s.in.Err(); err != nil {
				s.log.Error("read input", zap.Error(err))
				fmt.Fprintln(out, s.theme.Error("Error: "+err.Error()))
				return multierr.Append(fmt.Errorf("read input: %w", err), s.shutdown())
			}
			return s.shutdown()
		}

		name, args := ParseInput(line)
		switch name {
		case "":
			continue
		case "close", "exit":
			return s.shutdown()
		}

		msg, err := s.Dispatch(name, args)
		if err != nil {
			s.log.Warn("command failed", zap.String("command", name), zap.Error(err))
			fmt.Fprintln(out, s.theme.Error(Describe(err)))
			continue
		}
		fmt.Fprintln(out, msg)
	}
}

// Dispatch runs a single command against the book and returns its output.
func (s *Shell) Dispatch(name string, args []string) (string, error) {
	cmd, ok := lookup(name)
	if !ok || cmd.run == nil {
		s.log.Debug("unknown command", zap.String("command", name))
		return "Invalid command", nil
	}
	if len(args) < cmd.nargs {
		return "", &MissingArgumentError{Command: cmd.name, Usage: cmd.usage}
	}
	s.log.Debug("command", zap.String("command", name), zap.Strings("args", args))
	return cmd.run(s, args)
}

func (s *Shell) shutdown() error {
	fmt.Fprintln(s.out, s.theme.Banner("Good bye!"))
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(s.book); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	return nil
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// Describe turns a command error into the message shown to the user. Each
// error kind has one fixed message.
func Describe(err error) string {
	var (
		missing  *MissingArgumentError
		invalid  *contact.ValidationError
		notFound *contact.NotFoundError
	)
	switch {
	case errors.As(err, &missing):
		return "Not enough arguments. Usage: " + missing.Usage
	case errors.As(err, &invalid):
		return "Please enter the correct arguments"
	case errors.As(err, &notFound):
		return "No such " + notFound.Kind
	}
	return "Error: " + err.Error()
}
