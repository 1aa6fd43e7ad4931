package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jeanpaul/contacts/internal/contact"
	"github.com/jeanpaul/contacts/internal/storage"
	"github.com/jeanpaul/contacts/internal/tui"
)

type handler func(s *Shell, args []string) (string, error)

type command struct {
	name  string
	usage string
	desc  string
	nargs int
	run   handler
}

// commands lists every command in help order. close and exit are handled by
// the loop itself and only appear here for help and lookup.
var commands []command

// populated in init because cmdHelp reads the table
func init() {
	commands = []command{
		{name: "hello", usage: "hello", desc: "Greet the assistant", run: cmdHello},
		{name: "add", usage: "add <name> <phone>", desc: "Add a contact or a phone to an existing contact", nargs: 2, run: cmdAdd},
		{name: "change", usage: "change <name> <new-phone>", desc: "Replace a phone; asks which one when there are several", nargs: 2, run: cmdChange},
		{name: "phone", usage: "phone <name>", desc: "Show a contact's phones", nargs: 1, run: cmdPhone},
		{name: "remove-phone", usage: "remove-phone <name> <phone>", desc: "Remove a phone from a contact", nargs: 2, run: cmdRemovePhone},
		{name: "delete", usage: "delete <name>", desc: "Delete a contact", nargs: 1, run: cmdDelete},
		{name: "all", usage: "all", desc: "List all contacts", run: cmdAll},
		{name: "add-birthday", usage: "add-birthday <name> <DD.MM.YYYY>", desc: "Set a contact's birthday", nargs: 2, run: cmdAddBirthday},
		{name: "show-birthday", usage: "show-birthday <name>", desc: "Show a contact's birthday", nargs: 1, run: cmdShowBirthday},
		{name: "birthdays", usage: "birthdays", desc: "Birthdays to celebrate in the coming days", run: cmdBirthdays},
		{name: "export", usage: "export <file.xlsx>", desc: "Export contacts to a spreadsheet", nargs: 1, run: cmdExport},
		{name: "help", usage: "help", desc: "Show this help", run: cmdHelp},
		{name: "close", usage: "close", desc: "Save and exit"},
		{name: "exit", usage: "exit", desc: "Save and exit"},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func cmdHello(*Shell, []string) (string, error) {
	return "How can I help you?", nil
}

func cmdAdd(s *Shell, args []string) (string, error) {
	name, phone := args[0], args[1]
	rec, ok := s.book.Find(name)
	msg := "Contact updated."
	if !ok {
		var err error
		rec, err = contact.NewRecord(name)
		if err != nil {
			return "", err
		}
		msg = "Contact added."
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	// only stored once the phone is known to be valid
	if !ok {
		s.book.AddRecord(rec)
	}
	return msg, nil
}

func cmdChange(s *Shell, args []string) (string, error) {
	name, newPhone := args[0], args[1]

	old, err := s.book.ChangePhone(name, newPhone, contact.NoPick)
	var amb *contact.AmbiguousPhoneError
	if errors.As(err, &amb) {
		pick, perr := s.choosePhone(amb)
		if perr != nil {
			return "", perr
		}
		old, err = s.book.ChangePhone(name, newPhone, pick)
	}
	if errors.Is(err, contact.ErrNoPhones) {
		return "No phones to edit", nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact updated successfully. Number %s was replaced with %s.", old, newPhone), nil
}

// choosePhone lists the candidates and reads an index from the input.
func (s *Shell) choosePhone(amb *contact.AmbiguousPhoneError) (int, error) {
	fmt.Fprintf(s.out, "The contact %s has following phones:\n", amb.Name)
	indexes := make([]string, len(amb.Candidates))
	for i, p := range amb.Candidates {
		indexes[i] = strconv.Itoa(i)
		fmt.Fprintf(s.out, "%s: %s\n", s.theme.Choice(indexes[i]), p)
	}
	fmt.Fprint(s.out, s.theme.Prompt("Choose the number of phone to edit ("+strings.Join(indexes, ", ")+"): "))

	line, ok := s.readLine()
	if !ok {
		return 0, &contact.ValidationError{Field: "index", Reason: "no phone chosen"}
	}
	line = strings.TrimSpace(line)
	pick, err := strconv.Atoi(line)
	if err != nil {
		return 0, &contact.ValidationError{Field: "index", Value: line, Reason: "phone index must be a number"}
	}
	return pick, nil
}

func cmdPhone(s *Shell, args []string) (string, error) {
	rec, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("The contact %s has no phones", rec.Name()), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The contact %s has following phones:", rec.Name())
	for _, p := range phones {
		b.WriteString("\n" + s.theme.Value(p))
	}
	return b.String(), nil
}

func cmdRemovePhone(s *Shell, args []string) (string, error) {
	rec, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return "Phone removed.", nil
}

func cmdDelete(s *Shell, args []string) (string, error) {
	if err := s.book.Delete(args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}

func cmdAll(s *Shell, _ []string) (string, error) {
	if s.book.Len() == 0 {
		return "No contacts", nil
	}
	lines := make([]string, 0, s.book.Len())
	for _, rec := range s.book.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n"), nil
}

func cmdAddBirthday(s *Shell, args []string) (string, error) {
	rec, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return "Date of birth added.", nil
}

func cmdShowBirthday(s *Shell, args []string) (string, error) {
	rec, err := s.find(args[0])
	if err != nil {
		return "", err
	}
	b, ok := rec.ShowBirthday()
	if !ok {
		return "No birthday set", nil
	}
	return b.String(), nil
}

func cmdBirthdays(s *Shell, _ []string) (string, error) {
	greetings := s.query.Run(s.book, s.clock.Now())
	if len(greetings) == 0 {
		return "No birthdays", nil
	}
	lines := make([]string, len(greetings))
	for i, g := range greetings {
		lines[i] = fmt.Sprintf("%s: %s", s.theme.Label(g.Name), g.DateString())
	}
	return strings.Join(lines, "\n"), nil
}

func cmdExport(s *Shell, args []string) (string, error) {
	if err := storage.ExportXLSX(s.book, args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Exported %d contacts to %s", s.book.Len(), args[0]), nil
}

func cmdHelp(s *Shell, _ []string) (string, error) {
	rows := make([]tui.CommandHelp, 0, len(commands))
	for _, c := range commands {
		rows = append(rows, tui.CommandHelp{Usage: c.usage, Description: c.desc})
	}
	out, err := tui.RenderHelp(rows, s.theme.Color())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

func (s *Shell) find(name string) (*contact.Record, error) {
	rec, ok := s.book.Find(name)
	if !ok {
		return nil, &contact.NotFoundError{Kind: "contact", Key: name}
	}
	return rec, nil
}
