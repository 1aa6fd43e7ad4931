package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/jeanpaul/contacts/internal/config"
	"github.com/jeanpaul/contacts/internal/contact"
	"github.com/jeanpaul/contacts/internal/logging"
	"github.com/jeanpaul/contacts/internal/shell"
	"github.com/jeanpaul/contacts/internal/storage"
	"github.com/jeanpaul/contacts/internal/tui"
	"github.com/jeanpaul/contacts/pkg/version"
)

func main() {
	dataFlag := flag.String("data", "", "Address book file (.json, .yaml)")
	configFlag := flag.String("config", "", "Config file (default: ./config.yaml or ~/.config/contacts/config.yaml)")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("contacts %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal("config error: %s", err)
	}
	if *dataFlag != "" {
		cfg.DataFile = *dataFlag
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fatal("logger error: %s", err)
	}
	defer log.Sync()

	store := storage.New(cfg.DataFile, log)
	book, err := store.Load()
	if err != nil {
		fatal("failed to load address book %s: %s", store.Path(), err)
	}

	sh := shell.New(book, shell.Options{
		Store: store,
		Clock: clock.New(),
		Query: contact.BirthdayQuery{
			Window:  cfg.Birthdays.WindowDays,
			LeapDay: cfg.LeapDayPolicy(),
		},
		Theme: tui.NewTheme(cfg.Color && isTerminal()),
		Log:   log,
	})

	if err := sh.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Error("session ended with error", zap.Error(err))
		_ = log.Sync()
		fatal("%s", err)
	}
}

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("error: "+msg))
	os.Exit(1)
}

func showHelp() {
	theme := tui.NewTheme(isTerminal())
	help := `
` + theme.Banner("contacts") + ` - address book for your terminal

` + theme.Label("USAGE:") + `
  contacts [flags]            Start an interactive session

` + theme.Label("FLAGS:") + `
  --data <path>               Address book file (.json or .yaml/.yml)
  --config <path>             Config file to use
  --version                   Show version
  --help, -h                  Show this help

` + theme.Label("SESSION COMMANDS:") + `
  hello                       Greeting
  add <name> <phone>          Add a contact or another phone
  change <name> <new-phone>   Replace a phone
  phone <name>                Show phones
  remove-phone <name> <phone> Remove a phone
  delete <name>               Delete a contact
  all                         List contacts
  add-birthday <name> <date>  Set birthday (DD.MM.YYYY)
  show-birthday <name>        Show birthday
  birthdays                   Birthdays in the coming week
  export <file.xlsx>          Export to a spreadsheet
  help                        Command table
  close, exit                 Save and quit

` + theme.Help("Config: ~/.config/contacts/config.yaml, env CONTACTS_*") + `
`
	fmt.Println(help)
}
