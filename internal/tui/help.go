package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// CommandHelp is one row of the help table.
type CommandHelp struct {
	Usage       string
	Description string
}

// HelpMarkdown builds the markdown source of the help table.
func HelpMarkdown(cmds []CommandHelp) string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("| Command | Description |\n")
	b.WriteString("|---|---|\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "| `%s` | %s |\n", c.Usage, c.Description)
	}
	return b.String()
}

// RenderHelp renders the help table through glamour. Without colour the
// "notty" style is used so the output is plain text.
func RenderHelp(cmds []CommandHelp, color bool) (string, error) {
	style := "notty"
	if color {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(HelpMarkdown(cmds))
}
