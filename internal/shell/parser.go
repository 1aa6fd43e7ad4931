package shell

import (
	"fmt"
	"strings"
)

// ParseInput splits a line into a lower-cased command name and its
// positional arguments. A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// MissingArgumentError is returned when a command gets fewer arguments than
// it needs.
type MissingArgumentError struct {
	Command string
	Usage   string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: missing arguments (usage: %s)", e.Command, e.Usage)
}
