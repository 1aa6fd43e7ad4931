package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#3B7F3B")
	Cyan        = lipgloss.Color("#00D4AA")
	Gold        = lipgloss.Color("#FFD700")
	Red         = lipgloss.Color("#FF4136")

	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	PromptStyle = lipgloss.NewStyle().
			Foreground(DarkGreen).
			Bold(true)

	// Interactive choices, e.g. picking a phone to change
	ChoiceStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(DimGreen)
)

// Theme renders output with the styles above, or as plain text when colour is
// off (non-terminal output, tests, `color: false`).
type Theme struct {
	color bool
}

func NewTheme(color bool) Theme { return Theme{color: color} }

func (t Theme) Color() bool { return t.color }

func (t Theme) render(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Render(text)
}

func (t Theme) Banner(s string) string { return t.render(BannerStyle, s) }
func (t Theme) Label(s string) string  { return t.render(LabelStyle, s) }
func (t Theme) Value(s string) string  { return t.render(ValueStyle, s) }
func (t Theme) Prompt(s string) string { return t.render(PromptStyle, s) }
func (t Theme) Choice(s string) string { return t.render(ChoiceStyle, s) }
func (t Theme) Error(s string) string  { return t.render(ErrorStyle, s) }
func (t Theme) Help(s string) string   { return t.render(HelpStyle, s) }
