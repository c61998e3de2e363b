package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the style definitions for the search dropdown.
type Styles struct {
	Prompt      lipgloss.Style
	Dropdown    lipgloss.Style
	Selected    lipgloss.Style
	Result      lipgloss.Style
	Snippet     lipgloss.Style
	Match       lipgloss.Style
	TypeLabel   lipgloss.Style
	Remote      lipgloss.Style
	Dim         lipgloss.Style
	Error       lipgloss.Style
	SectionHead lipgloss.Style
	Status      lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	return &Styles{
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		Result:      lipgloss.NewStyle(),
		Snippet:     lipgloss.NewStyle().Faint(true),
		Match:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		TypeLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Remote:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		SectionHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}
