package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for headings and key/value reports.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// CurrentStyles returns styles matching the active theme. With colors
// disabled every style renders plain text.
func CurrentStyles() Styles {
	switch GetCurrentTheme().Name {
	case NoColorTheme.Name:
		plain := lipgloss.NewStyle()
		return Styles{Title: plain, Section: plain, Label: plain, Value: plain, Muted: plain, Success: plain, Error: plain}
	case LightTheme.Name:
		return newStyles("27", "240", "28", "124")
	}
	return newStyles("39", "245", "82", "196")
}

func newStyles(primary, muted, success, failure lipgloss.Color) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		Section: lipgloss.NewStyle().Bold(true).Underline(true),
		Label:   lipgloss.NewStyle().Foreground(muted).Width(22),
		Value:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Success: lipgloss.NewStyle().Foreground(success),
		Error:   lipgloss.NewStyle().Foreground(failure),
	}
}

// KeyValue renders one aligned "label  value" report line.
func (s Styles) KeyValue(label, value string) string {
	return s.Label.Render(label+":") + " " + s.Value.Render(value)
}
