package theme

import "github.com/charmbracelet/lipgloss"

const brandGreen = lipgloss.Color("#42bc5c")

// Styles describes reusable Lip Gloss styles shared across the header.
type Styles struct {
	Bar                  *lipgloss.Style
	Brand                *lipgloss.Style
	Tab                  *lipgloss.Style
	ActiveTab            *lipgloss.Style
	Indicator            *lipgloss.Style
	Avatar               *lipgloss.Style
	SearchBox            *lipgloss.Style
	SearchPrompt         *lipgloss.Style
	Query                *lipgloss.Style
	Placeholder          *lipgloss.Style
	Cursor               *lipgloss.Style
	Result               *lipgloss.Style
	ResultAvatar         *lipgloss.Style
	SelectedResult       *lipgloss.Style
	Empty                *lipgloss.Style
	Dropdown             *lipgloss.Style
	DropdownHeader       *lipgloss.Style
	SelectedDropdownItem *lipgloss.Style
	Body                 *lipgloss.Style
	Loading              *lipgloss.Style
	Error                *lipgloss.Style
	Info                 *lipgloss.Style
	Footer               *lipgloss.Style
}

var defaultStyles = Styles{
	Bar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Brand: ptr(
		lipgloss.NewStyle().Foreground(brandGreen).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(brandGreen).Bold(true).Underline(true),
	),
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Avatar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(brandGreen).Bold(true),
	),
	SearchBox: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(brandGreen).Background(lipgloss.Color("236")).Bold(true),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("236")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(brandGreen),
	),
	Result: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("235")),
	),
	ResultAvatar: ptr(
		lipgloss.NewStyle().Foreground(brandGreen).Background(lipgloss.Color("235")).Bold(true),
	),
	SelectedResult: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Background(lipgloss.Color("235")).Italic(true),
	),
	Dropdown: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("235")),
	),
	DropdownHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("235")).Bold(true),
	),
	SelectedDropdownItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(brandGreen).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(brandGreen),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
