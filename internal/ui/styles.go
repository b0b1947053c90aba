package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#5F87FF") // Blue - banner, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - selection, enabled flags
	ErrorColor   = lipgloss.Color("#FF5555") // Red - disabled flags, failures
	WarningColor = lipgloss.Color("#FFD75F") // Yellow - descriptions, hints
	AccentColor  = lipgloss.Color("#5FD7FF") // Cyan - values, dialog titles
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	RowWidth     = 60 // Width the option rows are centered as
	NameWidth    = 20 // Column width of option names
	FooterMargin = 2  // Rows kept free at the bottom of the screen
	RuleWidth    = 40 // Separator length in dialogs
)

// Shared styles
var (
	// TitleBoxStyle frames the banner
	TitleBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(PrimaryColor).
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 8)

	// DialogBoxStyle frames dialog titles
	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Foreground(AccentColor).
			Bold(true).
			Padding(0, 1)

	// MarkerStyle is the selection marker
	MarkerStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true).
			Reverse(true)

	// CheckedStyle is an enabled flag
	CheckedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// UncheckedStyle is a disabled flag
	UncheckedStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// ValueStyle is a literal value
	ValueStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// DescriptionStyle is the label after the value
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	// HintStyle is for "Press any key" style lines
	HintStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// SectionStyle is for headings inside dialogs
	SectionStyle = lipgloss.NewStyle().
			Bold(true)

	// HighlightStyle is the highlighted entry of a list dialog
	HighlightStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Reverse(true)

	// SuccessTitleStyle is for the saved message
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the save failure message
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error details
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// MutedStyle is for secondary information
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Markers
const (
	CheckedMarker   = "[✓]"
	UncheckedMarker = "[ ]"
	SelectedMarker  = ">"
	EditCursor      = "_"
	RuleGlyph       = '─'
)

// helpStyles replaces the bubbles defaults, which use adaptive colors. An
// adaptive color makes lipgloss ask the terminal for its background, and the
// answer would arrive on the same input the editor reads keys from.
func helpStyles() help.Styles {
	return help.Styles{
		Ellipsis:       MutedStyle,
		ShortKey:       lipgloss.NewStyle().Foreground(AccentColor),
		ShortDesc:      MutedStyle,
		ShortSeparator: MutedStyle,
		FullKey:        lipgloss.NewStyle().Foreground(AccentColor),
		FullDesc:       MutedStyle,
		FullSeparator:  MutedStyle,
	}
}
