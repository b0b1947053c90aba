package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/pigeonlinux/menuconfig/internal/option"
)

// Canvas is the drawing surface the renderer paints on.
// *terminal.Surface implements it.
type Canvas interface {
	Size() (width, height int)
	Pad(contentWidth int) int
	Home()
	ClearScreen()
	Line(text string)
	Blank()
	CenterText(text string)
	CenterBlock(block string) int
	BoxedText(text string, style lipgloss.Style) int
	Rule(ch rune, n int)
	CursorUp(n int)
}

// DefaultTitle is the banner text when none is configured
const DefaultTitle = "PIGEONLINUX CONFIGURATION"

// Renderer draws the editor screens.
type Renderer struct {
	Title string
	Keys  KeyMap

	help help.Model
}

// NewRenderer creates a renderer with the given banner title
func NewRenderer(title string) *Renderer {
	if title == "" {
		title = DefaultTitle
	}
	h := help.New()
	h.Styles = helpStyles()
	return &Renderer{
		Title: title,
		Keys:  Keys,
		help:  h,
	}
}

// Draw repaints the main screen: banner, one row per option, blank filler,
// footer. The cursor is left on the row of the selected option.
func (r *Renderer) Draw(c Canvas, store *option.Store, selection int) {
	width, height := c.Size()

	c.Home()
	rows := c.BoxedText(r.Title, TitleBoxStyle)
	c.Blank()
	rows++
	headerRows := rows

	indent := strings.Repeat(" ", c.Pad(RowWidth))
	for i, opt := range store.All() {
		c.Line(indent + OptionRow(opt, i == selection))
		rows++
	}

	for ; rows < height-FooterMargin; rows++ {
		c.Blank()
	}

	c.CenterText(r.footer(width))
	rows++

	// The cursor is now on the line below the footer
	if store.Len() > 0 {
		c.CursorUp(rows - (headerRows + selection))
	}
}

// footer renders the short help, truncated to the terminal width
func (r *Renderer) footer(width int) string {
	h := r.help
	h.Width = width
	return h.ShortHelpView(r.Keys.ShortHelp())
}

// OptionRow renders one option line without indentation.
func OptionRow(opt option.Option, selected bool) string {
	var b strings.Builder

	if selected {
		b.WriteString(MarkerStyle.Render(SelectedMarker) + " ")
	} else {
		b.WriteString("  ")
	}

	fmt.Fprintf(&b, "%-*s ", NameWidth, opt.Name)
	b.WriteString(ValueCell(opt))
	b.WriteString("  " + DescriptionStyle.Render(opt.Description))

	return b.String()
}

// ValueCell renders an option's value: a checkbox for flags, the literal in
// angle brackets otherwise.
func ValueCell(opt option.Option) string {
	if opt.IsBool() {
		if opt.Enabled() {
			return CheckedStyle.Render(CheckedMarker)
		}
		return UncheckedStyle.Render(UncheckedMarker)
	}
	return ValueStyle.Render("<" + opt.Value + ">")
}
