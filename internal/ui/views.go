package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/pigeonlinux/menuconfig/internal/option"
)

// Dialog titles
const (
	DiskDialogTitle   = "SELECT DISK"
	ChoiceDialogTitle = "SELECT VALUE"
	HelpDialogTitle   = "HELP"
	EditDialogTitle   = "EDIT VALUE"
)

// Messages
const (
	SavedMessage      = "Configuration saved!"
	SaveFailedMessage = "Configuration NOT saved!"
	ContinueHint      = "Press any key to continue..."
	NoDiskTarget      = "No disk option to assign; browsing only"
)

// DrawListHeader starts a list dialog on a cleared screen: the boxed title,
// an optional subtitle and the key hint.
func (r *Renderer) DrawListHeader(c Canvas, title, subtitle string) {
	c.ClearScreen()
	c.BoxedText(title, DialogBoxStyle)
	c.Blank()
	if subtitle != "" {
		c.Line(MutedStyle.Render(subtitle))
	}
	c.Line(HintStyle.Render(r.hint(r.Keys.DialogHelp())))
	c.Rule(RuleGlyph, RuleWidth)
}

// DrawList draws the entries of a list dialog with the entry at cursor
// highlighted. previous is the value returned by the last DrawList call of
// the same dialog (0 on the first call); the old list is overwritten in
// place. It returns the number of lines drawn.
func (r *Renderer) DrawList(c Canvas, items []string, cursor, previous int) int {
	if previous > 0 {
		c.CursorUp(previous)
	}
	for i, item := range items {
		if i == cursor {
			c.Line(HighlightStyle.Render(SelectedMarker + " " + item))
		} else {
			c.Line("  " + item)
		}
	}
	c.Blank()
	return len(items) + 1
}

// DrawHelp draws the help screen listing every key binding.
func (r *Renderer) DrawHelp(c Canvas) {
	c.ClearScreen()
	c.BoxedText(HelpDialogTitle, DialogBoxStyle)
	c.Blank()

	sections := []string{"Navigation:", "Actions:"}
	for i, group := range r.Keys.FullHelp() {
		if i > 0 {
			c.Blank()
		}
		if i < len(sections) {
			c.Line(SectionStyle.Render(sections[i]))
		}
		for _, b := range group {
			c.Line(fmt.Sprintf("  %-10s - %s", b.Help().Key, b.Help().Desc))
		}
	}

	c.Rule(RuleGlyph, RuleWidth)
	c.Line(HintStyle.Render(ContinueHint))
}

// DrawSaved draws the save confirmation.
func (r *Renderer) DrawSaved(c Canvas, path string) {
	c.ClearScreen()
	c.CenterText(SuccessTitleStyle.Render(SavedMessage))
	c.CenterText(MutedStyle.Render(path))
	c.Blank()
	c.CenterText(HintStyle.Render(ContinueHint))
}

// DrawSaveFailed draws the save failure screen with the cause.
func (r *Renderer) DrawSaveFailed(c Canvas, err error) {
	c.ClearScreen()
	c.CenterText(ErrorTitleStyle.Render(SaveFailedMessage))
	c.CenterText(ErrorMessageStyle.Render(err.Error()))
	c.Blank()
	c.CenterText(HintStyle.Render(ContinueHint))
}

// DrawEdit draws the text editor for a string option. It repaints from
// the top of the screen, so the caller clears the screen only once.
func (r *Renderer) DrawEdit(c Canvas, opt option.Option, buffer string) {
	c.Home()
	c.BoxedText(EditDialogTitle, DialogBoxStyle)
	c.Blank()
	c.Line(SectionStyle.Render(opt.Name) + "  " + DescriptionStyle.Render(opt.Description))
	c.Blank()
	c.Line("  " + ValueStyle.Render(buffer) + EditCursor)
	c.Blank()
	c.Line(HintStyle.Render(r.hint(r.Keys.EditHelp())))
}

// hint renders bindings as "Key desc, Key desc"
func (r *Renderer) hint(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+strings.ToLower(b.Help().Desc))
	}
	return "Use " + strings.Join(parts, ", ")
}
