package menu

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pigeonlinux/menuconfig/internal/dotconfig"
	"github.com/pigeonlinux/menuconfig/internal/option"
	"github.com/pigeonlinux/menuconfig/internal/ui"
)

// MaxValueLength caps the text typed into the string editor
const MaxValueLength = 255

// diskTarget returns the option the disk picker assigns to: the highlighted
// option when it is a disk, else the first disk option, else -1.
func (c *Controller) diskTarget() int {
	if opt, ok := c.current(); ok && opt.Kind == option.KindDisk {
		return c.selection
	}
	return c.store.FirstOfKind(option.KindDisk)
}

// diskDialog lets the user pick a device for the disk target. The device
// list is read once when the dialog opens. Without a target the list can
// only be browsed.
func (c *Controller) diskDialog() error {
	c.setState(StateDisk)
	defer c.leave()

	items := c.opts.Disks.List()

	target := c.diskTarget()
	subtitle := ui.NoDiskTarget
	current := ""
	if target >= 0 {
		opt := c.store.At(target)
		subtitle = opt.Name + ": " + opt.Description
		current = opt.Value
	}

	i, ok, err := c.pick(ui.DiskDialogTitle, subtitle, items, indexOf(items, current))
	if err != nil {
		return err
	}
	if ok && target >= 0 {
		c.store.Set(target, items[i])
	}
	return nil
}

// choiceDialog lets the user pick one of the option's allowed values.
// Options without choices are left alone.
func (c *Controller) choiceDialog(index int) error {
	opt := c.store.At(index)
	if len(opt.Choices) == 0 {
		return nil
	}

	c.setState(StateChoice)
	defer c.leave()

	subtitle := opt.Name + ": " + opt.Description
	i, ok, err := c.pick(ui.ChoiceDialogTitle, subtitle, opt.Choices, indexOf(opt.Choices, opt.Value))
	if err != nil {
		return err
	}
	if ok {
		c.store.Set(index, opt.Choices[i])
	}
	return nil
}

// pick runs a list dialog. It returns the chosen index and true on Enter,
// false when cancelled or when items is empty.
func (c *Controller) pick(title, subtitle string, items []string, cursor int) (int, bool, error) {
	c.renderer.DrawListHeader(c.canvas, title, subtitle)
	drawn := c.renderer.DrawList(c.canvas, items, cursor, 0)

	for {
		k, err := c.input.Next()
		if err != nil {
			return 0, false, err
		}

		switch {
		case k.Code == KeyInterrupt:
			return 0, false, ErrInterrupted
		case key.Matches(k, c.keys.Up):
			if cursor > 0 {
				cursor--
			}
		case key.Matches(k, c.keys.Down):
			if cursor < len(items)-1 {
				cursor++
			}
		case key.Matches(k, c.keys.Enter):
			if len(items) == 0 {
				return 0, false, nil
			}
			return cursor, true, nil
		case key.Matches(k, c.keys.Cancel):
			return 0, false, nil
		default:
			continue
		}

		drawn = c.renderer.DrawList(c.canvas, items, cursor, drawn)
	}
}

// editDialog edits a string option in place. Enter commits, Escape
// discards.
func (c *Controller) editDialog(index int) error {
	opt := c.store.At(index)

	c.setState(StateEdit)
	defer c.leave()

	c.canvas.ClearScreen()
	buffer := []rune(opt.Value)

	for {
		c.renderer.DrawEdit(c.canvas, opt, string(buffer))

		k, err := c.input.Next()
		if err != nil {
			return err
		}

		switch {
		case k.Code == KeyInterrupt:
			return ErrInterrupted
		case key.Matches(k, c.keys.Enter):
			c.store.Set(index, string(buffer))
			return nil
		case key.Matches(k, c.keys.Escape):
			return nil
		case key.Matches(k, c.keys.Backspace):
			if len(buffer) > 0 {
				buffer = buffer[:len(buffer)-1]
			}
		case k.Code == KeyRune && len(buffer) < MaxValueLength:
			buffer = append(buffer, k.Rune)
		case k.Code == KeySpace && len(buffer) < MaxValueLength:
			buffer = append(buffer, ' ')
		}
	}
}

// helpDialog shows the key reference until any key is pressed
func (c *Controller) helpDialog() error {
	c.setState(StateHelp)
	defer c.leave()

	c.renderer.DrawHelp(c.canvas)
	return c.anyKey()
}

// save writes the store and shows the result until any key is pressed.
// A failed save is reported on screen and does not end the session.
func (c *Controller) save() error {
	c.setState(StateSaved)
	defer c.leave()

	if err := dotconfig.Save(c.opts.ConfigFile, c.store, c.opts.Header); err != nil {
		c.renderer.DrawSaveFailed(c.canvas, err)
	} else {
		c.renderer.DrawSaved(c.canvas, c.opts.ConfigFile)
	}
	return c.anyKey()
}

func indexOf(items []string, v string) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}
