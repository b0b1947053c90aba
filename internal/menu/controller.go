package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"

	"github.com/pigeonlinux/menuconfig/internal/disks"
	"github.com/pigeonlinux/menuconfig/internal/dotconfig"
	"github.com/pigeonlinux/menuconfig/internal/logging"
	"github.com/pigeonlinux/menuconfig/internal/option"
	"github.com/pigeonlinux/menuconfig/internal/ui"
)

// State is the screen the controller is on
type State string

const (
	StateMain       State = "main"
	StateDisk       State = "disk"
	StateChoice     State = "choice"
	StateEdit       State = "edit"
	StateHelp       State = "help"
	StateSaved      State = "saved"
	StateTerminated State = "terminated"
)

// DefaultConfigFile is the saved values file used when Options.ConfigFile is empty
const DefaultConfigFile = ".config"

// ErrInterrupted is returned by Run when the user presses Ctrl-C or Ctrl-D
var ErrInterrupted = errors.New("interrupted")

// errQuit unwinds the loop when the user quits
var errQuit = errors.New("quit")

// Options configures a Controller
type Options struct {
	ConfigFile string         // Saved values file (default .config)
	Header     []string       // Comment lines written above saved values (default dotconfig.DefaultHeader)
	Title      string         // Banner text (default ui.DefaultTitle)
	Disks      disks.Provider // Disk picker entries (default a /dev scan)
}

// Controller is the editor state machine.
type Controller struct {
	store    *option.Store
	canvas   ui.Canvas
	input    *Decoder
	renderer *ui.Renderer
	keys     ui.KeyMap
	opts     Options

	state     State
	selection int
}

// New creates a controller editing store, drawing on canvas and reading
// keys from in.
func New(store *option.Store, canvas ui.Canvas, in io.Reader, opts Options) *Controller {
	if opts.ConfigFile == "" {
		opts.ConfigFile = DefaultConfigFile
	}
	if opts.Header == nil {
		opts.Header = dotconfig.DefaultHeader
	}
	if opts.Disks == nil {
		opts.Disks = disks.Scanner{}
	}

	renderer := ui.NewRenderer(opts.Title)
	return &Controller{
		store:    store,
		canvas:   canvas,
		input:    NewDecoder(in),
		renderer: renderer,
		keys:     renderer.Keys,
		opts:     opts,
		state:    StateMain,
	}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Selection returns the index of the highlighted option
func (c *Controller) Selection() int {
	return c.selection
}

// Run draws the main screen and processes keys until the user quits.
// It returns nil on quit, ErrInterrupted on Ctrl-C/Ctrl-D and the wrapped
// read error when the input fails or ends.
func (c *Controller) Run() error {
	c.canvas.ClearScreen()

	for {
		c.renderer.Draw(c.canvas, c.store, c.selection)

		k, err := c.input.Next()
		if err == nil {
			err = c.handleMain(k)
		}
		if err != nil {
			c.setState(StateTerminated)
			switch {
			case errors.Is(err, errQuit):
				return nil
			case errors.Is(err, ErrInterrupted):
				return err
			default:
				return fmt.Errorf("failed to read input: %w", err)
			}
		}
	}
}

// handleMain applies one key on the main screen
func (c *Controller) handleMain(k Key) error {
	if k.Code == KeyInterrupt {
		return ErrInterrupted
	}

	switch {
	case key.Matches(k, c.keys.Up):
		if c.selection > 0 {
			c.selection--
		}
	case key.Matches(k, c.keys.Down):
		if c.selection < c.store.Len()-1 {
			c.selection++
		}
	case key.Matches(k, c.keys.Enter):
		return c.edit()
	case key.Matches(k, c.keys.Yes):
		c.setFlag(option.Yes)
	case key.Matches(k, c.keys.No):
		c.setFlag(option.No)
	case key.Matches(k, c.keys.Toggle):
		c.store.Toggle(c.selection)
	case key.Matches(k, c.keys.Save):
		return c.save()
	case key.Matches(k, c.keys.Disks):
		return c.diskDialog()
	case key.Matches(k, c.keys.Help):
		return c.helpDialog()
	case key.Matches(k, c.keys.Quit):
		return errQuit
	}
	return nil
}

// current returns the highlighted option; false when the store is empty
func (c *Controller) current() (option.Option, bool) {
	if c.selection < 0 || c.selection >= c.store.Len() {
		return option.Option{}, false
	}
	return c.store.At(c.selection), true
}

// setFlag sets the highlighted option to v if it is a bool
func (c *Controller) setFlag(v string) {
	if opt, ok := c.current(); ok && opt.IsBool() {
		c.store.Set(c.selection, v)
	}
}

// edit opens the editor matching the highlighted option's kind
func (c *Controller) edit() error {
	opt, ok := c.current()
	if !ok {
		return nil
	}

	switch opt.Kind {
	case option.KindDisk:
		return c.diskDialog()
	case option.KindChoice:
		return c.choiceDialog(c.selection)
	case option.KindString:
		return c.editDialog(c.selection)
	}
	return nil
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	logging.LogTransition(string(c.state), string(s))
	c.state = s
}

// leave closes a dialog and returns to the main screen
func (c *Controller) leave() {
	c.canvas.ClearScreen()
	c.setState(StateMain)
}

// anyKey waits for one key. Ctrl-C still interrupts.
func (c *Controller) anyKey() error {
	k, err := c.input.Next()
	if err != nil {
		return err
	}
	if k.Code == KeyInterrupt {
		return ErrInterrupted
	}
	return nil
}
