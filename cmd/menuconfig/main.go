// Menuconfig is a full-screen terminal editor for installer settings.
//
// It reads option definitions from a schema file, overlays the values saved
// by an earlier session and lets the user change them from the keyboard.
// Saving writes every option to the configuration file as NAME="value"
// lines for the installer scripts to source.
//
// Usage:
//
//	menuconfig [schema-file]
//
// The schema file defaults to menu.conf in the current directory.
// Press H inside the editor for the key reference.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pigeonlinux/menuconfig/internal/menu"
	"github.com/pigeonlinux/menuconfig/internal/terminal"
	"github.com/pigeonlinux/menuconfig/internal/version"
)

func main() {
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, menu.ErrInterrupted):
		os.Exit(terminal.ExitCode(os.Interrupt))
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "menuconfig [schema-file]",
	Short: "Interactive installer configuration editor",
	Long: `A full-screen terminal editor for installer configuration.

Options are defined in a schema file with one option per line:

  NAME|default|description|type[|choice1,choice2,...]

where type is string, bool, choice or disk. Values saved by an earlier
session are read from the configuration file (.config by default) and
written back to it when you press S.`,
	Example: `  # Edit the options defined in ./menu.conf
  menuconfig

  # Use another schema
  menuconfig /usr/share/installer/menu.conf`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
