// Package ui draws the menuconfig screens.
//
// Everything here is a pure function of editor state: the Renderer paints
// the main option list and the dialog screens onto a Canvas, which in
// production is a *terminal.Surface. Nothing in this package reads input.
//
// # Main Screen
//
// The main screen repaints in place on every key press:
//
//	╔═══════════════════════════════════╗
//	║     PIGEONLINUX CONFIGURATION     ║
//	╚═══════════════════════════════════╝
//
//	> TARGET_DISK          </dev/sda>  Target disk device
//	  BOOT_ENABLE          [✓]  Enable boot partition
//
//	↑↓ Navigate • Enter Edit • Y/N Toggle • S Save • Q Quit • H Help • D Disks
//
// Every line is cleared before it is written and the screen is never fully
// erased between frames, so repeated draws do not flicker. Drawing the same
// state twice produces the same bytes.
//
// # Key Map
//
// Keys holds the bubbles key bindings shared by the controller (for
// matching) and the renderer (for the footer and the help screen).
package ui
