// Package menu runs the interactive editing loop.
//
// A Controller reads keys from the terminal input, applies them to an
// option.Store and repaints through a ui.Renderer. Besides the main option
// list it drives the disk picker, the choice picker, the text editor for
// string options, the help screen and the save result screens.
package menu
