// Package terminal owns the terminal for the lifetime of an editing session.
//
// A Surface puts the input side into raw mode (no line buffering, no echo),
// answers geometry queries and offers the small set of drawing primitives the
// editor needs to repaint in place: cursor home, clear to end of line, cursor
// up and centered or boxed text.
//
// Raw mode also turns off output post-processing, so every line written by
// the Surface ends with CRLF.
//
// # Cleanup
//
// Leaving raw mode active corrupts the user's shell, so restoring the
// terminal is tied to a Guard:
//
//	surface := terminal.New(os.Stdin, os.Stdout)
//	if err := surface.EnterRaw(); err != nil {
//	    return err
//	}
//	guard := terminal.NewGuard(surface.Restore)
//	defer guard.Release()
//	defer guard.Recover()
//
// The guard restores the terminal exactly once, on whichever comes first:
// a normal Release, a panic or SIGINT/SIGTERM/SIGHUP/SIGQUIT.
//
// # Drawing
//
// Drawing is fire-and-forget. Write errors are ignored; a terminal that
// stops accepting output ends the session at the next read anyway.
package terminal
