// Package option holds the in-memory model of a menuconfig session.
//
// An option set is an ordered sequence of typed options. The order is the
// display order and the save order; names are unique. A Store is populated
// once at startup from a schema definition and a saved-values overlay and is
// then mutated only by the editor loop.
//
// # Schema Format
//
// One option per line, pipe delimited:
//
//	NAME|DEFAULT_VALUE|DESCRIPTION|TYPE[|CHOICE1,CHOICE2,...]
//
// TYPE is one of string, bool, choice or disk. Unknown types are read as
// string. Comment lines (starting with #), blank lines and lines with fewer
// than four fields are skipped.
//
// # Saved Values
//
// Saved values use shell-style assignments, with or without quotes:
//
//	BOOT_ENABLE="n"
//	TARGET_DISK=/dev/nvme0n1
//
// # Capacity
//
// A Store holds at most MaxOptions options and every option at most
// MaxChoices choices. Parsing truncates at those bounds and reports how much
// was dropped in ParseStats; Add returns ErrTooManyOptions once the store is
// full.
package option
