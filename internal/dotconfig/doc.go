// Package dotconfig reads option schemas and reads and writes saved values.
//
// Saved values live in a .config file of NAME="value" lines preceded by a
// comment header:
//
//	# PigeonLinux Installation Configuration
//	# Generated by menuconfig
//
//	TARGET_DISK="/dev/sda"
//	BOOT_ENABLE="n"
//
// Loading is lenient: a missing or unreadable schema or .config never stops
// the editor, the caller gets a usable store plus an error describing what
// went wrong. Saving is strict: any failure is returned as a *SaveError so the
// editor can tell the user the file was not written.
package dotconfig
