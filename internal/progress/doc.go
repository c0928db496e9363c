// Package progress renders transfer progress for the terminal: human readable
// sizes, the single overwritten status line, and optional mpb progress bars.
package progress
