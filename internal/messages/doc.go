// Package messages provides the localized prose printed to the terminal:
// the message catalog and a coloured printer for status lines.
package messages
