// Package ui provides semantic text formatting for the passdir CLI.
//
// Formatters pair a color with a plain-text fallback decoration so that
// output stays readable when colors are disabled via NO_COLOR or a dumb
// terminal. Commands compose their final messages from these formatters
// rather than hard-coding escape sequences.
package ui
