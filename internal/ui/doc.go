// Package ui provides theme and color support for billionfib's terminal
// output: ANSI themes for inline text, lipgloss styles for reports, and
// terminal detection.
package ui
