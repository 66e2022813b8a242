// Package ui centralizes terminal color themes for the CLI and the lipgloss
// palette for the TUI dashboard. It honors the NO_COLOR convention.
package ui
