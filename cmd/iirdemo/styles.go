package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("#1E90FF")
	mutedColor  = lipgloss.Color("#888888")
	errorColor  = lipgloss.Color("#A40000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %s\n", keyStyle.Render(key+":"), valueStyle.Render(fmt.Sprint(value)))
}

func printError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), message)
}
