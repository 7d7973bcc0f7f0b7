package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"

	"pike/runner"
)

// Colors for status output
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorBold   = color.New(color.Bold)
)

// Table styles using ANSI colors 0–15 (follow terminal theme)
var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(12))
	tableNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6))
	tableMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
)

// printError reports a failure in red on stderr
func printError(err error) {
	colorRed.Fprintf(os.Stderr, "Error: %v\n", err)
}

// displayMarkdown renders a text answer, falling back to plain output when
// stdout is not a terminal or rendering fails
func displayMarkdown(body string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(body)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(renderWidth()),
	)
	if err != nil {
		fmt.Println(body)
		return nil
	}
	out, err := renderer.Render(body)
	if err != nil {
		fmt.Println(body)
		return nil
	}
	fmt.Print(out)
	return nil
}

// renderWidth returns the wrap width for markdown output
func renderWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < 100 {
		return w
	}
	return 100
}

// confirm asks a yes/no question on the terminal, defaulting to no
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// reportResult prints the execution status line, if there is anything worth
// saying. Output itself was already streamed live by the runner.
func reportResult(result *runner.Result) {
	if result == nil {
		return
	}
	if result.Interrupted {
		colorYellow.Println("Interrupted")
		return
	}
	if result.ExitCode != 0 {
		colorRed.Printf("Exit status %d\n", result.ExitCode)
	}
}
