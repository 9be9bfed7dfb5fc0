package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // minor update
	colorRed    = lipgloss.Color("167") // major update
	colorGray   = lipgloss.Color("245") // secondary text
)

var (
	// styleMinor highlights packages with a minor update available.
	styleMinor = lipgloss.NewStyle().Foreground(colorYellow)

	// styleMajor highlights packages with a major update available.
	styleMajor = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	// styleDim for secondary text like descriptions.
	styleDim = lipgloss.NewStyle().Foreground(colorGray)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printInfo prints an informational message.
func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints indented secondary detail under a message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}
