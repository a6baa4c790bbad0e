package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCode        = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconError   = "✗"
	iconWarning = "!"
)

// =============================================================================
// Status Output
// =============================================================================

// PrintError writes err to w with an error icon. Structured errors show their
// message followed by the dimmed code.
func PrintError(w io.Writer, err error) {
	msg := errors.UserMessage(err)
	if code := errors.GetCode(err); code != "" {
		var e *errors.Error
		if stderrors.As(err, &e) && e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		msg += " " + styleCode.Render("["+string(code)+"]")
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning writes a warning message to w.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}
