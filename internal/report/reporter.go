package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Severity is the marker printed in front of a message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityDone
	SeverityWarning
	SeverityError
	SeverityPrompt
)

// String returns the marker text for s.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityDone:
		return "DONE"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityPrompt:
		return "PROMPTS"
	default:
		return "UNKNOWN"
	}
}

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f9fafb")
)

// Reporter writes severity-marked messages to a single writer.
type Reporter struct {
	w      io.Writer
	styles map[Severity]lipgloss.Style
	banner lipgloss.Style
}

// New creates a Reporter writing to w. Colours are used only when w is a
// terminal that supports them.
func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w: w,
		styles: map[Severity]lipgloss.Style{
			SeverityInfo:    r.NewStyle().Foreground(colorYellow),
			SeverityDone:    r.NewStyle().Foreground(colorGreen),
			SeverityWarning: r.NewStyle().Foreground(colorRed),
			SeverityError:   r.NewStyle().Foreground(colorRed).Bold(true),
			SeverityPrompt:  r.NewStyle().Foreground(colorCyan),
		},
		banner: r.NewStyle().Bold(true).Foreground(colorWhite).Background(colorGreen).Padding(0, 4),
	}
}

// Banner prints the title line shown when the generator starts.
func (r *Reporter) Banner(title string) {
	fmt.Fprintln(r.w, r.banner.Render(strings.ToUpper(title)))
}

// Print writes message with the marker for sev, preceded by a blank line.
func (r *Reporter) Print(sev Severity, message string) {
	marker := r.styles[sev].Render(sev.String() + ":")
	fmt.Fprintf(r.w, "\n%s %s\n", marker, message)
}

// Info reports progress.
func (r *Reporter) Info(format string, args ...any) {
	r.Print(SeverityInfo, fmt.Sprintf(format, args...))
}

// Done reports a completed step.
func (r *Reporter) Done(format string, args ...any) {
	r.Print(SeverityDone, fmt.Sprintf(format, args...))
}

// Warn reports a problem the run recovers from.
func (r *Reporter) Warn(format string, args ...any) {
	r.Print(SeverityWarning, fmt.Sprintf(format, args...))
}

// Error reports the failure that ends the run.
func (r *Reporter) Error(format string, args ...any) {
	r.Print(SeverityError, fmt.Sprintf(format, args...))
}

// Prompts announces that user input is about to be requested.
func (r *Reporter) Prompts(format string, args ...any) {
	r.Print(SeverityPrompt, fmt.Sprintf(format, args...))
}
