// Package report renders a scored transcript as a human-readable summary.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/lox/pigeontally/internal/tally"
)

const title = "GamePigeon Results Summary"

// Options control rendering.
type Options struct {
	Color   bool // style output when the writer is a color terminal
	Verbose bool // include lines scanned and elapsed time
}

// Renderer writes summaries to a writer.
type Renderer struct {
	w       io.Writer
	styles  styles
	verbose bool
}

// New creates a renderer for w. Without Color, or when w is not a color
// terminal, output is plain text.
func New(w io.Writer, opts Options) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !opts.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		w:       w,
		styles:  newStyles(r),
		verbose: opts.Verbose,
	}
}

// Render writes the summary for res.
func (r *Renderer) Render(res tally.Result) error {
	var b strings.Builder

	fmt.Fprintln(&b, r.styles.title.Render(title))
	r.row(&b, "Total games played:", count(res.Total()))
	r.row(&b, "Wins:  ", r.styles.win.Render(count(res.Wins)))
	r.row(&b, "Losses:", r.styles.loss.Render(count(res.Losses)))
	r.row(&b, "Draws: ", r.styles.draw.Render(count(res.Draws)))
	r.row(&b, "Win percentage:", fmt.Sprintf("%.1f%%", res.WinRate()))

	if r.verbose {
		fmt.Fprintln(&b, r.styles.detail.Render(
			fmt.Sprintf("Scanned %s lines in %s", count(res.Lines), res.Elapsed.Round(time.Microsecond))))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// row writes a label and value. Padding stays outside the styled label.
func (r *Renderer) row(b *strings.Builder, label, value string) {
	name := strings.TrimRight(label, " ")
	pad := strings.Repeat(" ", len(label)-len(name)+1)
	fmt.Fprintf(b, "%s%s%s\n", r.styles.label.Render(name), pad, value)
}

func count(n int) string {
	return humanize.Comma(int64(n))
}
