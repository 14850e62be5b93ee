package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	win    lipgloss.Style
	loss   lipgloss.Style
	draw   lipgloss.Style
	detail lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		loss: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		detail: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
