package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" curvescope ─ software-rendered scene viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Canvas
	canvas := lipgloss.NewStyle().Width(m.mapW).Height(m.mapH).Render(m.canvas)

	// Footer: status and frame diagnostics, then help
	status := dimStyle.Render(" " + m.status + " ")
	if m.err != nil {
		status = errStyle.Render(" " + m.status + " ")
	}
	diag := fmt.Sprintf("  objects=%d drawn=%d culled=%d  scale=%.2f  frame %d  frametime: %dms  ",
		m.state.Store.Len(), m.stats.Drawn, m.stats.Culled, m.state.Camera.Scale, m.frames, m.frameTime.Milliseconds())
	if m.hovering {
		p := m.state.Pointer()
		diag = fmt.Sprintf("  x=%.3f y=%.3f", p.X, p.Y) + diag
	}
	diag = dimStyle.Render(diag)
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(diag))
	right := lipgloss.Place(spacerW+lipgloss.Width(diag), 1, lipgloss.Right, lipgloss.Center, diag)
	line := lipgloss.JoinHorizontal(lipgloss.Bottom, status, right)

	help := ""
	if m.helpVisible {
		help = " " + m.help.View(m.keys)
	}
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).Render(line),
		lipgloss.NewStyle().Width(contentWidth).Render(help),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
