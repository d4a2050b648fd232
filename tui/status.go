package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// renderStatusBar produces a full-width inverted status line showing
// current place, health, inventory, and turn count.
func (m Model) renderStatusBar() string {
	if m.engine == nil {
		return styleStatusBar.Width(m.width).Render(" " + m.world.Title)
	}
	e := m.engine

	left := fmt.Sprintf(" %s | Vida: %d/%d", e.Current.Name, e.Player.Health, e.Player.MaxHealth)
	right := fmt.Sprintf("T:%d ", e.TurnCount)

	// Show inventory items if they fit, otherwise just count.
	if names := e.Player.ItemNames(); len(names) > 0 {
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(names, ", "), e.TurnCount)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(names), e.TurnCount)
		}
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

// renderActionsBar lists the context actions (items, characters, exits),
// truncated to one line. The always-available actions are left to /help.
func (m Model) renderActionsBar() string {
	if m.engine == nil {
		return styleActionsBar.Width(m.width).Render(" Digite seu nome (ou 'sair' para encerrar)")
	}

	groups := m.engine.AvailableActions()
	if len(groups) > 0 {
		groups = groups[1:]
	}
	acts := commandsFrom(groups)

	text := " ajuda para comandos"
	if len(acts) > 0 {
		text = " " + strings.Join(acts, " · ")
	}
	if m.width > 1 {
		text = truncate.StringWithTail(text, uint(m.width-1), "…")
	}
	return styleActionsBar.Width(m.width).Render(text)
}
