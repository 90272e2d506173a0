package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chainiz/internal/numfmt"
	"github.com/abhisek/chainiz/internal/session"
	"github.com/abhisek/chainiz/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.phase {
	case phaseQuitConfirm:
		content = m.renderQuitConfirm()
	case phaseFeedback:
		content = m.renderFeedback()
	case phaseSummary:
		content = m.renderSummary()
	default:
		content = m.renderQuestion()
	}

	v.SetContent(lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content))
	return v
}

func (m Model) renderQuestion() string {
	chain := m.ws.Chains[m.chainIdx]
	p := m.current()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"Chain %d/%d — Problem %d/%d",
		m.chainIdx+1, len(m.ws.Chains), m.probIdx+1, len(chain.Problems))))
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Render(fmt.Sprintf(
		"%s %s %s = ?",
		numfmt.FormatNumber(p.StartValue), p.Op.Symbol(), numfmt.FormatNumber(p.Operand))))
	b.WriteString("\n\n")

	b.WriteString("Answer: " + m.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Enter submit · Esc quit"))

	return theme.Card.Render(b.String())
}

func (m Model) renderFeedback() string {
	p := m.ws.Chains[m.chainIdx].Problems[m.probIdx]

	var b strings.Builder
	if m.last.Correct {
		b.WriteString(theme.Correct.Render("✓ Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite."))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf(
			"%s %s %s = %s",
			numfmt.FormatNumber(p.StartValue), p.Op.Symbol(),
			numfmt.FormatNumber(p.Operand), numfmt.FormatNumber(p.Result))))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("any key continue"))

	return theme.Card.Render(b.String())
}

func (m Model) renderQuitConfirm() string {
	var b strings.Builder
	b.WriteString(theme.Body.Render("End this practice run?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Y end · N keep going"))
	return theme.Card.Render(b.String())
}

func (m Model) renderSummary() string {
	score := session.ScoreWorksheet(m.ws, m.answers)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Practice complete"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"%d correct · %d incorrect · %d total", score.Correct, score.Incorrect, score.Total)))
	b.WriteString("\n")
	b.WriteString(theme.Highlight.Render(fmt.Sprintf("%d%%", score.Percentage)))
	b.WriteString("\n")

	for i, c := range m.ws.Chains {
		cs := session.ScoreChain(c, m.answers)
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
			"Chain %d: %d/%d", i+1, cs.Correct, cs.Total)))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("any key to exit"))

	return theme.Card.Render(b.String())
}
