// Package tui is the interactive practice surface: one Bubble Tea model
// that walks the learner through a generated worksheet chain by chain.
package tui

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chainiz/internal/chaingen"
	"github.com/abhisek/chainiz/internal/session"
	"github.com/abhisek/chainiz/internal/ui/components"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseQuitConfirm
	phaseSummary
)

// Model drives a practice run over one worksheet. The worksheet is
// authoritative and never mutated; all answer state lives in the
// copy-on-write AnswerSet.
type Model struct {
	ws      chaingen.Worksheet
	answers session.AnswerSet

	chainIdx int
	probIdx  int

	input components.IntInput
	phase phase
	last  session.Answer

	width  int
	height int
}

// NewModel creates a practice model for a worksheet. An empty worksheet
// goes straight to the summary.
func NewModel(ws chaingen.Worksheet) Model {
	m := Model{
		ws:      ws,
		answers: session.AnswerSet{},
		input:   components.NewIntInput("answer", 8),
	}
	if len(ws.Chains) == 0 {
		m.phase = phaseSummary
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.phase {
		case phaseSummary:
			return m, tea.Quit

		case phaseQuitConfirm:
			switch msg.String() {
			case "y", "Y":
				m.phase = phaseSummary
			case "n", "N", "esc":
				m.phase = phaseQuestion
			}
			return m, nil

		case phaseFeedback:
			if msg.String() == "esc" {
				m.phase = phaseQuitConfirm
				return m, nil
			}
			return m.advance(), nil

		case phaseQuestion:
			switch msg.String() {
			case "esc":
				m.phase = phaseQuitConfirm
				return m, nil
			case "enter":
				return m.submit(), nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit grades the current input and moves to feedback. An unparseable
// (empty) input is ignored rather than graded.
func (m Model) submit() Model {
	value, err := m.input.IntValue()
	if err != nil {
		return m
	}

	p := m.current()
	answers, a, err := session.Record(m.ws, m.answers, p.ID, value, time.Now())
	if err != nil {
		return m
	}
	m.answers = answers
	m.last = a
	m.input.Submit(a.Correct)
	m.phase = phaseFeedback
	return m
}

// advance steps to the next problem, crossing into the next chain or the
// summary when the current one runs out.
func (m Model) advance() Model {
	m.input.Reset()
	m.probIdx++
	if m.probIdx >= len(m.ws.Chains[m.chainIdx].Problems) {
		m.chainIdx++
		m.probIdx = 0
	}
	if m.chainIdx >= len(m.ws.Chains) {
		m.phase = phaseSummary
		return m
	}
	m.phase = phaseQuestion
	return m
}

func (m Model) current() chaingen.Problem {
	return m.ws.Chains[m.chainIdx].Problems[m.probIdx]
}

// Run starts the practice program and blocks until the learner quits.
func Run(ws chaingen.Worksheet) error {
	p := tea.NewProgram(NewModel(ws))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
