package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chainiz/internal/ui/theme"
)

// IntInput wraps bubbles/textinput for signed-integer entry: digits
// anywhere, a single leading minus, nothing else.
type IntInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

// NewIntInput creates a styled integer input.
func NewIntInput(placeholder string, maxDigits int) IntInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	return IntInput{Model: ti}
}

// Init returns the initial command.
func (t IntInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages, filtering out anything that would make the
// value a non-integer.
func (t IntInput) Update(msg tea.Msg) (IntInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 {
			ch := key[0]
			digit := ch >= '0' && ch <= '9'
			leadingMinus := ch == '-' && t.Model.Value() == ""
			if !digit && !leadingMinus {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, with a grading mark once submitted.
func (t IntInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input text.
func (t IntInput) Value() string {
	return t.Model.Value()
}

// IntValue returns the input parsed as an integer.
func (t IntInput) IntValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit marks the input as graded.
func (t *IntInput) Submit(correct bool) {
	t.submitted = true
	t.correct = correct
}

// Reset clears the value and grading mark for the next problem.
func (t *IntInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.correct = false
}
