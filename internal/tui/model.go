// Package tui implements the interactive calculator view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/styles"
)

const (
	maxHistory = 10
	inputWidth = 14
)

type focus int

const (
	focusA focus = iota
	focusOp
	focusB
	focusCount
)

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Left  key.Binding
	Right key.Binding
	Eval  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Right, k.Eval, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev op")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next op")),
		Eval:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// entry is one evaluated expression.
type entry struct {
	a      string
	op     calculator.Op
	b      string
	result string
}

func (e entry) String() string {
	return fmt.Sprintf("%s %s %s = %s", e.a, e.op.Symbol(), e.b, e.result)
}

// Model is the bubbletea model for the calculator view.
type Model struct {
	inputA    textinput.Model
	inputB    textinput.Model
	op        calculator.Op
	focus     focus
	history   []entry
	err       string
	precision int
	width     int
	keys      keyMap
	help      help.Model
	quitting  bool
}

// New returns a model with operand A focused. precision controls how float
// results are rendered; -1 means shortest form.
func New(precision int) Model {
	a := newInput("a")
	b := newInput("b")
	a.Focus()

	return Model{
		inputA:    a,
		inputB:    b,
		op:        calculator.OpAdd,
		precision: precision,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = inputWidth
	ti.CharLimit = 32
	return ti
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Eval):
			m.evaluate()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		}

		if m.focus == focusOp {
			switch {
			case key.Matches(msg, m.keys.Left):
				m.op = m.op.Prev()
			case key.Matches(msg, m.keys.Right):
				m.op = m.op.Next()
			default:
				if op, err := calculator.ParseOp(msg.String()); err == nil {
					m.op = op
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusA:
		m.inputA, cmd = m.inputA.Update(msg)
	case focusB:
		m.inputB, cmd = m.inputB.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.inputA.Blur()
	m.inputB.Blur()
	switch f {
	case focusA:
		return m.inputA.Focus()
	case focusB:
		return m.inputB.Focus()
	}
	return nil
}

// evaluate applies the selected operation. Failures set the error line and
// leave the history untouched.
func (m *Model) evaluate() {
	a, err := calculator.ParseValue(m.inputA.Value())
	if err != nil {
		m.err = "a: " + err.Error()
		return
	}
	b, err := calculator.ParseValue(m.inputB.Value())
	if err != nil {
		m.err = "b: " + err.Error()
		return
	}

	r, err := calculator.Apply(m.op, a, b)
	if err != nil {
		m.err = err.Error()
		return
	}

	m.err = ""
	m.history = append(m.history, entry{a: a.String(), op: m.op, b: b.String(), result: r.Format(m.precision)})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// View renders history, the input row, any error and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.RenderHeader("calc"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(m.fit(styles.RenderExpression(e.a, e.op, e.b, e.result)))
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	opView := " " + m.op.Symbol() + " "
	if m.focus == focusOp {
		opView = styles.SelectedStyle.Render(opView)
	} else {
		opView = styles.OperatorStyle.Render(opView)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, m.inputA.View(), " ", opView, " ", m.inputB.View())
	b.WriteString(m.fit(row))
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(m.fit(styles.RenderError(m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// fit truncates a rendered line to the terminal width once it is known.
func (m Model) fit(s string) string {
	if m.width <= 0 || ansi.StringWidth(s) <= m.width {
		return s
	}
	return ansi.Truncate(s, m.width, "…")
}

// History returns the evaluated expressions, oldest first.
func (m Model) History() []string {
	lines := make([]string, len(m.history))
	for i, e := range m.history {
		lines[i] = e.String()
	}
	return lines
}

// Err returns the current error line, if any.
func (m Model) Err() string {
	return m.err
}

// Op returns the selected operation.
func (m Model) Op() calculator.Op {
	return m.op
}
