// Package fill is the interactive surface for rendering a template: pick a
// template, type a value per placeholder, watch the preview update on every
// keystroke, and copy the result out.
package fill

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

type state int

const (
	statePicking state = iota
	stateFilling
	stateDone
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	previewStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Model drives the fill flow.
type Model struct {
	boundary  *command.Dispatcher
	ctx       context.Context
	state     state
	templates []domain.Template
	cursor    int

	selected  domain.Template
	variables []string
	inputs    []textinput.Model
	focus     int

	status string
	err    error
}

type usageRecordedMsg struct{ err error }

// New builds the model. When templateID is non-empty the picker is skipped.
func New(ctx context.Context, boundary *command.Dispatcher, templates []domain.Template, templateID string) Model {
	m := Model{
		boundary:  boundary,
		ctx:       ctx,
		state:     statePicking,
		templates: templates,
	}
	if templateID != "" {
		for _, t := range templates {
			if t.ID == templateID {
				m.selectTemplate(t)
				break
			}
		}
	}
	return m
}

func (m *Model) selectTemplate(t domain.Template) {
	m.selected = t
	m.variables = prompt.ExtractVariables(t.Content)
	m.inputs = make([]textinput.Model, len(m.variables))
	for i, name := range m.variables {
		ti := textinput.New()
		ti.Placeholder = name
		ti.CharLimit = 500
		ti.Width = 60
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focus = 0
	m.state = stateFilling
}

func (m Model) values() map[string]string {
	values := make(map[string]string, len(m.inputs))
	for i, name := range m.variables {
		values[name] = m.inputs[i].Value()
	}
	return values
}

func (m Model) Init() tea.Cmd {
	if m.state == stateFilling {
		return textinput.Blink
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		switch m.state {
		case statePicking:
			return m.updatePicking(msg)
		case stateFilling:
			return m.updateFilling(msg)
		case stateDone:
			return m, tea.Quit
		}

	case usageRecordedMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updatePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.templates)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.templates) > 0 {
			m.selectTemplate(m.templates[m.cursor])
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m Model) updateFilling(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = statePicking
		return m, nil
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "enter":
		if m.focus < len(m.inputs)-1 {
			return m.moveFocus(1)
		}
		return m.submit()
	case "ctrl+s":
		return m.submit()
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focus].Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	rendered := prompt.Render(m.selected.Content, m.values())

	if err := clipboard.WriteAll(rendered); err != nil {
		m.status = "Rendered (clipboard unavailable):\n\n" + rendered
	} else {
		m.status = "Copied to clipboard"
	}
	m.state = stateDone

	boundary, ctx, id := m.boundary, m.ctx, m.selected.ID
	return m, func() tea.Msg {
		_, err := boundary.Dispatch(ctx, command.RecordUsage{TemplateID: id})
		return usageRecordedMsg{err: err}
	}
}

func (m Model) View() string {
	switch m.state {
	case statePicking:
		return m.viewPicking()
	case stateFilling:
		return m.viewFilling()
	default:
		out := m.status
		if m.err != nil {
			out += fmt.Sprintf("\n(usage not recorded: %v)", m.err)
		}
		return out + "\n"
	}
}

func (m Model) viewPicking() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("promptdeck - pick a template"))
	b.WriteString("\n\n")

	if len(m.templates) == 0 {
		b.WriteString("No templates yet. Create one with: promptdeck template save\n")
		return b.String()
	}

	for i, t := range m.templates {
		line := fmt.Sprintf("%s  %s", t.Title, labelStyle.Render(t.Category))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("up/down: move | enter: select | q: quit"))
	return b.String()
}

func (m Model) viewFilling() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("promptdeck - " + m.selected.Title))
	b.WriteString("\n\n")

	for i, name := range m.variables {
		b.WriteString(labelStyle.Render(name) + "\n")
		b.WriteString(m.inputs[i].View() + "\n")
	}
	if len(m.variables) == 0 {
		b.WriteString(labelStyle.Render("This template has no variables.") + "\n")
	}

	preview := prompt.Render(m.selected.Content, m.values())
	b.WriteString("\n" + previewStyle.Render(preview) + "\n")

	b.WriteString(helpStyle.Render("tab: next field | enter: submit | esc: back | ctrl+c: quit"))
	return b.String()
}

// Run starts the fill flow and blocks until it finishes.
func Run(ctx context.Context, boundary *command.Dispatcher, templateID string) error {
	result, err := boundary.Dispatch(ctx, command.ListTemplates{})
	if err != nil {
		return err
	}
	templates := result.(command.TemplatesResult).Templates

	program := tea.NewProgram(New(ctx, boundary, templates, templateID))
	_, err = program.Run()
	return err
}
