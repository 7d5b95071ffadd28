package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ComposeModel is the form for sending a collaboration request to a
// researcher profile.
type ComposeModel struct {
	ctx    context.Context
	collab service.CollaborationService

	researcher textinput.Model
	message    textarea.Model
	name       string
	focus      int
	submitting bool
	errMsg     string
}

func NewComposeModel(ctx context.Context, collab service.CollaborationService) *ComposeModel {
	researcher := textinput.New()
	researcher.Placeholder = "researcher profile id"
	researcher.CharLimit = 19
	researcher.Width = 20

	message := textarea.New()
	message.Placeholder = "Describe the collaboration you propose"
	message.SetWidth(60)
	message.SetHeight(6)

	return &ComposeModel{
		ctx:        ctx,
		collab:     collab,
		researcher: researcher,
		message:    message,
	}
}

func (m *ComposeModel) Init() tea.Cmd {
	m.researcher.SetValue("")
	m.message.Reset()
	m.name = ""
	m.errMsg = ""
	m.submitting = false
	m.setFocus(0)
	return textinput.Blink
}

func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case composePrefill:
		m.researcher.SetValue(strconv.FormatInt(msg.ResearcherID, 10))
		m.name = msg.Name
		m.setFocus(1)
		return m, nil
	case requestSentMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		text := fmt.Sprintf("Request #%d sent", msg.request.ID)
		return m, func() tea.Msg { return NavigateTo{Page: pageHub, Payload: Notice{Text: text}} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageHub} }
		case key.Matches(keyMsg, keys.tab, keys.backtab):
			m.setFocus(1 - m.focus)
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.submitting {
				return m, nil
			}
			id, err := strconv.ParseInt(strings.TrimSpace(m.researcher.Value()), 10, 64)
			if err != nil || id <= 0 {
				m.errMsg = "Researcher id must be a positive number"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSend(id, m.message.Value())
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.researcher, cmd = m.researcher.Update(msg)
	} else {
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m *ComposeModel) View() string {
	var b strings.Builder
	b.WriteString("Researcher │ [")
	b.WriteString(m.researcher.View())
	b.WriteString("]")
	if m.name != "" {
		b.WriteString(" ")
		b.WriteString(m.name)
	}
	b.WriteString("\n\nMessage\n")
	b.WriteString(m.message.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Sending...]\n")
	} else {
		b.WriteString("\n[Send]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("NEW COLLABORATION REQUEST", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+s: send")
}

func (m *ComposeModel) cmdSend(researcherID int64, message string) tea.Cmd {
	ctx := m.ctx
	collab := m.collab

	return func() tea.Msg {
		created, err := collab.Send(ctx, researcherID, message)
		return requestSentMsg{request: created, err: err}
	}
}

func (m *ComposeModel) setFocus(i int) {
	m.focus = i
	if i == 0 {
		m.message.Blur()
		m.researcher.Focus()
		return
	}
	m.researcher.Blur()
	m.message.Focus()
}
