package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// registerResearcherField is the focus index of the researcher checkbox that
// follows the text inputs.
const registerResearcherField = 4

// RegisterModel is the Bubble Tea model for the registration screen. It renders four
// text inputs (username, email, password and its confirmation) plus a researcher
// checkbox and dispatches an async registration command on form submission.
// Registration signs the new account in, so on success [RootModel] opens the hub.
type RegisterModel struct {
	ctx     context.Context
	session service.SessionManager

	inputs     []textinput.Model
	researcher bool
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with four pre-configured text inputs.
// The username field receives focus immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, session service.SessionManager) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "username"
	fields[0].CharLimit = 150
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "repeat password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	return &RegisterModel{
		ctx:     ctx,
		session: session,
		inputs:  fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] clears submitting state; on error, populates errMsg;
//     on success, resets the form.
//   - esc              cancels and navigates back to the menu.
//   - tab, shift+tab   move focus between the fields.
//   - space            toggles the researcher checkbox when it is focused.
//   - enter            validates inputs (all text fields required; passwords
//     must match) and dispatches the async registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case keyMsg.String() == " " && m.focus == registerResearcherField:
			m.researcher = !m.researcher
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				Username:     strings.TrimSpace(m.inputs[0].Value()),
				Email:        strings.TrimSpace(m.inputs[1].Value()),
				Password:     m.inputs[2].Value(),
				IsResearcher: m.researcher,
			}
			repeat := m.inputs[3].Value()

			if req.Username == "" || req.Email == "" || req.Password == "" || repeat == "" {
				m.errMsg = "All fields are required"
				return m, nil
			}
			if req.Password != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	if m.focus == registerResearcherField {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a two-column table
// with all fields, a submission indicator, and an optional error message.
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼───────────────────────────────────\n")
	b.WriteString("Username         │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	marker := " "
	if m.focus == registerResearcherField {
		marker = ">"
	}
	check := "[ ]"
	if m.researcher {
		check = "[x]"
	}
	b.WriteString("Researcher      " + marker + "│ " + check + "\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ space: toggle │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		err := session.Register(ctx, req)
		return RegisterResult{
			Err:      err,
			Username: req.Username,
		}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.researcher = false
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.setFocus((m.focus + 1) % (len(m.inputs) + 1))
}

func (m *RegisterModel) focusPrev() {
	m.setFocus((m.focus + len(m.inputs)) % (len(m.inputs) + 1))
}

func (m *RegisterModel) setFocus(i int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}
