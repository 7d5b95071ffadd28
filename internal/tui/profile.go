package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var profileLabels = []string{"Full name", "Qualifications", "Institution", "Contact email", "Bio"}

// ProfileModel is the form a researcher account uses to publish its
// researcher profile. Full name and contact email are required; the service
// checks them before anything is sent.
type ProfileModel struct {
	ctx         context.Context
	researchers service.ResearcherService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewProfileModel(ctx context.Context, researchers service.ResearcherService) *ProfileModel {
	inputs := make([]textinput.Model, len(profileLabels))
	for i, label := range profileLabels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = strings.ToLower(label)
		inputs[i].Width = 50
	}
	inputs[3].CharLimit = 254
	inputs[4].CharLimit = 1000

	return &ProfileModel{ctx: ctx, researchers: researchers, inputs: inputs}
}

func (m *ProfileModel) Init() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.submitting = false
	m.errMsg = ""
	m.setFocus(0)
	return textinput.Blink
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(profileCreatedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		text := fmt.Sprintf("Researcher profile #%d published", result.profile.ID)
		return m, func() tea.Msg { return NavigateTo{Page: pageHub, Payload: Notice{Text: text}} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageHub} }
		case key.Matches(keyMsg, keys.tab, keys.down):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.backtab, keys.up):
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdCreate(m.request())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ProfileModel) request() models.CreateProfileRequest {
	value := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return models.CreateProfileRequest{
		FullName:       value(0),
		Qualifications: value(1),
		Institution:    value(2),
		ContactEmail:   value(3),
		Bio:            value(4),
	}
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼───────────────────────────────────\n")
	for i, label := range profileLabels {
		b.WriteString(fmt.Sprintf("%-16s │ [", label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Publishing...]\n")
	} else {
		b.WriteString("\n[Publish]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("RESEARCHER PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+s: publish")
}

func (m *ProfileModel) cmdCreate(req models.CreateProfileRequest) tea.Cmd {
	ctx := m.ctx
	researchers := m.researchers

	return func() tea.Msg {
		profile, err := researchers.CreateProfile(ctx, req)
		return profileCreatedMsg{profile: profile, err: err}
	}
}

func (m *ProfileModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}
