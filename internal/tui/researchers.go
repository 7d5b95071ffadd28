package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// ResearchersModel shows the public researcher directory.
type ResearchersModel struct {
	ctx         context.Context
	researchers service.ResearcherService
	session     service.SessionManager

	profiles []models.ResearcherProfile
	idx      int
	loading  bool
	status   string
	errMsg   string
}

// NewResearchersModel creates the directory page. The directory is public;
// sending a request from it needs a signed-in session.
func NewResearchersModel(ctx context.Context, researchers service.ResearcherService, session service.SessionManager) *ResearchersModel {
	return &ResearchersModel{ctx: ctx, researchers: researchers, session: session}
}

func (m *ResearchersModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""

	ctx := m.ctx
	researchers := m.researchers
	return func() tea.Msg {
		profiles, err := researchers.List(ctx)
		return researchersLoadedMsg{profiles: profiles, err: err}
	}
}

func (m *ResearchersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case researchersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.profiles = msg.profiles
		if m.idx >= len(m.profiles) {
			m.idx = max(len(m.profiles)-1, 0)
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Clipboard is not available: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied " + msg.email
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		back := pageMenu
		if m.session.Session().IsAuthenticated() {
			back = pageHub
		}
		return m, func() tea.Msg { return NavigateTo{Page: back} }
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.profiles)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if p, ok := m.selected(); ok {
			open := openResearcher{ID: p.ID}
			return m, func() tea.Msg { return NavigateTo{Page: pageResearcher, Payload: open} }
		}
	case key.Matches(keyMsg, keys.newItem):
		if p, ok := m.selected(); ok {
			return m, composeTo(m.session, p, &m.status)
		}
	case key.Matches(keyMsg, keys.copy):
		if p, ok := m.selected(); ok {
			return m, copyEmail(p)
		}
	}

	return m, nil
}

// composeTo opens the compose form addressed to p, or explains in status why
// it cannot.
func composeTo(session service.SessionManager, p models.ResearcherProfile, status *string) tea.Cmd {
	if !session.Session().IsAuthenticated() {
		*status = "Sign in to send a collaboration request"
		return nil
	}
	prefill := composePrefill{ResearcherID: p.ID, Name: p.FullName}
	return func() tea.Msg { return NavigateTo{Page: pageCompose, Payload: prefill} }
}

func copyEmail(p models.ResearcherProfile) tea.Cmd {
	if p.ContactEmail == "" {
		return nil
	}
	email := p.ContactEmail
	return func() tea.Msg { return copiedMsg{email: email, err: clipboardWrite(email)} }
}

func (m *ResearchersModel) selected() (models.ResearcherProfile, bool) {
	if m.idx < 0 || m.idx >= len(m.profiles) {
		return models.ResearcherProfile{}, false
	}
	return m.profiles[m.idx], true
}

func (m *ResearchersModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("Note: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString("Error: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n\n")
	}
	if m.loading {
		b.WriteString("Loading...\n")
	}

	b.WriteString(fmt.Sprintf("  %-6s │ %-24s │ %-24s │ %s\n", "ID", "Name", "Institution", "Email"))
	b.WriteString("─────────┼──────────────────────────┼──────────────────────────┼────────────\n")
	for i, p := range m.profiles {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-6d │ %-24s │ %-24s │ %s\n",
			cursor, p.ID, fitText(p.FullName, 24), fitText(valueOrDash(p.Institution), 24), valueOrDash(p.ContactEmail)))
	}

	if p, ok := m.selected(); ok && strings.TrimSpace(p.Bio) != "" {
		b.WriteString("\n")
		b.WriteString(fitText(p.Bio, 200))
		b.WriteString("\n")
	}

	return renderPage("RESEARCHERS", strings.TrimRight(b.String(), "\n"), "↑/↓: move │ enter: details │ n: send request │ c: copy email │ esc: back")
}
