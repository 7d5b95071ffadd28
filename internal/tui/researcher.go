package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ResearcherModel shows one researcher profile with its papers. The profile
// to load arrives as an [openResearcher] payload.
type ResearcherModel struct {
	ctx         context.Context
	researchers service.ResearcherService
	session     service.SessionManager

	profile models.ResearcherProfile
	loaded  bool
	loading bool
	status  string
	errMsg  string
}

func NewResearcherModel(ctx context.Context, researchers service.ResearcherService, session service.SessionManager) *ResearcherModel {
	return &ResearcherModel{ctx: ctx, researchers: researchers, session: session}
}

func (m *ResearcherModel) Init() tea.Cmd {
	m.profile = models.ResearcherProfile{}
	m.loaded = false
	m.loading = false
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *ResearcherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openResearcher:
		m.loading = true
		ctx := m.ctx
		researchers := m.researchers
		return m, func() tea.Msg {
			profile, err := researchers.Get(ctx, msg.ID)
			return researcherLoadedMsg{profile: profile, err: err}
		}
	case researcherLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.profile = msg.profile
		m.loaded = true
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
		return m, func() tea.Msg { return NavigateTo{Page: pageResearchers} }
	case key.Matches(keyMsg, keys.newItem):
		if m.loaded {
			return m, composeTo(m.session, m.profile, &m.status)
		}
	case key.Matches(keyMsg, keys.copy):
		if m.loaded {
			return m, copyEmail(m.profile)
		}
	}

	return m, nil
}

func (m *ResearcherModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("Note: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}
	if m.loading {
		b.WriteString("Loading...\n")
	}

	if m.loaded {
		p := m.profile
		b.WriteString(fmt.Sprintf("Name           │ %s\n", p.FullName))
		b.WriteString(fmt.Sprintf("Profile id     │ %d\n", p.ID))
		b.WriteString(fmt.Sprintf("Qualifications │ %s\n", valueOrDash(p.Qualifications)))
		b.WriteString(fmt.Sprintf("Institution    │ %s\n", valueOrDash(p.Institution)))
		b.WriteString(fmt.Sprintf("Email          │ %s\n", valueOrDash(p.ContactEmail)))
		if strings.TrimSpace(p.Bio) != "" {
			b.WriteString("\n" + p.Bio + "\n")
		}

		b.WriteString("\nPapers\n")
		if len(p.Papers) == 0 {
			b.WriteString("  none\n")
		}
		for _, paper := range p.Papers {
			uploaded := "-"
			if !paper.UploadedAt.IsZero() {
				uploaded = paper.UploadedAt.Format("2006-01-02")
			}
			b.WriteString(fmt.Sprintf("  %s │ %s\n", uploaded, fitText(valueOrDash(paper.Title), 60)))
		}
	}

	return renderPage("RESEARCHER", strings.TrimRight(b.String(), "\n"), "n: send request │ c: copy email │ esc: back")
}
