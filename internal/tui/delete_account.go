package tui

import (
	"context"

	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DeleteAccountModel asks for confirmation before deleting the account. The
// local session ends whatever the server answers.
type DeleteAccountModel struct {
	ctx     context.Context
	session service.SessionManager

	deleting bool
}

func NewDeleteAccountModel(ctx context.Context, session service.SessionManager) *DeleteAccountModel {
	return &DeleteAccountModel{ctx: ctx, session: session}
}

func (m *DeleteAccountModel) Init() tea.Cmd {
	m.deleting = false
	return nil
}

func (m *DeleteAccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.deleting {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.deleting = true
		ctx := m.ctx
		session := m.session
		return m, func() tea.Msg {
			return accountDeletedMsg{err: session.DeleteAccount(ctx)}
		}
	case key.Matches(keyMsg, keys.no, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageHub} }
	}

	return m, nil
}

func (m *DeleteAccountModel) View() string {
	message := "Delete your account permanently?"
	if m.deleting {
		message = "Deleting account..."
	}
	return renderPage("DELETE ACCOUNT", confirmModel{message: message}.View(), "y: delete │ n/esc: cancel")
}
