package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type hubTab int

const (
	tabSent hubTab = iota
	tabReceived
)

// HubModel is the signed-in home screen. It lists sent requests and, for
// researchers, received requests with accept/reject controls.
type HubModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	tab      hubTab
	idx      int
	loading  bool
	updating map[int64]bool
	status   string
	errMsg   string
}

func NewHubModel(ctx context.Context, services *service.ClientServices, logger *logger.Logger) *HubModel {
	return &HubModel{
		ctx:      ctx,
		services: services,
		logger:   logger,
		updating: make(map[int64]bool),
	}
}

// Init reloads both lists every time the hub is opened.
func (m *HubModel) Init() tea.Cmd {
	m.errMsg = ""
	m.status = ""
	if !m.services.Session.Session().IsResearcher() {
		m.tab = tabSent
	}
	m.loading = true
	return m.cmdRefresh()
}

func (m *HubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.status = msg.Text
		return m, nil
	case listsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		m.clampCursor()
		return m, nil
	case statusUpdatedMsg:
		delete(m.updating, msg.id)
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Str("func", "HubModel.Update").Int64("request_id", msg.id).Msg("status update failed")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Request #%d %s", msg.id, msg.request.Status)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.errMsg != "" {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab, keys.backtab):
		if m.services.Session.Session().IsResearcher() {
			m.tab = 1 - m.tab
			m.idx = 0
		}
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items())-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.sync):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.accept):
		return m, m.resolve(models.StatusAccepted)
	case key.Matches(keyMsg, keys.reject):
		return m, m.resolve(models.StatusRejected)
	case key.Matches(keyMsg, keys.newItem):
		return m, func() tea.Msg { return NavigateTo{Page: pageCompose} }
	case key.Matches(keyMsg, keys.directory):
		return m, func() tea.Msg { return NavigateTo{Page: pageResearchers} }
	case key.Matches(keyMsg, keys.profile):
		if m.services.Session.Session().IsResearcher() {
			return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
		}
	case key.Matches(keyMsg, keys.deleteAcc):
		return m, func() tea.Msg { return NavigateTo{Page: pageDelete} }
	case key.Matches(keyMsg, keys.logout):
		session := m.services.Session
		return m, func() tea.Msg {
			session.Logout()
			return loggedOutMsg{}
		}
	}

	return m, nil
}

// resolve starts a status update for the selected received request. The
// control stays disabled for a request until its update completes.
func (m *HubModel) resolve(status models.CollaborationStatus) tea.Cmd {
	if m.tab != tabReceived {
		return nil
	}
	items := m.items()
	if m.idx >= len(items) {
		return nil
	}

	item := items[m.idx]
	if m.updating[item.ID] {
		return nil
	}
	if item.Status != models.StatusPending {
		m.status = fmt.Sprintf("Request #%d is already %s", item.ID, item.Status)
		return nil
	}

	m.updating[item.ID] = true
	m.status = ""

	ctx := m.ctx
	collab := m.services.Collaboration
	id := item.ID
	return func() tea.Msg {
		updated, err := collab.UpdateStatus(ctx, id, status)
		return statusUpdatedMsg{id: id, request: updated, err: err}
	}
}

func (m *HubModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	collab := m.services.Collaboration

	return func() tea.Msg {
		return listsLoadedMsg{err: collab.Refresh(ctx)}
	}
}

func (m *HubModel) items() []models.CollaborationRequest {
	if m.tab == tabReceived {
		return m.services.Collaboration.Received()
	}
	return m.services.Collaboration.Sent()
}

func (m *HubModel) clampCursor() {
	if n := len(m.items()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *HubModel) View() string {
	if m.errMsg != "" {
		return errorOverlayModel{message: m.errMsg}.View()
	}

	session := m.services.Session.Session()

	var b strings.Builder
	if session.Identity != nil {
		role := "requester"
		if session.Identity.IsResearcher {
			role = "researcher"
		}
		b.WriteString(fmt.Sprintf("%s (%s)", session.Identity.Username, role))
		if session.Identity.IsResearcher {
			b.WriteString(fmt.Sprintf(" │ pending: %d", m.services.Collaboration.PendingReceivedCount()))
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("Note: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	sentLabel, receivedLabel := "[Sent]", " Received "
	if m.tab == tabReceived {
		sentLabel, receivedLabel = " Sent ", "[Received]"
	}
	b.WriteString(sentLabel)
	if session.IsResearcher() {
		b.WriteString(" ")
		b.WriteString(receivedLabel)
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	}

	peer := "To"
	if m.tab == tabReceived {
		peer = "From"
	}
	b.WriteString(fmt.Sprintf("  %-6s │ %-16s │ %-22s │ %s\n", "ID", peer, "Status", "Message"))
	b.WriteString("─────────┼──────────────────┼────────────────────────┼──────────────────\n")

	items := m.items()
	for i, item := range items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		who := item.RecipientLabel()
		if m.tab == tabReceived {
			who = item.SenderLabel()
		}
		b.WriteString(fmt.Sprintf("%s %-6d │ %-16s │ %s │ %s\n", cursor, item.ID, fitText(who, 16), m.statusLabel(item, 22), fitText(item.Message, 40)))
	}
	if len(items) == 0 && !m.loading {
		b.WriteString("  no requests\n")
	}

	hotKeys := "↑/↓: move │ s: refresh │ n: new request │ r: researchers │ l: sign out │ D: delete account │ q: quit"
	if session.IsResearcher() {
		hotKeys = "tab: switch list │ a: accept │ x: reject │ p: publish profile │ " + hotKeys
	}

	return renderPage("COLLABORATION REQUESTS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// statusLabel pads the status to width before styling so that escape codes
// do not break the column layout.
func (m *HubModel) statusLabel(item models.CollaborationRequest, width int) string {
	label := string(item.Status)
	switch {
	case m.updating[item.ID]:
		label += " (saving...)"
	case item.Unconfirmed:
		label += " (unconfirmed)"
	}

	padded := fmt.Sprintf("%-*s", width, label)
	if item.Unconfirmed || m.updating[item.ID] {
		return unconfirmedStyle.Render(padded)
	}
	if style, ok := statusStyles[string(item.Status)]; ok {
		return style.Render(padded)
	}
	return padded
}
