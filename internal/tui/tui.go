package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the menu or, for a restored session, the hub, and blocks until
// the user quits.
func (t *TUI) Run(ctx context.Context, session models.Session) error {
	root := t.newRoot(ctx, session)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, session models.Session) RootModel {
	menu := NewMenuModel()
	if session.State == models.SessionInvalid {
		menu.status = "Saved session could not be verified, please sign in again"
	}

	pages := map[string]tea.Model{
		pageMenu:        menu,
		pageLogin:       NewLoginModel(ctx, t.services.Session),
		pageRegister:    NewRegisterModel(ctx, t.services.Session),
		pageHub:         NewHubModel(ctx, t.services, t.logger),
		pageCompose:     NewComposeModel(ctx, t.services.Collaboration),
		pageResearchers: NewResearchersModel(ctx, t.services.Researchers, t.services.Session),
		pageResearcher:  NewResearcherModel(ctx, t.services.Researchers, t.services.Session),
		pageProfile:     NewProfileModel(ctx, t.services.Researchers),
		pageDelete:      NewDeleteAccountModel(ctx, t.services.Session),
	}

	start := pageMenu
	if session.IsAuthenticated() {
		start = pageHub
	}

	return NewRootModel(pages, start, t.buildInfo)
}
