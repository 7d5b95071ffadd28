package tui

import (
	"github.com/MKhiriev/go-collab-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in [RootModel].
const (
	pageMenu        = "menu"
	pageLogin       = "login"
	pageRegister    = "register"
	pageHub         = "hub"
	pageCompose     = "compose"
	pageResearchers = "researchers"
	pageResearcher  = "researcher"
	pageProfile     = "profile"
	pageDelete      = "delete"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page right after its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login form once the session manager is done.
type LoginResult struct {
	Err      error
	Username string
}

// RegisterResult is produced by the registration form. Registration logs the
// new account in, so a nil Err means the session is authenticated.
type RegisterResult struct {
	Err      error
	Username string
}

// Notice is a one-line status shown at the top of the receiving page.
type Notice struct {
	Text string
}

// composePrefill opens the compose form addressed to a researcher profile.
type composePrefill struct {
	ResearcherID int64
	Name         string
}

type listsLoadedMsg struct {
	err error
}

type statusUpdatedMsg struct {
	id      int64
	request models.CollaborationRequest
	err     error
}

type requestSentMsg struct {
	request models.CollaborationRequest
	err     error
}

type researchersLoadedMsg struct {
	profiles []models.ResearcherProfile
	err      error
}

// openResearcher asks the detail page to load one profile.
type openResearcher struct {
	ID int64
}

type researcherLoadedMsg struct {
	profile models.ResearcherProfile
	err     error
}

type profileCreatedMsg struct {
	profile models.ResearcherProfile
	err     error
}

type loggedOutMsg struct{}

type accountDeletedMsg struct {
	err error
}

type copiedMsg struct {
	email string
	err   error
}
