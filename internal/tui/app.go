package tui

import (
	"github.com/MKhiriev/go-collab-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) moves between the signed-out and signed-in pages on session results
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav)
	}

	switch result := msg.(type) {
	case LoginResult:
		if result.Err == nil {
			r = r.forward(msg)
			return r.navigate(NavigateTo{Page: pageHub, Payload: Notice{Text: "Signed in as " + result.Username}})
		}
	case RegisterResult:
		if result.Err == nil {
			r = r.forward(msg)
			return r.navigate(NavigateTo{Page: pageHub, Payload: Notice{Text: "Account " + result.Username + " created"}})
		}
	case loggedOutMsg:
		return r.navigate(NavigateTo{Page: pageMenu, Payload: Notice{Text: "Signed out"}})
	case accountDeletedMsg:
		text := "Account deleted"
		if result.err != nil {
			text = "Signed out. The account could not be deleted: " + humanizeError(result.err)
		}
		return r.navigate(NavigateTo{Page: pageMenu, Payload: Notice{Text: text}})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// forward lets the active page see msg before the router leaves it. The
// page's command is dropped.
func (r RootModel) forward(msg tea.Msg) RootModel {
	if r.current != nil {
		r.current, _ = r.current.Update(msg)
	}
	return r
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next

	if nav.Payload != nil {
		payload := nav.Payload
		return r, tea.Sequence(r.current.Init(), func() tea.Msg { return payload })
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
