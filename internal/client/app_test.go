package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-collab-client/internal/config"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/mock"
	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	got models.Session
	err error
}

func (f *fakeUI) Run(_ context.Context, session models.Session) error {
	f.got = session
	return f.err
}

func newTestApp(t *testing.T, session *mock.MockSessionManager, ui UI, timeout time.Duration) *App {
	t.Helper()
	app, err := NewApp(&service.ClientServices{Session: session}, ui, config.ClientApp{BootTimeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestApp_Run_BootsThenStartsUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)

	restored := models.Session{State: models.SessionAuthenticated, Identity: &models.Identity{ID: 7, Username: "alice"}}
	session.EXPECT().Boot(gomock.Any()).DoAndReturn(func(ctx context.Context) models.Session {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		return restored
	}).Times(1)

	ui := &fakeUI{}
	app := newTestApp(t, session, ui, time.Minute)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, restored, ui.got)
}

func TestApp_Run_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	session.EXPECT().Boot(gomock.Any()).Return(models.Session{State: models.SessionUnauthenticated})

	uiErr := errors.New("terminal closed")
	app := newTestApp(t, session, &fakeUI{err: uiErr}, time.Second)

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, uiErr)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}
