package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-collab-client/internal/adapter"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/mock"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authenticated(identity models.Identity) models.Session {
	return models.Session{State: models.SessionAuthenticated, Identity: &identity}
}

func requester() models.Identity {
	return models.Identity{ID: 5, Username: "bob", IsResearcher: false}
}

// newTestCollab wires a collaborationService to mocks. The returned session
// pointer is read on every Session() call and can be swapped by the test; the
// subscriber registered by the service is returned for driving state changes.
func newTestCollab(t *testing.T, ctrl *gomock.Controller, initial models.Session) (
	*collaborationService,
	*mock.MockServerAdapter,
	*models.Session,
	func(models.Session),
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSessionManager(ctrl)

	current := initial
	var notify func(models.Session)
	mockSession.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(models.Session)) func() {
		notify = fn
		return func() {}
	})
	mockSession.EXPECT().Session().DoAndReturn(func() models.Session { return current }).AnyTimes()

	svc := NewCollaborationService(mockAdapter, mockSession, logger.Nop()).(*collaborationService)
	notify(initial)

	return svc, mockAdapter, &current, notify
}

func pendingRequest(id int64) models.CollaborationRequest {
	return models.CollaborationRequest{ID: id, FromUser: 5, ToResearcher: 3, Message: "Let's collaborate", Status: models.StatusPending}
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestCollaboration_Send_EmptyMessage_NoNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestCollab(t, ctrl, authenticated(requester()))

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.Send(context.Background(), 3, msg)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
}

func TestCollaboration_Send_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestCollab(t, ctrl, models.Session{State: models.SessionUnauthenticated})

	_, err := svc.Send(context.Background(), 3, "hi")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCollaboration_Send_ThenListSentIncludesIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(requester()))
	ctx := context.Background()

	created := pendingRequest(9)
	mockAdapter.EXPECT().
		SendCollaboration(ctx, models.SendCollaborationRequest{ToResearcher: 3, Message: "Let's collaborate"}).
		Return(created, nil)

	got, err := svc.Send(ctx, 3, "Let's collaborate")
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)

	sent := svc.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(9), sent[0].ID)
	assert.Equal(t, models.StatusPending, sent[0].Status)

	mockAdapter.EXPECT().ListSent(ctx).Return([]models.CollaborationRequest{pendingRequest(4), created}, nil)

	listed, err := svc.ListSent(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, int64(9), listed[1].ID)
	assert.Equal(t, models.StatusPending, listed[1].Status)
}

func TestCollaboration_Send_ServerRejectionVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(requester()))

	mockAdapter.EXPECT().SendCollaboration(gomock.Any(), gomock.Any()).
		Return(models.CollaborationRequest{}, httpErr(http.StatusBadRequest, "You have already sent a request to this researcher."))

	_, err := svc.Send(context.Background(), 3, "again")

	require.Error(t, err)
	assert.Equal(t, "You have already sent a request to this researcher.", err.Error())
	assert.Empty(t, svc.Sent())
}

// ── ListReceived ─────────────────────────────────────────────────────────────

func TestCollaboration_ListReceived_NonResearcher_NoNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(requester()))
	mockAdapter.EXPECT().ListReceived(gomock.Any()).Times(0)

	got, err := svc.ListReceived(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollaboration_ListReceived_Researcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	mockAdapter.EXPECT().ListReceived(ctx).Return([]models.CollaborationRequest{pendingRequest(9), pendingRequest(10)}, nil).Times(1)

	got, err := svc.ListReceived(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, svc.PendingReceivedCount())
}

// ── UpdateStatus ─────────────────────────────────────────────────────────────

func TestCollaboration_UpdateStatus_AcceptThenSecondTransitionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	mockAdapter.EXPECT().ListReceived(ctx).Return([]models.CollaborationRequest{pendingRequest(9)}, nil)
	_, err := svc.ListReceived(ctx)
	require.NoError(t, err)

	serverRecord := pendingRequest(9)
	serverRecord.Status = models.StatusAccepted
	mockAdapter.EXPECT().UpdateCollaborationStatus(ctx, int64(9), models.StatusAccepted).
		DoAndReturn(func(context.Context, int64, models.CollaborationStatus) (models.CollaborationRequest, error) {
			local := svc.Received()
			require.Len(t, local, 1)
			assert.Equal(t, models.StatusAccepted, local[0].Status)
			assert.True(t, local[0].Unconfirmed)
			return serverRecord, nil
		})

	updated, err := svc.UpdateStatus(ctx, 9, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	local := svc.Received()
	assert.Equal(t, models.StatusAccepted, local[0].Status)
	assert.False(t, local[0].Unconfirmed)
	assert.Equal(t, 0, svc.PendingReceivedCount())

	mockAdapter.EXPECT().ListReceived(ctx).Return([]models.CollaborationRequest{serverRecord}, nil)
	listed, err := svc.ListReceived(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, listed[0].Status)

	mockAdapter.EXPECT().UpdateCollaborationStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	_, err = svc.UpdateStatus(ctx, 9, models.StatusRejected)
	assert.ErrorIs(t, err, ErrRequestAlreadyResolved)
	assert.Equal(t, models.StatusAccepted, svc.Received()[0].Status)
}

func TestCollaboration_UpdateStatus_FailureRestoresPrior(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	mockAdapter.EXPECT().ListReceived(ctx).Return([]models.CollaborationRequest{pendingRequest(9)}, nil)
	_, err := svc.ListReceived(ctx)
	require.NoError(t, err)

	mockAdapter.EXPECT().UpdateCollaborationStatus(ctx, int64(9), models.StatusRejected).
		Return(models.CollaborationRequest{}, httpErr(http.StatusForbidden, "You do not have permission to perform this action."))

	_, err = svc.UpdateStatus(ctx, 9, models.StatusRejected)

	require.Error(t, err)
	assert.Equal(t, "You do not have permission to perform this action.", err.Error())
	local := svc.Received()
	assert.Equal(t, models.StatusPending, local[0].Status)
	assert.False(t, local[0].Unconfirmed)
	assert.Empty(t, svc.updates)
}

func TestCollaboration_UpdateStatus_RefreshDuringFlightIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	mockAdapter.EXPECT().ListReceived(ctx).Return([]models.CollaborationRequest{pendingRequest(9)}, nil)
	_, err := svc.ListReceived(ctx)
	require.NoError(t, err)

	fetched := pendingRequest(9)
	fetched.Message = "edited on server"
	mockAdapter.EXPECT().UpdateCollaborationStatus(ctx, int64(9), models.StatusAccepted).
		DoAndReturn(func(context.Context, int64, models.CollaborationStatus) (models.CollaborationRequest, error) {
			mockAdapter.EXPECT().ListReceived(ctx).Return([]models.CollaborationRequest{fetched}, nil)
			_, err := svc.ListReceived(ctx)
			require.NoError(t, err)
			return models.CollaborationRequest{}, errors.New("timeout")
		})

	_, err = svc.UpdateStatus(ctx, 9, models.StatusAccepted)

	require.Error(t, err)
	assert.Equal(t, "edited on server", svc.Received()[0].Message)
}

func TestCollaboration_UpdateStatus_Validation(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		status  models.CollaborationStatus
		wantErr error
	}{
		{name: "pending is not a resolution", session: authenticated(alice()), status: models.StatusPending, wantErr: ErrInvalidStatus},
		{name: "unknown status", session: authenticated(alice()), status: "maybe", wantErr: ErrInvalidStatus},
		{name: "requester", session: authenticated(requester()), status: models.StatusAccepted, wantErr: ErrNotResearcher},
		{name: "logged out", session: models.Session{State: models.SessionUnauthenticated}, status: models.StatusAccepted, wantErr: ErrNotAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, _ := newTestCollab(t, ctrl, tt.session)

			_, err := svc.UpdateStatus(context.Background(), 9, tt.status)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCollaboration_UpdateStatus_UnknownLocallyStillDispatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	record := pendingRequest(77)
	record.Status = models.StatusRejected
	mockAdapter.EXPECT().UpdateCollaborationStatus(ctx, int64(77), models.StatusRejected).Return(record, nil)

	got, err := svc.UpdateStatus(ctx, 77, models.StatusRejected)

	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
	assert.Empty(t, svc.Received())
}

func TestCollaboration_UpdateStatus_ResolvedWithoutListRefusesSecondTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	accepted := pendingRequest(9)
	accepted.Status = models.StatusAccepted
	mockAdapter.EXPECT().UpdateCollaborationStatus(ctx, int64(9), models.StatusAccepted).Return(accepted, nil).Times(1)
	mockAdapter.EXPECT().UpdateCollaborationStatus(gomock.Any(), int64(9), models.StatusRejected).Times(0)

	_, err := svc.UpdateStatus(ctx, 9, models.StatusAccepted)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, 9, models.StatusRejected)
	assert.ErrorIs(t, err, ErrRequestAlreadyResolved)
}

func TestCollaboration_UpdateStatus_ResolvedIdsForgottenOnAccountChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, current, notify := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	accepted := pendingRequest(9)
	accepted.Status = models.StatusAccepted
	mockAdapter.EXPECT().UpdateCollaborationStatus(ctx, int64(9), models.StatusAccepted).Return(accepted, nil).Times(2)

	_, err := svc.UpdateStatus(ctx, 9, models.StatusAccepted)
	require.NoError(t, err)

	*current = authenticated(carol())
	notify(*current)

	_, err = svc.UpdateStatus(ctx, 9, models.StatusAccepted)
	assert.NoError(t, err)
}

// ── Refresh / session changes ────────────────────────────────────────────────

func TestCollaboration_Refresh_Researcher_FetchesBoth(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(alice()))

	mockAdapter.EXPECT().ListSent(gomock.Any()).Return([]models.CollaborationRequest{pendingRequest(1)}, nil).Times(1)
	mockAdapter.EXPECT().ListReceived(gomock.Any()).Return([]models.CollaborationRequest{pendingRequest(2)}, nil).Times(1)

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Len(t, svc.Sent(), 1)
	assert.Len(t, svc.Received(), 1)
}

func TestCollaboration_Refresh_NonResearcher_SkipsReceived(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(requester()))

	mockAdapter.EXPECT().ListSent(gomock.Any()).Return([]models.CollaborationRequest{pendingRequest(1)}, nil).Times(1)
	mockAdapter.EXPECT().ListReceived(gomock.Any()).Times(0)

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Empty(t, svc.Received())
}

func TestCollaboration_Refresh_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestCollab(t, ctrl, authenticated(alice()))

	mockAdapter.EXPECT().ListSent(gomock.Any()).Return(nil, httpErr(http.StatusInternalServerError, "http 500: Internal Server Error"))
	mockAdapter.EXPECT().ListReceived(gomock.Any()).Return([]models.CollaborationRequest{}, nil).AnyTimes()

	err := svc.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 500: Internal Server Error", err.Error())
}

func TestCollaboration_LogoutDropsCachedLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, current, notify := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	mockAdapter.EXPECT().ListSent(ctx).Return([]models.CollaborationRequest{pendingRequest(1)}, nil)
	_, err := svc.ListSent(ctx)
	require.NoError(t, err)

	*current = models.Session{State: models.SessionUnauthenticated}
	notify(*current)

	assert.Empty(t, svc.Sent())
	_, err = svc.ListSent(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCollaboration_SameAccountKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, notify := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	mockAdapter.EXPECT().ListSent(ctx).Return([]models.CollaborationRequest{pendingRequest(1)}, nil)
	_, err := svc.ListSent(ctx)
	require.NoError(t, err)

	notify(authenticated(alice()))
	assert.Len(t, svc.Sent(), 1)

	notify(authenticated(requester()))
	assert.Empty(t, svc.Sent())
}

func carol() models.Identity {
	return models.Identity{ID: 8, Username: "carol", IsResearcher: true}
}

// switchAccount ends the current session and publishes carol's, the way a
// logout followed by another login reaches the service.
func switchAccount(current *models.Session, notify func(models.Session)) {
	*current = models.Session{State: models.SessionUnauthenticated}
	notify(*current)
	*current = authenticated(carol())
	notify(*current)
}

func TestCollaboration_ListSent_LateReplyAfterAccountChangeNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, current, notify := newTestCollab(t, ctrl, authenticated(requester()))
	ctx := context.Background()

	mockAdapter.EXPECT().ListSent(ctx).DoAndReturn(func(context.Context) ([]models.CollaborationRequest, error) {
		switchAccount(current, notify)
		return []models.CollaborationRequest{pendingRequest(9)}, nil
	})

	got, err := svc.ListSent(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Empty(t, svc.Sent())
}

func TestCollaboration_ListReceived_LateReplyAfterAccountChangeNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, current, notify := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	mockAdapter.EXPECT().ListReceived(ctx).DoAndReturn(func(context.Context) ([]models.CollaborationRequest, error) {
		switchAccount(current, notify)
		return []models.CollaborationRequest{pendingRequest(9)}, nil
	})

	_, err := svc.ListReceived(ctx)

	require.NoError(t, err)
	assert.Empty(t, svc.Received())
}

func TestCollaboration_Send_LateReplyAfterAccountChangeNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, current, notify := newTestCollab(t, ctrl, authenticated(requester()))
	ctx := context.Background()

	mockAdapter.EXPECT().
		SendCollaboration(ctx, models.SendCollaborationRequest{ToResearcher: 3, Message: "Let's collaborate"}).
		DoAndReturn(func(context.Context, models.SendCollaborationRequest) (models.CollaborationRequest, error) {
			switchAccount(current, notify)
			return pendingRequest(9), nil
		})

	created, err := svc.Send(ctx, 3, "Let's collaborate")

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Empty(t, svc.Sent())
}

func TestCollaboration_UpdateStatus_LateReplyAfterAccountChangeNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, current, notify := newTestCollab(t, ctrl, authenticated(alice()))
	ctx := context.Background()

	accepted := pendingRequest(9)
	accepted.Status = models.StatusAccepted
	mockAdapter.EXPECT().UpdateCollaborationStatus(ctx, int64(9), models.StatusAccepted).
		DoAndReturn(func(context.Context, int64, models.CollaborationStatus) (models.CollaborationRequest, error) {
			switchAccount(current, notify)
			return accepted, nil
		})
	mockAdapter.EXPECT().UpdateCollaborationStatus(ctx, int64(9), models.StatusRejected).
		Return(models.CollaborationRequest{}, httpErr(http.StatusBadRequest, "already resolved"))

	_, err := svc.UpdateStatus(ctx, 9, models.StatusAccepted)
	require.NoError(t, err)

	// carol never resolved #9 herself, so the server decides.
	_, err = svc.UpdateStatus(ctx, 9, models.StatusRejected)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}
