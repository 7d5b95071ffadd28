package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-collab-client/internal/mock"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestResearchers(t *testing.T, ctrl *gomock.Controller, session models.Session) (ResearcherService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSessionManager(ctrl)
	mockSession.EXPECT().Session().Return(session).AnyTimes()

	return NewResearcherService(mockAdapter, mockSession), mockAdapter
}

func TestResearchers_ListAndGet_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestResearchers(t, ctrl, models.Session{State: models.SessionUnauthenticated})
	ctx := context.Background()

	ada := models.ResearcherProfile{ID: 3, FullName: "Dr. Ada", ContactEmail: "ada@x.io"}
	mockAdapter.EXPECT().ListResearchers(ctx).Return([]models.ResearcherProfile{ada}, nil)
	mockAdapter.EXPECT().GetResearcher(ctx, int64(3)).Return(ada, nil)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ResearcherProfile{ada}, list)

	got, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, ada, got)
}

func TestResearchers_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestResearchers(t, ctrl, models.Session{State: models.SessionUnauthenticated})

	mockAdapter.EXPECT().GetResearcher(gomock.Any(), int64(404)).Return(models.ResearcherProfile{}, httpErr(http.StatusNotFound, "Not found."))

	_, err := svc.Get(context.Background(), 404)

	assert.Equal(t, "Not found.", err.Error())
}

func TestResearchers_CreateProfile(t *testing.T) {
	complete := models.CreateProfileRequest{FullName: "Dr. Ada", ContactEmail: "ada@x.io", Institution: "AE Lab"}

	tests := []struct {
		name     string
		session  models.Session
		req      models.CreateProfileRequest
		dispatch bool
		wantErr  error
	}{
		{name: "researcher", session: authenticated(alice()), req: complete, dispatch: true},
		{name: "requester", session: authenticated(requester()), req: complete, wantErr: ErrNotResearcher},
		{name: "logged out", session: models.Session{State: models.SessionUnauthenticated}, req: complete, wantErr: ErrNotAuthenticated},
		{name: "missing name", session: authenticated(alice()), req: models.CreateProfileRequest{ContactEmail: "ada@x.io"}, wantErr: ErrIncompleteProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter := newTestResearchers(t, ctrl, tt.session)

			if tt.dispatch {
				mockAdapter.EXPECT().CreateResearcherProfile(gomock.Any(), tt.req).
					Return(models.ResearcherProfile{ID: 1, FullName: tt.req.FullName}, nil)
			}

			got, err := svc.CreateProfile(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Dr. Ada", got.FullName)
		})
	}
}
