package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-collab-client/internal/adapter"
	"github.com/MKhiriev/go-collab-client/models"
)

type researcherService struct {
	adapter adapter.ServerAdapter
	session SessionManager
}

func NewResearcherService(serverAdapter adapter.ServerAdapter, session SessionManager) ResearcherService {
	return &researcherService{adapter: serverAdapter, session: session}
}

func (r *researcherService) List(ctx context.Context) ([]models.ResearcherProfile, error) {
	profiles, err := r.adapter.ListResearchers(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return profiles, nil
}

func (r *researcherService) Get(ctx context.Context, id int64) (models.ResearcherProfile, error) {
	profile, err := r.adapter.GetResearcher(ctx, id)
	if err != nil {
		return models.ResearcherProfile{}, mapAdapterError(err)
	}
	return profile, nil
}

// CreateProfile is open to researcher identities only.
func (r *researcherService) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (models.ResearcherProfile, error) {
	session := r.session.Session()
	if !session.IsAuthenticated() {
		return models.ResearcherProfile{}, ErrNotAuthenticated
	}
	if !session.IsResearcher() {
		return models.ResearcherProfile{}, ErrNotResearcher
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.ContactEmail) == "" {
		return models.ResearcherProfile{}, ErrIncompleteProfile
	}

	profile, err := r.adapter.CreateResearcherProfile(ctx, req)
	if err != nil {
		return models.ResearcherProfile{}, mapAdapterError(err)
	}
	return profile, nil
}
