package service

import (
	"github.com/MKhiriev/go-collab-client/internal/adapter"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/store"
)

type ClientServices struct {
	Session       SessionManager
	Collaboration CollaborationService
	Researchers   ResearcherService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	session := NewSessionManager(serverAdapter, storages.Credentials, logger)

	return &ClientServices{
		Session:       session,
		Collaboration: NewCollaborationService(serverAdapter, session, logger),
		Researchers:   NewResearcherService(serverAdapter, session),
	}
}
