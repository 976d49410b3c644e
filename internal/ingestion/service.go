package ingestion

import (
	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
	"github.com/gin-gonic/gin"
)

type Service struct {
	store            storage.ConversationStore
	maxBodySizeBytes int
}

func NewService(repo storage.ConversationStore, maxBodySizeMB int) *Service {
	if repo == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            repo,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/conversations", s.IngestHandler)
}
