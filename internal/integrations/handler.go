package integrations

import (
	"errors"
	"net/http"

	httperr "github.com/bexbot-lab/bexbot-console/internal/core/errors"
	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the integration management routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	grp := r.Group("/v1/companies/:company_id/integrations")
	grp.GET("", s.HandleList)
	grp.GET("/:integration_id", s.HandleGet)
	grp.PUT("/:integration_id", s.HandleConnect)
	grp.DELETE("/:integration_id", s.HandleDisconnect)
	grp.POST("/:integration_id/sync", s.HandleSync)
}

type integrationURI struct {
	CompanyID     string `uri:"company_id" binding:"required"`
	IntegrationID string `uri:"integration_id" binding:"required"`
}

// HandleList handles GET /v1/companies/:company_id/integrations
func (s *Service) HandleList(c *gin.Context) {
	var uri struct {
		CompanyID string `uri:"company_id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBadRequest(c, "Invalid path parameters", err)
		return
	}

	list, err := s.List(c.Request.Context(), uri.CompanyID)
	if err != nil {
		writeIntegrationError(c, err)
		return
	}
	if list == nil {
		list = []*Integration{}
	}

	c.JSON(http.StatusOK, gin.H{"integrations": list})
}

// HandleGet handles GET /v1/companies/:company_id/integrations/:integration_id
func (s *Service) HandleGet(c *gin.Context) {
	var uri integrationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBadRequest(c, "Invalid path parameters", err)
		return
	}

	integ, err := s.Get(c.Request.Context(), uri.CompanyID, uri.IntegrationID)
	if err != nil {
		writeIntegrationError(c, err)
		return
	}

	c.JSON(http.StatusOK, integ)
}

// HandleConnect handles PUT /v1/companies/:company_id/integrations/:integration_id
func (s *Service) HandleConnect(c *gin.Context) {
	var uri integrationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBadRequest(c, "Invalid path parameters", err)
		return
	}

	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "Invalid JSON body", err)
		return
	}

	integ, err := s.Connect(c.Request.Context(), uri.CompanyID, uri.IntegrationID, req)
	if err != nil {
		writeIntegrationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, integ)
}

// HandleDisconnect handles DELETE /v1/companies/:company_id/integrations/:integration_id
func (s *Service) HandleDisconnect(c *gin.Context) {
	var uri integrationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBadRequest(c, "Invalid path parameters", err)
		return
	}

	if err := s.Disconnect(c.Request.Context(), uri.CompanyID, uri.IntegrationID); err != nil {
		writeIntegrationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "disconnected"})
}

// HandleSync handles POST /v1/companies/:company_id/integrations/:integration_id/sync
func (s *Service) HandleSync(c *gin.Context) {
	var uri integrationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBadRequest(c, "Invalid path parameters", err)
		return
	}

	syncedAt, err := s.Sync(c.Request.Context(), uri.CompanyID, uri.IntegrationID)
	if err != nil {
		writeIntegrationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"last_sync_at": syncedAt})
}

func writeBadRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidJsonError,
		Message:   message,
		Details:   err.Error(),
	})
}

func writeIntegrationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidConfig):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpValidationError,
			Message:   "Integration config rejected",
			Details:   err.Error(),
		})
	case errors.Is(err, ErrAlreadyConnected):
		c.JSON(http.StatusConflict, httperr.ErrorResponse{
			ErrorType: httperr.HttpConflictError,
			Message:   "Integration already connected",
		})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   "Integration not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Integration operation failed",
			Details:   err.Error(),
		})
	}
}
