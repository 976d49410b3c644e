package analytics

import (
	"errors"
	"net/http"
	"time"

	httperr "github.com/bexbot-lab/bexbot-console/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the metrics query routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/bots/:bot_id/metrics", s.HandleBotMetrics)
	r.GET("/v1/companies/:company_id/dashboard", s.HandleDashboard)
}

// HandleBotMetrics handles GET /v1/bots/:bot_id/metrics
// Query parameters: company_id, start, end (bare dates; the end day is
// captured in full).
func (s *Service) HandleBotMetrics(c *gin.Context) {
	var uri struct {
		BotID string `uri:"bot_id" binding:"required"`
	}
	var query struct {
		CompanyID string    `form:"company_id" binding:"required"`
		Start     time.Time `form:"start" binding:"required" time_format:"2006-01-02"`
		End       time.Time `form:"end" binding:"required" time_format:"2006-01-02"`
	}

	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid path parameters",
			Details:   err.Error(),
		})
		return
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	report, err := s.BotMetrics(c.Request.Context(), query.CompanyID, uri.BotID, Window{
		Start: query.Start,
		End:   query.End,
	})
	if err != nil {
		writeMetricsError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleDashboard handles GET /v1/companies/:company_id/dashboard
func (s *Service) HandleDashboard(c *gin.Context) {
	var uri struct {
		CompanyID string `uri:"company_id" binding:"required"`
	}

	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid path parameters",
			Details:   err.Error(),
		})
		return
	}

	report, err := s.Dashboard(c.Request.Context(), uri.CompanyID)
	if err != nil {
		writeMetricsError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// writeMetricsError maps service errors to HTTP responses. A failed
// upstream fetch is a retryable 500, distinct from an empty-but-valid
// report which never reaches this path.
func writeMetricsError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidQuery) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid metrics query",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpMetricsFailedError,
		Message:   "Could not load metrics",
		Details:   err.Error(),
	})
}
