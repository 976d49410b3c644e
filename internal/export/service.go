package export

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bexbot-lab/bexbot-console/internal/analytics"
	httperr "github.com/bexbot-lab/bexbot-console/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Service serves downloadable XLSX renditions of the metrics reports.
type Service struct {
	metrics *analytics.Service
}

// NewService creates a new export service on top of the analytics service.
func NewService(metrics *analytics.Service) *Service {
	return &Service{metrics: metrics}
}

// RegisterRoutes registers the export routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/bots/:bot_id/metrics/export", s.HandleMetricsExport)
}

// HandleMetricsExport handles GET /v1/bots/:bot_id/metrics/export
// Query parameters match the metrics endpoint: company_id, start, end.
func (s *Service) HandleMetricsExport(c *gin.Context) {
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

	window := analytics.Window{Start: query.Start, End: query.End}

	report, err := s.metrics.BotMetrics(c.Request.Context(), query.CompanyID, uri.BotID, window)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidQuery) {
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
		return
	}

	workbook, err := BuildMetricsWorkbook(uri.BotID, window, report)
	if err != nil {
		slog.Error("Failed to build metrics workbook", "bot_id", uri.BotID, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Could not build export file",
		})
		return
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		slog.Error("Failed to serialize metrics workbook", "bot_id", uri.BotID, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Could not build export file",
		})
		return
	}

	filename := fmt.Sprintf("bot-metrics-%s-%s-%s.xlsx",
		uri.BotID,
		query.Start.Format("2006-01-02"),
		query.End.Format("2006-01-02"))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
