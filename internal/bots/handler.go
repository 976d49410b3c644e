package bots

import (
	"errors"
	"net/http"
	"strconv"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	httperr "github.com/bexbot-lab/bexbot-console/internal/core/errors"
	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the bot lifecycle and history routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/companies/:company_id/bots", s.HandleCreate)
	r.GET("/v1/companies/:company_id/bots", s.HandleList)
	r.GET("/v1/companies/:company_id/history", s.HandleCompanyHistory)

	r.GET("/v1/bots/:bot_id", s.HandleGet)
	r.DELETE("/v1/bots/:bot_id", s.HandleDelete)
	r.PATCH("/v1/bots/:bot_id/status", s.HandleSetStatus)
	r.PUT("/v1/bots/:bot_id/flow", s.HandleSetFlow)
	r.PUT("/v1/bots/:bot_id/quick-replies", s.HandleSetQuickReplies)
	r.GET("/v1/bots/:bot_id/history", s.HandleBotHistory)
}

type companyURI struct {
	CompanyID string `uri:"company_id" binding:"required"`
}

type botURI struct {
	BotID string `uri:"bot_id" binding:"required"`
}

// HandleCreate handles POST /v1/companies/:company_id/bots
func (s *Service) HandleCreate(c *gin.Context) {
	var uri companyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	var req CreateBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBotBadRequest(c, "Invalid JSON body", err)
		return
	}

	bot, err := s.Create(c.Request.Context(), uri.CompanyID, req)
	if err != nil {
		writeBotError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bot)
}

// HandleList handles GET /v1/companies/:company_id/bots
func (s *Service) HandleList(c *gin.Context) {
	var uri companyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	bots, err := s.List(c.Request.Context(), uri.CompanyID)
	if err != nil {
		writeBotError(c, err)
		return
	}
	if bots == nil {
		bots = []*v1.Bot{}
	}

	c.JSON(http.StatusOK, gin.H{"bots": bots})
}

// HandleGet handles GET /v1/bots/:bot_id
func (s *Service) HandleGet(c *gin.Context) {
	var uri botURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	bot, err := s.Get(c.Request.Context(), uri.BotID)
	if err != nil {
		writeBotError(c, err)
		return
	}

	c.JSON(http.StatusOK, bot)
}

// HandleSetStatus handles PATCH /v1/bots/:bot_id/status
func (s *Service) HandleSetStatus(c *gin.Context) {
	var uri botURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Actor  Actor  `json:"actor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBotBadRequest(c, "Invalid JSON body", err)
		return
	}

	bot, err := s.SetStatus(c.Request.Context(), uri.BotID, req.Status, req.Actor)
	if err != nil {
		writeBotError(c, err)
		return
	}

	c.JSON(http.StatusOK, bot)
}

// HandleSetFlow handles PUT /v1/bots/:bot_id/flow
func (s *Service) HandleSetFlow(c *gin.Context) {
	var uri botURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	var req struct {
		Flow  v1.Flow `json:"flow" binding:"required"`
		Actor Actor   `json:"actor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBotBadRequest(c, "Invalid JSON body", err)
		return
	}

	if err := s.SetFlow(c.Request.Context(), uri.BotID, req.Flow, req.Actor); err != nil {
		writeBotError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// HandleSetQuickReplies handles PUT /v1/bots/:bot_id/quick-replies
func (s *Service) HandleSetQuickReplies(c *gin.Context) {
	var uri botURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	var req struct {
		QuickReplies []v1.QuickReply `json:"quick_replies" binding:"required"`
		Actor        Actor           `json:"actor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBotBadRequest(c, "Invalid JSON body", err)
		return
	}

	if err := s.SetQuickReplies(c.Request.Context(), uri.BotID, req.QuickReplies, req.Actor); err != nil {
		writeBotError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// HandleDelete handles DELETE /v1/bots/:bot_id
func (s *Service) HandleDelete(c *gin.Context) {
	var uri botURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	var req struct {
		Reason string `json:"reason"`
		Actor  Actor  `json:"actor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBotBadRequest(c, "Invalid JSON body", err)
		return
	}

	if err := s.Delete(c.Request.Context(), uri.BotID, req.Reason, req.Actor); err != nil {
		writeBotError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// HandleCompanyHistory handles GET /v1/companies/:company_id/history
func (s *Service) HandleCompanyHistory(c *gin.Context) {
	var uri companyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeBotBadRequest(c, "Invalid limit parameter", errors.New("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	entries, err := s.CompanyHistory(c.Request.Context(), uri.CompanyID, limit)
	if err != nil {
		writeBotError(c, err)
		return
	}
	if entries == nil {
		entries = []*v1.HistoryEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// HandleBotHistory handles GET /v1/bots/:bot_id/history
func (s *Service) HandleBotHistory(c *gin.Context) {
	var uri botURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeBotBadRequest(c, "Invalid path parameters", err)
		return
	}

	entries, err := s.BotHistory(c.Request.Context(), uri.BotID)
	if err != nil {
		writeBotError(c, err)
		return
	}
	if entries == nil {
		entries = []*v1.HistoryEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}

func writeBotBadRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidJsonError,
		Message:   message,
		Details:   err.Error(),
	})
}

func writeBotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidBot):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpValidationError,
			Message:   "Bot request rejected",
			Details:   err.Error(),
		})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   "Bot not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Bot operation failed",
			Details:   err.Error(),
		})
	}
}
