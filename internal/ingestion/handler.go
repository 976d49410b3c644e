package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	v1 "github.com/bexbot-lab/bexbot-console/internal/api/v1"
	httperr "github.com/bexbot-lab/bexbot-console/internal/core/errors"
	"github.com/bexbot-lab/bexbot-console/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed       = "Failed to read request body"
	msgInvalidJSON          = "Invalid JSON body"
	msgPersistFailed        = "Failed to persist conversation"
	msgDuplicateConversation = "Conversation already exists"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// IngestHandler handles HTTP POST requests for conversation ingestion.
func (s *Service) IngestHandler(c *gin.Context) {
	conv, payloadSize, err := s.parseConversation(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := validateConversation(conv); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("Received conversation",
		"conversation_id", conv.ID,
		"company_id", conv.CompanyID,
		"bot_id", conv.BotID,
		"channel", conv.Channel,
		"payload_size", payloadSize)

	if err := s.persistConversation(c.Request.Context(), conv); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// parseConversation reads the raw request body and binds it into a Conversation.
// Returns the parsed record and the raw payload size (used for structured logging upstream).
func (s *Service) parseConversation(c *gin.Context) (*v1.Conversation, int, *ingestionError) {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var conv v1.Conversation
	if err := c.ShouldBindJSON(&conv); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}

	// Normalize timestamps at the boundary: everything downstream sees
	// canonical UTC instants, never runtime-specific representations.
	conv.StartedAt = conv.StartedAt.UTC()
	if conv.EndedAt != nil {
		ended := conv.EndedAt.UTC()
		conv.EndedAt = &ended
	}

	// set IngestedAt to be the time we receive the request
	conv.IngestedAt = time.Now().UTC()
	return &conv, len(bodyBytes), nil
}

// validateConversation runs envelope validation. Returns nil on success.
func validateConversation(conv *v1.Conversation) *ingestionError {
	if err := conv.Validate(); err != nil {
		slog.Warn("Envelope validation failed", "error", err, "conversation_id", conv.ID)
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpValidationError,
			message:    err.Error(),
		}
	}
	return nil
}

// persistConversation saves the record to the backing store.
func (s *Service) persistConversation(ctx context.Context, conv *v1.Conversation) *ingestionError {
	if err := s.store.SaveConversation(ctx, conv); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("Duplicate conversation rejected", "conversation_id", conv.ID, "company_id", conv.CompanyID)
			return &ingestionError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateError,
				message:    msgDuplicateConversation,
			}
		}

		slog.Error("Failed to persist conversation", "error", err, "conversation_id", conv.ID)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}
	return nil
}

func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
