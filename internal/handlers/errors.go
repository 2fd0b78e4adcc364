package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to the HTTP status the frontend receives.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrActionInProgress):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrRemoteRejected):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrTransient):
		return http.StatusGatewayTimeout
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": msg} for err, logging server-side failures at Error.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	logError(logger, status, err, fallback)
	c.JSON(status, gin.H{"error": apperrors.UserMessage(err, fallback)})
}

// respondTransitionError writes the error together with the reconciled board.
func respondTransitionError(c *gin.Context, logger *slog.Logger, err error, fallback string, board *domain.Board, pending []string) {
	status := statusFor(err)
	logError(logger, status, err, fallback)
	c.JSON(status, dto.TransitionErrorResponse{
		Error: apperrors.UserMessage(err, fallback),
		Board: dto.ToBoardResponse(board, pending),
	})
}

func logError(logger *slog.Logger, status int, err error, msg string) {
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()), slog.Int("status", status))
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
}

// lineIndex parses the :index path parameter.
func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line index"})
		return 0, false
	}
	return index, true
}
