package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/requestdata"
	"github.com/wellforge/masterclass-backend/internal/services"
)

type PodHandler struct {
	log     *logger.Logger
	svc     services.PodService
	limiter services.RateLimiter
}

func NewPodHandler(baseLog *logger.Logger, svc services.PodService, limiter services.RateLimiter) *PodHandler {
	return &PodHandler{
		log:     baseLog.With("handler", "PodHandler"),
		svc:     svc,
		limiter: limiter,
	}
}

// GET /api/masterclass-pod
func (h *PodHandler) GetPod(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
		return
	}

	var cursor *uuid.UUID
	if raw := c.Query("cursor"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_cursor", errors.New("cursor must be a message id"))
			return
		}
		cursor = &id
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	overview, err := h.svc.Overview(c.Request.Context(), rd.UserID, cursor, limit)
	if err != nil {
		h.log.Error("Failed to build pod overview", "user_id", rd.UserID, "error", err)
		RespondError(c, http.StatusInternalServerError, "overview_failed", errors.New("failed to load pod"))
		return
	}
	RespondOK(c, overview)
}

type postMessageRequest struct {
	Content string `json:"content"`
}

// POST /api/masterclass-pod
func (h *PodHandler) PostMessage(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("not authenticated"))
		return
	}

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request.Context(), rd.UserID.String())
		if err != nil {
			// Fail open: a broken limiter must not block chat.
			h.log.Warn("Rate limiter unavailable, allowing request", "error", err)
		} else if !allowed {
			RespondError(c, http.StatusTooManyRequests, "rate_limited", errors.New("too many messages, slow down"))
			return
		}
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
		return
	}

	msg, err := h.svc.PostMessage(c.Request.Context(), rd.UserID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyContent):
			RespondError(c, http.StatusBadRequest, "empty_content", err)
		case errors.Is(err, services.ErrPodNotFound):
			RespondError(c, http.StatusNotFound, "pod_not_found", err)
		default:
			h.log.Error("Failed to post pod message", "user_id", rd.UserID, "error", err)
			RespondError(c, http.StatusInternalServerError, "post_failed", errors.New("failed to send message"))
		}
		return
	}

	RespondOK(c, gin.H{
		"success": true,
		"message": gin.H{
			"id":        msg.ID,
			"content":   msg.Content,
			"createdAt": msg.CreatedAt,
		},
	})
}
