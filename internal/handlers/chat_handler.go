package handlers

import (
	"net/http"

	"finance-coach/internal/dto"
	"finance-coach/internal/errors"
	"finance-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// ChatHandler handles conversational HTTP requests
type ChatHandler struct {
	chat    services.ChatServiceInterface
	metrics services.MetricsRecorderInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat services.ChatServiceInterface, metrics services.MetricsRecorderInterface) *ChatHandler {
	return &ChatHandler{chat: chat, metrics: metrics}
}

// Chat answers a free-form financial question
// @Summary Chat
// @Description Answer a financial question grounded in the caller's financial snapshot
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and optional context"
// @Success 200 {object} models.ChatReply "Chat reply"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	reply := h.chat.Reply(c.Request().Context(), req.Message, req.Context.ToChatContext())

	if h.metrics != nil {
		h.metrics.RecordAnalysis("chat", "success")
	}

	return c.JSON(http.StatusOK, reply)
}
