package handler

import (
	"errors"
	"net/http"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/Aashish23092/finguide-ai/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      zerolog.Logger
}

func NewChatHandler(chatService *service.ChatService, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid chat request.", err)
		return
	}

	reply, err := h.chatService.Reply(c.Request.Context(), &req)
	switch {
	case errors.Is(err, dto.ErrProviderFailure):
		sendError(c, h.logger, http.StatusInternalServerError, MsgChatFailed, err)
		return
	case err != nil:
		sendError(c, h.logger, http.StatusBadRequest, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Message: reply})
}
