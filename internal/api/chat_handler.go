package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healieve/health-app/internal/service"
)

// ChatHandler holds the chat service dependency.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ChatResponse struct {
	Text string `json:"text"`
}

// Ask relays a single prompt to the model and returns its reply.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	text, err := h.chatService.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPrompt) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Chat is temporarily unavailable")
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Text: text})
}
