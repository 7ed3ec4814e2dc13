package handlers

import (
	"net/http"

	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	*BaseHandler
	chatService *services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/chat", h.Chat)
}

// Chat всегда отвечает 200: у чата нет состояния, которое можно
// испортить, поэтому даже кривое тело запроса получает дефолтный ответ.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	_ = c.ShouldBindJSON(&req)

	reply := h.chatService.Reply(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}
