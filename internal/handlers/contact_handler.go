package handlers

import (
	"net/http"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contactService *services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/contact", h.Submit)
}

// Submit принимает заявку контактной формы. Какие поля обязательны и
// как они нормализуются, решает сервис; здесь только привязка тела.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.CtxWarn(c.Request.Context(), "malformed contact payload", "error", err.Error())
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	submission, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ContactResponse{
		OK:      true,
		Message: "Message sent successfully!",
		ID:      submission.ID,
	})
}
