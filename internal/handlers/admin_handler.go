package handlers

import (
	"net/http"

	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	submissionService *services.SubmissionService
}

func NewAdminHandler(base *BaseHandler, submissionService *services.SubmissionService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:       base,
		submissionService: submissionService,
	}
}

// RegisterRoutes вешает маршруты на уже защищенные гейтом группы
func (h *AdminHandler) RegisterRoutes(adminPages, apiAdmin *gin.RouterGroup) {
	adminPages.GET("", h.Dashboard)

	apiAdmin.GET("/submissions", h.ListSubmissions)
	apiAdmin.PATCH("/submissions/:id/status", h.UpdateStatus)
	apiAdmin.DELETE("/submissions/:id", h.DeleteSubmission)
}

// Dashboard отдает счетчики по статусам и список заявок новые-первыми
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.submissionService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.StatusUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.submissionService.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) DeleteSubmission(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.submissionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
