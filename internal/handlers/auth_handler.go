package handlers

import (
	"fmt"
	"net/http"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

type AuthHandler struct {
	*BaseHandler
	authService *services.AuthService
	store       sessions.Store
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService, store sessions.Store) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		store:       store,
	}
}

func (h *AuthHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/login", h.LoginPage)
	admin.POST("/login", h.Login)
	admin.GET("/logout", h.Logout)
}

// loginPageHTML - минимальная страница логина; фронтенд сайта живет
// отдельно, бекенду хватает голой формы.
const loginPageHTML = `<!DOCTYPE html>
<html>
<head><title>Admin Login</title></head>
<body>
<h1>Admin Login</h1>
%s<form method="post" action="/admin/login">
<label>Email <input type="email" name="email" required></label><br>
<label>Password <input type="password" name="password" required></label><br>
<button type="submit">Sign in</button>
</form>
</body>
</html>`

func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "")
}

// Login проверяет форму и устанавливает сессию. Ответ об ошибке общий,
// без указания, какое из полей было неверным.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderLogin(c, http.StatusBadRequest, "Invalid form submission")
		return
	}

	admin, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeInvalidCredentials {
			h.renderLogin(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.CtxWithError(c.Request.Context(), "admin login failed", err)
		h.renderLogin(c, http.StatusInternalServerError, "Something went wrong, try again")
		return
	}

	if err := middleware.SetAdminSession(c, h.store, admin.ID); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to save admin session", err)
		h.renderLogin(c, http.StatusInternalServerError, "Something went wrong, try again")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Logout сбрасывает сессию безусловно, даже если ее не было
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearAdminSession(c, h.store); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to clear admin session", err)
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, errorMsg string) {
	errorBlock := ""
	if errorMsg != "" {
		errorBlock = fmt.Sprintf("<p>%s</p>\n", errorMsg)
	}
	c.Data(status, "text/html; charset=utf-8", []byte(fmt.Sprintf(loginPageHTML, errorBlock)))
}
