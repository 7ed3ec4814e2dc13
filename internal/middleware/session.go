package middleware

import (
	"net/http"
	"strings"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	// SessionName - имя cookie админской сессии
	SessionName = "portfolio_admin"

	sessionAdminIDKey = "admin_id"

	// ContextAdminIDKey - ключ gin-контекста с ID аутентифицированного
	// админа. Хендлеры читают его оттуда, глобального состояния нет.
	ContextAdminIDKey = "adminID"

	loginPath = "/admin/login"
)

// NewSessionStore создает подписанный cookie store для серверных сессий
func NewSessionStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SetAdminSession привязывает сессию к ID админа
func SetAdminSession(c *gin.Context, store sessions.Store, adminID uint) error {
	session, _ := store.Get(c.Request, SessionName)
	session.Values[sessionAdminIDKey] = adminID
	return session.Save(c.Request, c.Writer)
}

// ClearAdminSession сбрасывает сессию безусловно
func ClearAdminSession(c *gin.Context, store sessions.Store) error {
	session, _ := store.Get(c.Request, SessionName)
	delete(session.Values, sessionAdminIDKey)
	session.Options.MaxAge = -1
	return session.Save(c.Request, c.Writer)
}

func adminIDFromSession(store sessions.Store, r *http.Request) (uint, bool) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		// Битая или переподписанная cookie равносильна ее отсутствию
		return 0, false
	}
	adminID, ok := session.Values[sessionAdminIDKey].(uint)
	return adminID, ok
}

// RequireAdmin - гейт админских маршрутов. API-запросы без сессии
// получают 401 JSON, браузерная навигация - редирект на логин.
func RequireAdmin(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := adminIDFromSession(store, c.Request)
		if !ok {
			logger.CtxWarn(c.Request.Context(), "unauthenticated admin request",
				"path", c.Request.URL.Path, "ip", c.ClientIP())

			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				apperrors.HandleError(c, apperrors.ErrUnauthorized)
				c.Abort()
				return
			}
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(ContextAdminIDKey, adminID)
		c.Request = c.Request.WithContext(logger.WithAdminID(c.Request.Context(), adminID))
		c.Next()
	}
}
