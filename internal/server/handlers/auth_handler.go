package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
	"github.com/arsathrahman00-arsath/fpda/internal/service/auth"
)

const sessionCookieMaxAge = 0 // session cookie, no expiry beyond logout

// AuthHandler exposes register, login and logout.
type AuthHandler struct {
	manager    *auth.Manager
	cookieName string
	logger     *zap.Logger
}

// NewAuthHandler constructs the HTTP handler adapter.
func NewAuthHandler(manager *auth.Manager, cookieName string, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{manager: manager, cookieName: cookieName, logger: logger}
}

// Register forwards a sign-up to the backend.
func (h *AuthHandler) Register(c *gin.Context) {
	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload"})
		return
	}

	if err := h.manager.Register(c.Request.Context(), reg); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// Login authenticates and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_name and password are required"})
		return
	}

	id, session, err := h.manager.Login(c.Request.Context(), creds)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.SetCookie(h.cookieName, id, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, session)
}

// Logout clears the session on both sides.
func (h *AuthHandler) Logout(c *gin.Context) {
	id, err := c.Cookie(h.cookieName)
	if err == nil && id != "" {
		if err := h.manager.Logout(c.Request.Context(), id); err != nil {
			h.logger.Warn("logout cleanup failed", zap.Error(err))
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// RequireSession resolves the session cookie and stores the user on the
// request context, rejecting unauthenticated requests.
func RequireSession(manager *auth.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		session, err := manager.Resolve(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		c.Set(sessionKey, *session)
		c.Next()
	}
}

// currentUser reads the session placed by RequireSession. The empty session
// only appears on routes wired without the middleware.
func currentUser(c *gin.Context) models.UserSession {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(models.UserSession); ok {
			return session
		}
	}
	return models.UserSession{}
}
