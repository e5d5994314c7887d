package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/yigit/stit/internal/app/models"
	"github.com/yigit/stit/internal/pkg/logger"
)

const (
	sessionUserID = "user_id"
	sessionRole   = "role"

	FlashSuccess = "success"
	FlashError   = "error"
)

// SessionConfig configures the signed cookie session store
type SessionConfig struct {
	Name   string
	Secret string
	MaxAge int // seconds
	Secure bool
}

// Sessions installs the cookie backed session store
func Sessions(cfg SessionConfig) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(cfg.Name, store)
}

// Flash is a one-shot notice shown on the next rendered page
type Flash struct {
	Category string
	Message  string
}

// StartSession replaces the session contents with the user's id and role
func StartSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionUserID, user.ID)
	session.Set(sessionRole, string(user.Role))
	return session.Save()
}

// ClearWithFlash clears the session, keeping only the given notice
func ClearWithFlash(c *gin.Context, category, message string) {
	sessions.Default(c).Clear()
	AddFlash(c, category, message)
}

// SessionUserID returns the user id stored in the session, or 0
func SessionUserID(c *gin.Context) int64 {
	id, _ := sessions.Default(c).Get(sessionUserID).(int64)
	return id
}

// SessionRole returns the role stored in the session
func SessionRole(c *gin.Context) models.RoleType {
	role, _ := sessions.Default(c).Get(sessionRole).(string)
	return models.RoleType(role)
}

// AddFlash queues a notice and saves the session
func AddFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		logger.Warn().Err(err).Msg("Failed to save flash message")
	}
}

// Flashes drains the queued notices, success first
func Flashes(c *gin.Context) []Flash {
	session := sessions.Default(c)

	var out []Flash
	for _, category := range []string{FlashSuccess, FlashError} {
		for _, v := range session.Flashes(category) {
			if msg, ok := v.(string); ok {
				out = append(out, Flash{Category: category, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		if err := session.Save(); err != nil {
			logger.Warn().Err(err).Msg("Failed to save session after reading flashes")
		}
	}
	return out
}

// Redirect sends a 302 to path
func Redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, path)
	c.Abort()
}
