package handlers

import (
	"crypto/subtle"
	"net/http"
	"path/filepath"

	"github.com/CEMAMI09/EVOQFORMS/internal/config"
	"github.com/CEMAMI09/EVOQFORMS/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionTokenKey is the cookie-session key carrying the opaque session token.
const SessionTokenKey = "token"

type AuthHandler struct {
	log          *zap.Logger
	store        *session.Store
	username     string
	passwordHash []byte
}

// NewAuthHandler hashes the configured admin password once so every login
// goes through a bcrypt comparison.
func NewAuthHandler(log *zap.Logger, store *session.Store) *AuthHandler {
	hash, err := bcrypt.GenerateFromPassword([]byte(config.Conf.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password", zap.Error(err))
	}
	return &AuthHandler{
		log:          log,
		store:        store,
		username:     config.Conf.Admin.Username,
		passwordHash: hash,
	}
}

// ShowLoginPage serves the login form, or skips it for an already
// authenticated browser.
func (h *AuthHandler) ShowLoginPage(c *gin.Context) {
	if _, loggedIn := c.Get("session"); loggedIn {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.File(filepath.Join(config.Conf.Web.Directory, "login.html"))
}

// Login checks the single credential pair. A mismatch in either field yields
// the same response, without revealing which one was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)) == nil
	if !usernameOK || !passwordOK {
		h.log.Warn("Failed login attempt", zap.String("client_ip", c.ClientIP()))
		c.String(http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	sess := h.store.Create(username)

	cookie := sessions.Default(c)
	cookie.Set(SessionTokenKey, sess.Token)
	if err := cookie.Save(); err != nil {
		h.log.Error("Failed to save session cookie", zap.Error(err))
		h.store.Delete(sess.Token)
		c.String(http.StatusInternalServerError, "Failed to login")
		return
	}

	h.log.Info("Admin logged in", zap.String("username", username))
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout destroys the server-side session and clears the cookie. Any later
// use of the old token is treated as unauthenticated.
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie := sessions.Default(c)
	if token, ok := cookie.Get(SessionTokenKey).(string); ok {
		h.store.Delete(token)
	}
	cookie.Clear()
	cookie.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := cookie.Save(); err != nil {
		h.log.Error("Failed to clear session cookie", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to logout")
		return
	}

	c.Redirect(http.StatusFound, "/login")
}
