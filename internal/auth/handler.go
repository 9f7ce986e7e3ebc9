package auth

import (
	"net/http"

	"pearl/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CookieName carries the session token for browser clients.
const CookieName = "pearl_session"

type Handler struct {
	service      *Service
	sessions     session.Store
	tokens       *Tokens
	log          logrus.FieldLogger
	secureCookie bool
}

func NewHandler(
	service *Service,
	sessions session.Store,
	tokens *Tokens,
	log logrus.FieldLogger,
	secureCookie bool,
) *Handler {
	return &Handler{
		service:      service,
		sessions:     sessions,
		tokens:       tokens,
		log:          log,
		secureCookie: secureCookie,
	}
}

type credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// --------------------------------------------------
// POST /api/register
// --------------------------------------------------
func (h *Handler) Register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request"})
		return
	}

	_, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	case errors.Is(err, ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Missing fields"})
	case errors.Is(err, ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Username already exists"})
	default:
		h.log.WithError(err).Error("register failed")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "registration failed"})
	}
}

// --------------------------------------------------
// POST /api/login
// --------------------------------------------------
func (h *Handler) APILogin(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request"})
		return
	}

	user, token, err := h.login(c, req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Invalid credentials"})
			return
		}
		h.log.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"role":   user.Role,
		"token":  token,
	})
}

// --------------------------------------------------
// POST /login (JSON from the modal or a plain form post)
// --------------------------------------------------
func (h *Handler) FormLogin(c *gin.Context) {
	var req credentials
	if c.ContentType() == gin.MIMEJSON {
		_ = c.ShouldBindJSON(&req)
	} else {
		req.Username = c.PostForm("username")
		req.Password = c.PostForm("password")
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username or password missing"})
		return
	}

	user, token, err := h.login(c, req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		h.log.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    user.Role,
		"token":   token,
	})
}

// login verifies credentials, opens a server-side session and sets the cookie.
func (h *Handler) login(c *gin.Context, req credentials) (*User, string, error) {
	ctx := c.Request.Context()

	user, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, "", err
	}

	sess := &session.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Cart:     session.NewCart(),
	}
	if err := h.sessions.Create(ctx, sess); err != nil {
		return nil, "", errors.Wrap(err, "create session")
	}

	token, err := h.tokens.Generate(Claims{
		SessionID: sess.ID,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "generate token")
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(tokenTTL.Seconds()), "/", "", h.secureCookie, true)

	h.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user logged in")
	return user, token, nil
}

// --------------------------------------------------
// GET|POST /logout
// --------------------------------------------------
func (h *Handler) Logout(c *gin.Context) {
	if sess, ok := session.Current(c); ok {
		if err := h.sessions.Delete(c.Request.Context(), sess.ID); err != nil {
			h.log.WithError(err).Warn("delete session failed")
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// --------------------------------------------------
// GET /api/me
// --------------------------------------------------
func (h *Handler) Me(c *gin.Context) {
	sess, ok := session.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  sess.UserID,
		"username": sess.Username,
		"role":     sess.Role,
	})
}

type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// Admin: GET /admin/users
// --------------------------------------------------
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}
