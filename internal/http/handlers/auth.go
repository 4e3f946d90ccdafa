package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachbooking/internal/domain/models"
)

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Auth.Login(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Session.Current())
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Auth.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Auth.Register(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// PUT /api/auth/password
func (h *Handler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Auth.ChangePassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/auth/session
func (h *Handler) GetSession(c *gin.Context) {
	sess := h.Session.Current()
	c.JSON(http.StatusOK, gin.H{
		"loggedIn":         sess.LoggedIn(),
		"loggedInUsername": sess.Username,
	})
}

// GET /api/auth/availability?field=username&value=...
//
// Backs the registration form's taken/free hints.
func (h *Handler) CheckAvailability(c *gin.Context) {
	field := c.Query("field")
	value := c.Query("value")

	var (
		taken bool
		err   error
	)
	switch field {
	case "username":
		taken, err = h.AuthRepo.CheckExistUsername(c.Request.Context(), value)
	case "email":
		taken, err = h.AuthRepo.CheckExistEmail(c.Request.Context(), value)
	case "phone":
		taken, err = h.AuthRepo.CheckExistPhone(c.Request.Context(), value)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "trường kiểm tra không hợp lệ"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"field": field, "value": value, "taken": taken})
}
