package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"venuedesk/internal/app/auth"
)

type AuthHandler struct {
	Service *auth.Service
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

func (h AuthHandler) Logout(c *gin.Context) {
	p, ok := requireAdmin(c)
	if !ok {
		return
	}
	if err := h.Service.Logout(c.Request.Context(), p.Token); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var _ AuthHTTP = AuthHandler{}
