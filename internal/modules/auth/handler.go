package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

// Login uses a "message" envelope instead of the usual error body; the web
// client reads that key.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		case errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "A server error occurred. Please try again later."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":  result.Role,
		"token": result.Token,
	})
}
