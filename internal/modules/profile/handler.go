package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alled0/databaseProject/internal/middleware"
	"github.com/alled0/databaseProject/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects rg to already carry the JWT middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64(middleware.ContextUserID)
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, response.KindUnauthorized, "invalid or expired token")
		return
	}

	p, deps, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Passenger not found.")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		return
	}

	response.OK(c, gin.H{
		"passenger":  p,
		"dependents": deps,
	})
}
