package waitlist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alled0/databaseProject/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/promotePassenger", h.PromotePassenger)
}

func (h *Handler) PromotePassenger(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid request body")
		return
	}

	details, err := h.service.PromotePassenger(c.Request.Context(), req.PassengerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingPassengerID):
			response.Error(c, http.StatusBadRequest, response.KindValidation, "Passenger ID is required.")
		case errors.Is(err, ErrNotInWaitlist):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Passenger not found in the waitlist.")
		default:
			response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		}
		return
	}

	response.OK(c, gin.H{
		"message":      "Passenger promoted successfully!",
		"trainDetails": details,
	})
}
