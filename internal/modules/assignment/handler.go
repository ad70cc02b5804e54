package assignment

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/assignStaff", h.AssignStaff)
	rg.GET("/trains/:id/staff", h.TrainCrew)
}

func (h *Handler) AssignStaff(c *gin.Context) {
	var req AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid request body")
		return
	}

	if err := h.service.AssignStaff(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, response.KindValidation, "Train ID, Staff ID, and Role are required.")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid role. Allowed roles are Driver, Engineer.")
		case errors.Is(err, ErrInvalidTrain):
			response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid Train ID.")
		case errors.Is(err, ErrInvalidStaff):
			response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid Staff ID.")
		default:
			response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		}
		return
	}

	response.OK(c, gin.H{"message": "Staff assigned successfully."})
}

func (h *Handler) TrainCrew(c *gin.Context) {
	trainID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid Train ID.")
		return
	}

	crew, err := h.service.TrainCrew(c.Request.Context(), trainID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, crew)
}
