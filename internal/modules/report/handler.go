package report

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
	rg.GET("/reports/active-trains", h.ActiveTrains)
	rg.GET("/reports/stations-for-trains", h.TrainStations)
	rg.GET("/reports/reservations/:passengerID", h.PassengerReservations)
	rg.GET("/reports/waitlisted-loyalty/:trainNumber", h.WaitlistedLoyalty)
	rg.GET("/reports/load-factor/:date", h.LoadFactor)
	rg.GET("/reports/dependents/:date", h.Dependents)
}

func (h *Handler) ActiveTrains(c *gin.Context) {
	rows, err := h.service.ActiveTrains(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) TrainStations(c *gin.Context) {
	rows, err := h.service.StationsForTrains(c.Request.Context())
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) PassengerReservations(c *gin.Context) {
	passengerID, _ := strconv.ParseInt(c.Param("passengerID"), 10, 64)
	rows, err := h.service.ReservationsByPassenger(c.Request.Context(), passengerID, c.Query("date"))
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) WaitlistedLoyalty(c *gin.Context) {
	trainID, _ := strconv.ParseInt(c.Param("trainNumber"), 10, 64)
	rows, err := h.service.WaitlistedLoyaltyByTrain(c.Request.Context(), trainID)
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) LoadFactor(c *gin.Context) {
	rows, err := h.service.LoadFactorByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) Dependents(c *gin.Context) {
	rows, err := h.service.DependentsByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) reportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid date format. Use YYYY-MM-DD.")
	case errors.Is(err, ErrMissingPassengerID):
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Passenger ID is required.")
	case errors.Is(err, ErrMissingTrainID):
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Train ID is required.")
	default:
		response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
	}
}
