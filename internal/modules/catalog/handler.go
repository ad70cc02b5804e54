package catalog

import (
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
	rg.GET("/trains", h.Trains)
	rg.GET("/stations", h.Stations)
	rg.GET("/searchTrains", h.SearchTrains)
}

// Catalog endpoints return bare JSON arrays; the web client consumes them
// directly.
func (h *Handler) Trains(c *gin.Context) {
	trains, err := h.service.Trains(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		return
	}
	c.JSON(http.StatusOK, trains)
}

func (h *Handler) Stations(c *gin.Context) {
	stations, err := h.service.Stations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		return
	}
	c.JSON(http.StatusOK, stations)
}

func (h *Handler) SearchTrains(c *gin.Context) {
	fromStr := c.Query("fromStation")
	toStr := c.Query("toStation")
	if fromStr == "" || toStr == "" {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "fromStation and toStation are required")
		return
	}

	from, err := strconv.ParseInt(fromStr, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "fromStation and toStation are required")
		return
	}
	to, err := strconv.ParseInt(toStr, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "fromStation and toStation are required")
		return
	}

	trains, err := h.service.Search(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		return
	}
	c.JSON(http.StatusOK, trains)
}
