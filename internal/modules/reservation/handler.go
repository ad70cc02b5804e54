package reservation

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
	rg.POST("/bookSeat", h.BookSeat)
	rg.POST("/completePayment", h.CompletePayment)
	rg.POST("/manageReservations", h.Manage)
	rg.POST("/addPayment", h.AddPayment)
	rg.GET("/reservations/:id", h.Details)
}

func (h *Handler) BookSeat(c *gin.Context) {
	var req BookSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid request body")
		return
	}

	res, err := h.service.BookSeat(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.Error(c, http.StatusBadRequest, response.KindValidation, ve.Message)
		case errors.Is(err, ErrInvalidTrain):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Invalid TrainID. Please select a valid train.")
		case errors.Is(err, ErrInvalidFromStation):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Invalid FromStation.")
		case errors.Is(err, ErrInvalidToStation):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Invalid ToStation.")
		case errors.Is(err, ErrUnknownPassenger):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Invalid email. Please log in with a registered account.")
		case errors.Is(err, ErrSeatTaken):
			response.Error(c, http.StatusConflict, response.KindConflict, "Selected seat is already booked for this train and date.")
		default:
			response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		}
		return
	}

	response.OK(c, gin.H{
		"message":       "Reservation successful",
		"ReservationID": res.ID,
		"PaymentID":     res.PaymentID,
	})
}

func (h *Handler) CompletePayment(c *gin.Context) {
	var req CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid request body")
		return
	}

	if err := h.service.CompletePayment(c.Request.Context(), req.ReservationID); err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.Error(c, http.StatusBadRequest, response.KindValidation, ve.Message)
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Reservation not found.")
		default:
			response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		}
		return
	}

	response.OK(c, gin.H{"message": "Payment successful"})
}

func (h *Handler) Manage(c *gin.Context) {
	var req ManageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid request body")
		return
	}

	msg, reservationID, err := h.service.Manage(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingAction):
			response.Error(c, http.StatusBadRequest, response.KindValidation, "Action is required.")
		case errors.Is(err, ErrInvalidAction):
			response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid action. Allowed actions are Add, Edit, Cancel.")
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, response.KindValidation, "Missing required fields.")
		case errors.Is(err, ErrUnknownPassenger):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Invalid passenger email.")
		case errors.Is(err, ErrSeatTaken):
			response.Error(c, http.StatusConflict, response.KindConflict, "Selected seat is already booked for this train and date.")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Reservation not found.")
		default:
			response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		}
		return
	}

	body := gin.H{"message": msg}
	if reservationID != 0 {
		body["reservationID"] = reservationID
	}
	response.OK(c, body)
}

func (h *Handler) AddPayment(c *gin.Context) {
	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid request body")
		return
	}

	p, err := h.service.AddPayment(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.Error(c, http.StatusBadRequest, response.KindValidation, ve.Message)
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Reservation not found.")
		default:
			response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		}
		return
	}

	response.OK(c, gin.H{
		"message":   "Payment recorded",
		"paymentID": p.ID,
	})
}

func (h *Handler) Details(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.KindValidation, "Invalid reservation id")
		return
	}

	res, payments, err := h.service.Details(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.KindNotFound, "Reservation not found.")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.KindServer, "A server error occurred. Please try again later.")
		return
	}

	response.OK(c, gin.H{
		"reservation": res,
		"payments":    payments,
	})
}
