package reservation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alled0/databaseProject/internal/database"
	"github.com/alled0/databaseProject/internal/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	seedTestData(t, db)

	svc := NewService(
		repository.NewReservationRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewPassengerRepository(db),
	)
	handler := NewHandler(svc)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))
	return router, db
}

func seedTestData(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec("INSERT INTO trains (id, english_name, arabic_name) VALUES (1, 'HHR100', 'قطار الحرمين 100')").Error)
	require.NoError(t, db.Exec("INSERT INTO stations (id, name) VALUES (1, 'Riyadh'), (2, 'Jeddah'), (3, 'Makkah')").Error)
	require.NoError(t, db.Exec("INSERT INTO passengers (id, name, email, password_hash, loyalty_stat) VALUES (1, 'Ahmed Ali', 'ahmed@example.com', 'x', 'Gold')").Error)
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookBody() gin.H {
	return gin.H{
		"TrainID":     1,
		"Date":        "2026-09-15",
		"FromStation": 1,
		"ToStation":   3,
		"CoachType":   "Economy",
		"SeatNumber":  "12A",
		"email":       "ahmed@example.com",
	}
}

func TestBookSeatEndpoint(t *testing.T) {
	router, db := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/bookSeat", bookBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message       string `json:"message"`
		ReservationID int64  `json:"ReservationID"`
		PaymentID     int64  `json:"PaymentID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Reservation successful", resp.Message)
	require.NotZero(t, resp.ReservationID)
	require.NotZero(t, resp.PaymentID)

	// The payment row and the back-reference both landed.
	var paymentCount int64
	require.NoError(t, db.Table("payments").Where("res_id = ?", resp.ReservationID).Count(&paymentCount).Error)
	require.Equal(t, int64(1), paymentCount)

	var linked int64
	require.NoError(t, db.Table("reservations").
		Where("id = ? AND payment_id = ?", resp.ReservationID, resp.PaymentID).
		Count(&linked).Error)
	require.Equal(t, int64(1), linked)
}

func TestBookSeatEndpoint_DuplicateSeat(t *testing.T) {
	router, _ := setupRouter(t)

	require.Equal(t, http.StatusOK, performRequest(router, http.MethodPost, "/bookSeat", bookBody()).Code)

	w := performRequest(router, http.MethodPost, "/bookSeat", bookBody())
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Kind string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "CONFLICT", resp.Kind)
}

func TestBookSeatEndpoint_UnknownTrain(t *testing.T) {
	router, _ := setupRouter(t)

	body := bookBody()
	body["TrainID"] = 99
	w := performRequest(router, http.MethodPost, "/bookSeat", body)

	// Unknown references are missing resources, not malformed input.
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Invalid TrainID. Please select a valid train.")
	require.Contains(t, w.Body.String(), `"kind":"NOT_FOUND"`)
}

func TestCompletePaymentEndpoint(t *testing.T) {
	router, db := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/bookSeat", bookBody())
	require.Equal(t, http.StatusOK, w.Code)
	var booked struct {
		ReservationID int64 `json:"ReservationID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))

	w = performRequest(router, http.MethodPost, "/completePayment", gin.H{"reservationID": booked.ReservationID})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Payment successful")

	var paid int64
	require.NoError(t, db.Table("reservations").
		Where("id = ? AND paid = ?", booked.ReservationID, true).
		Count(&paid).Error)
	require.Equal(t, int64(1), paid)

	// Completing again is not an error.
	w = performRequest(router, http.MethodPost, "/completePayment", gin.H{"reservationID": booked.ReservationID})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCompletePaymentEndpoint_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/completePayment", gin.H{"reservationID": 9999})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Reservation not found.")
}

func TestManageEndpoint_CancelRemovesPayments(t *testing.T) {
	router, db := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/bookSeat", bookBody())
	require.Equal(t, http.StatusOK, w.Code)
	var booked struct {
		ReservationID int64 `json:"ReservationID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))

	w = performRequest(router, http.MethodPost, "/manageReservations", gin.H{
		"action":        "Cancel",
		"reservationID": booked.ReservationID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Reservation cancelled successfully.")

	var remaining int64
	require.NoError(t, db.Table("payments").Where("res_id = ?", booked.ReservationID).Count(&remaining).Error)
	require.Zero(t, remaining)

	// A second cancel has nothing left to remove.
	w = performRequest(router, http.MethodPost, "/manageReservations", gin.H{
		"action":        "Cancel",
		"reservationID": booked.ReservationID,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestManageEndpoint_AddReturnsID(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/manageReservations", gin.H{
		"action":         "Add",
		"passengerEmail": "ahmed@example.com",
		"details": gin.H{
			"Date":        "2026-09-15",
			"FromStation": 1,
			"ToStation":   3,
			"CoachType":   "Economy",
			"SeatNumber":  "20D",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message       string `json:"message"`
		ReservationID int64  `json:"reservationID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Reservation added successfully.", resp.Message)
	require.NotZero(t, resp.ReservationID)
}

func TestManageEndpoint_InvalidAction(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/manageReservations", gin.H{"action": "Remove"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid action. Allowed actions are Add, Edit, Cancel.")
}
