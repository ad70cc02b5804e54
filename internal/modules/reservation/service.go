package reservation

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/alled0/databaseProject/internal/domain"
	"github.com/alled0/databaseProject/internal/pkg/validator"
)

// Flat-fare pricing; every seat is charged the same until a fare table
// exists.
const (
	defaultVAT    = 15.00
	defaultAmount = 100.00
)

type Service struct {
	reservations ReservationRepository
	catalog      CatalogRepository
	passengers   PassengerResolver
}

func NewService(reservations ReservationRepository, catalog CatalogRepository, passengers PassengerResolver) *Service {
	return &Service{
		reservations: reservations,
		catalog:      catalog,
		passengers:   passengers,
	}
}

// BookSeat validates the trip, resolves the passenger and creates the
// reservation together with its pending payment.
func (s *Service) BookSeat(ctx context.Context, req BookSeatRequest) (*domain.Reservation, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, &ValidationError{Message: msg}
	}
	if req.FromStation == req.ToStation {
		return nil, &ValidationError{Message: "FromStation and ToStation must differ"}
	}

	ok, err := s.catalog.TrainExists(ctx, req.TrainID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTrain
	}

	ok, err = s.catalog.StationExists(ctx, req.FromStation)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidFromStation
	}

	ok, err = s.catalog.StationExists(ctx, req.ToStation)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidToStation
	}

	passengerID, err := s.passengers.FindIDByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownPassenger
		}
		return nil, err
	}

	res := &domain.Reservation{
		TrainID:     req.TrainID,
		Date:        req.Date,
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		CoachType:   domain.CoachType(req.CoachType),
		SeatNumber:  req.SeatNumber,
		PassengerID: passengerID,
	}

	if err := s.reservations.CreateWithPayment(ctx, res, defaultVAT, defaultAmount); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSeatTaken
		}
		return nil, err
	}
	return res, nil
}

// CompletePayment flips the reservation to paid. Calling it again for an
// already-paid reservation succeeds the same way.
func (s *Service) CompletePayment(ctx context.Context, reservationID int64) error {
	if reservationID == 0 {
		return &ValidationError{Message: "reservationID is required"}
	}

	affected, err := s.reservations.MarkPaid(ctx, reservationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddPayment records an extra payment row against a reservation.
func (s *Service) AddPayment(ctx context.Context, req AddPaymentRequest) (*domain.Payment, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, &ValidationError{Message: msg}
	}

	if _, err := s.reservations.GetByID(ctx, req.ResID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	status := domain.PaymentStatus(req.PaymentStatus)
	if status == "" {
		status = domain.PaymentPending
	}

	p := &domain.Payment{
		ResID:  req.ResID,
		VAT:    req.VAT,
		Amount: req.Amount,
		Status: status,
	}
	if err := s.reservations.CreatePayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Details returns a reservation with every payment row that references it.
func (s *Service) Details(ctx context.Context, reservationID int64) (*domain.Reservation, []domain.Payment, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	payments, err := s.reservations.PaymentsByReservation(ctx, reservationID)
	if err != nil {
		return nil, nil, err
	}
	return res, payments, nil
}

// Manage dispatches the admin Add/Edit/Cancel actions. The returned id is
// non-zero only for Add, which reports the created reservation.
func (s *Service) Manage(ctx context.Context, req ManageRequest) (string, int64, error) {
	switch req.Action {
	case "":
		return "", 0, ErrMissingAction
	case "Add":
		return s.addReservation(ctx, req)
	case "Edit":
		msg, err := s.editReservation(ctx, req)
		return msg, 0, err
	case "Cancel":
		msg, err := s.cancelReservation(ctx, req)
		return msg, 0, err
	default:
		return "", 0, ErrInvalidAction
	}
}

func (s *Service) addReservation(ctx context.Context, req ManageRequest) (string, int64, error) {
	// TrainID is optional on Add; the admin form may assign the train later
	// through an Edit.
	d := req.Details
	if req.PassengerEmail == "" || d == nil ||
		d.Date == nil || d.FromStation == nil ||
		d.ToStation == nil || d.CoachType == nil || d.SeatNumber == nil {
		return "", 0, ErrMissingFields
	}

	passengerID, err := s.passengers.FindIDByEmail(ctx, req.PassengerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, ErrUnknownPassenger
		}
		return "", 0, err
	}

	// Unlike bookSeat, the admin path creates no payment row.
	res := &domain.Reservation{
		Date:        *d.Date,
		FromStation: *d.FromStation,
		ToStation:   *d.ToStation,
		CoachType:   domain.CoachType(*d.CoachType),
		SeatNumber:  *d.SeatNumber,
		PassengerID: passengerID,
	}
	if d.TrainID != nil {
		res.TrainID = *d.TrainID
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		if isUniqueViolation(err) {
			return "", 0, ErrSeatTaken
		}
		return "", 0, err
	}
	return "Reservation added successfully.", res.ID, nil
}

func (s *Service) editReservation(ctx context.Context, req ManageRequest) (string, error) {
	if req.ReservationID == 0 || req.Details == nil {
		return "", ErrMissingFields
	}

	updates := map[string]interface{}{}
	d := req.Details
	if d.TrainID != nil {
		updates["train_id"] = *d.TrainID
	}
	if d.Date != nil {
		updates["date"] = *d.Date
	}
	if d.FromStation != nil {
		updates["from_station"] = *d.FromStation
	}
	if d.ToStation != nil {
		updates["to_station"] = *d.ToStation
	}
	if d.CoachType != nil {
		updates["coach_type"] = *d.CoachType
	}
	if d.SeatNumber != nil {
		updates["seat_number"] = *d.SeatNumber
	}

	affected, err := s.reservations.UpdateFields(ctx, req.ReservationID, updates)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrSeatTaken
		}
		return "", err
	}
	if affected == 0 {
		return "", ErrNotFound
	}
	return "Reservation updated successfully.", nil
}

func (s *Service) cancelReservation(ctx context.Context, req ManageRequest) (string, error) {
	if req.ReservationID == 0 {
		return "", ErrMissingFields
	}

	affected, err := s.reservations.DeleteCascade(ctx, req.ReservationID)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", ErrNotFound
	}
	return "Reservation cancelled successfully.", nil
}

// isUniqueViolation recognizes duplicate-key failures across the drivers we
// run against: pgx reports SQLSTATE 23505, sqlite and mysql surface the
// constraint in the message text.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "constraint")
}
