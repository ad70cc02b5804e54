package report

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/alled0/databaseProject/internal/repository"
)

var (
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrMissingPassengerID = errors.New("passenger id is required")
	ErrMissingTrainID     = errors.New("train id is required")
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Service struct {
	reports ReportRepository
}

func NewService(reports ReportRepository) *Service {
	return &Service{reports: reports}
}

// ActiveTrains defaults to today when no date is given.
func (s *Service) ActiveTrains(ctx context.Context, date string) ([]repository.ActiveTrain, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if !dateRe.MatchString(date) {
		return nil, ErrInvalidDate
	}
	return s.reports.ActiveTrains(ctx, date)
}

func (s *Service) StationsForTrains(ctx context.Context) ([]repository.TrainStations, error) {
	return s.reports.StationsForTrains(ctx)
}

func (s *Service) ReservationsByPassenger(ctx context.Context, passengerID int64, date string) ([]repository.PassengerReservation, error) {
	if passengerID == 0 {
		return nil, ErrMissingPassengerID
	}
	if date != "" && !dateRe.MatchString(date) {
		return nil, ErrInvalidDate
	}
	return s.reports.ReservationsByPassenger(ctx, passengerID, date)
}

func (s *Service) WaitlistedLoyaltyByTrain(ctx context.Context, trainID int64) ([]repository.WaitlistedLoyalty, error) {
	if trainID == 0 {
		return nil, ErrMissingTrainID
	}
	return s.reports.WaitlistedLoyaltyByTrain(ctx, trainID)
}

func (s *Service) LoadFactorByDate(ctx context.Context, date string) ([]repository.LoadFactor, error) {
	if !dateRe.MatchString(date) {
		return nil, ErrInvalidDate
	}
	return s.reports.LoadFactorByDate(ctx, date)
}

func (s *Service) DependentsByDate(ctx context.Context, date string) ([]repository.DependentTravel, error) {
	if !dateRe.MatchString(date) {
		return nil, ErrInvalidDate
	}
	return s.reports.DependentsByDate(ctx, date)
}
