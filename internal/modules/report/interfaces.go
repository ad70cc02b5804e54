package report

import (
	"context"

	"github.com/alled0/databaseProject/internal/repository"
)

type ReportRepository interface {
	ActiveTrains(ctx context.Context, date string) ([]repository.ActiveTrain, error)
	StationsForTrains(ctx context.Context) ([]repository.TrainStations, error)
	ReservationsByPassenger(ctx context.Context, passengerID int64, date string) ([]repository.PassengerReservation, error)
	WaitlistedLoyaltyByTrain(ctx context.Context, trainID int64) ([]repository.WaitlistedLoyalty, error)
	LoadFactorByDate(ctx context.Context, date string) ([]repository.LoadFactor, error)
	DependentsByDate(ctx context.Context, date string) ([]repository.DependentTravel, error)
}
