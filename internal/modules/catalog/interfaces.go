package catalog

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
)

type CatalogRepository interface {
	ListTrains(ctx context.Context) ([]domain.Train, error)
	ListStations(ctx context.Context) ([]domain.Station, error)
	SearchTrains(ctx context.Context, fromStation, toStation int64) ([]domain.Train, error)
}
