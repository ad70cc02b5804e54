package catalog

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
)

type Service struct {
	catalog CatalogRepository
}

func NewService(catalog CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) Trains(ctx context.Context) ([]domain.Train, error) {
	return s.catalog.ListTrains(ctx)
}

func (s *Service) Stations(ctx context.Context) ([]domain.Station, error) {
	return s.catalog.ListStations(ctx)
}

// Search lists the trains that stop at fromStation before toStation. A train
// passing through both stations in the other direction does not match.
func (s *Service) Search(ctx context.Context, fromStation, toStation int64) ([]domain.Train, error) {
	return s.catalog.SearchTrains(ctx, fromStation, toStation)
}
