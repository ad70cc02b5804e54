package repository

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func toDomainTrain(m trainRow) domain.Train {
	return domain.Train{
		ID:          m.ID,
		EnglishName: m.EnglishName,
		ArabicName:  m.ArabicName,
	}
}

func (r *CatalogRepository) ListTrains(ctx context.Context) ([]domain.Train, error) {
	var rows []trainRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Train, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainTrain(m))
	}
	return out, nil
}

func (r *CatalogRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	var rows []stationRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Station, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Station{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// SearchTrains returns trains that stop at fromStation before toStation.
func (r *CatalogRepository) SearchTrains(ctx context.Context, fromStation, toStation int64) ([]domain.Train, error) {
	q := `
SELECT DISTINCT t.id, t.english_name, t.arabic_name
FROM trains t
JOIN schedule_stops s1 ON t.id = s1.train_id
JOIN schedule_stops s2 ON t.id = s2.train_id
WHERE s1.station_id = ? AND s2.station_id = ? AND s1.stop_sequence < s2.stop_sequence
`
	var rows []trainRow
	if tx := r.db.WithContext(ctx).Raw(q, fromStation, toStation).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Train, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainTrain(m))
	}
	return out, nil
}

func (r *CatalogRepository) TrainExists(ctx context.Context, trainID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&trainRow{}).Where("id = ?", trainID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *CatalogRepository) StationExists(ctx context.Context, stationID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&stationRow{}).Where("id = ?", stationID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
