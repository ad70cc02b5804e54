package repository

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Exists(ctx context.Context, staffID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&staffRow{}).Where("id = ?", staffID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	var m staffRow
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Staff{ID: m.ID, Email: m.Email, PasswordHash: m.PasswordHash}, nil
}
