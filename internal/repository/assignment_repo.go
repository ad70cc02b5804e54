package repository

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Upsert inserts the assignment or, when the (train, staff) pair already
// exists, overwrites its role code.
func (r *AssignmentRepository) Upsert(ctx context.Context, a domain.StaffAssignment) error {
	row := staffAssignmentRow{
		TrainID:  a.TrainID,
		StaffID:  a.StaffID,
		RoleCode: a.RoleCode,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "train_id"}, {Name: "staff_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"role_code": a.RoleCode}),
	}).Create(&row).Error
}

func (r *AssignmentRepository) ListByTrain(ctx context.Context, trainID int64) ([]domain.StaffAssignment, error) {
	var rows []staffAssignmentRow
	tx := r.db.WithContext(ctx).Where("train_id = ?", trainID).Order("staff_id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.StaffAssignment, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.StaffAssignment{TrainID: m.TrainID, StaffID: m.StaffID, RoleCode: m.RoleCode})
	}
	return out, nil
}
