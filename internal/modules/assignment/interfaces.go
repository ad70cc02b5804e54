package assignment

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
)

type AssignmentRepository interface {
	Upsert(ctx context.Context, a domain.StaffAssignment) error
	ListByTrain(ctx context.Context, trainID int64) ([]domain.StaffAssignment, error)
}

type TrainChecker interface {
	TrainExists(ctx context.Context, trainID int64) (bool, error)
}

type StaffChecker interface {
	Exists(ctx context.Context, staffID int64) (bool, error)
}
