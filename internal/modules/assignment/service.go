package assignment

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
)

type Service struct {
	assignments AssignmentRepository
	trains      TrainChecker
	staff       StaffChecker
}

func NewService(assignments AssignmentRepository, trains TrainChecker, staff StaffChecker) *Service {
	return &Service{
		assignments: assignments,
		trains:      trains,
		staff:       staff,
	}
}

// AssignStaff puts a staff member on a train in the given role. Assigning
// the same pair again replaces the role instead of failing.
func (s *Service) AssignStaff(ctx context.Context, req AssignStaffRequest) error {
	if req.TrainID == 0 || req.StaffID == 0 || req.Role == "" {
		return ErrMissingFields
	}

	role := domain.StaffRole(req.Role)
	if role.Code() == 0 {
		return ErrInvalidRole
	}

	ok, err := s.trains.TrainExists(ctx, req.TrainID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidTrain
	}

	ok, err = s.staff.Exists(ctx, req.StaffID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidStaff
	}

	return s.assignments.Upsert(ctx, domain.StaffAssignment{
		TrainID:  req.TrainID,
		StaffID:  req.StaffID,
		RoleCode: role.Code(),
	})
}

// TrainCrew lists the staff assigned to a train.
func (s *Service) TrainCrew(ctx context.Context, trainID int64) ([]domain.StaffAssignment, error) {
	return s.assignments.ListByTrain(ctx, trainID)
}
