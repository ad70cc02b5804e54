package assignment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/alled0/databaseProject/internal/domain"
)

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Upsert(ctx context.Context, a domain.StaffAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) ListByTrain(ctx context.Context, trainID int64) ([]domain.StaffAssignment, error) {
	args := m.Called(ctx, trainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffAssignment), args.Error(1)
}

type MockTrainChecker struct {
	mock.Mock
}

func (m *MockTrainChecker) TrainExists(ctx context.Context, trainID int64) (bool, error) {
	args := m.Called(ctx, trainID)
	return args.Bool(0), args.Error(1)
}

type MockStaffChecker struct {
	mock.Mock
}

func (m *MockStaffChecker) Exists(ctx context.Context, staffID int64) (bool, error) {
	args := m.Called(ctx, staffID)
	return args.Bool(0), args.Error(1)
}

func newTestService() (*Service, *MockAssignmentRepository, *MockTrainChecker, *MockStaffChecker) {
	assignments := new(MockAssignmentRepository)
	trains := new(MockTrainChecker)
	staff := new(MockStaffChecker)
	return NewService(assignments, trains, staff), assignments, trains, staff
}

func TestAssignStaff_Success(t *testing.T) {
	svc, assignments, trains, staff := newTestService()

	trains.On("TrainExists", mock.Anything, int64(1)).Return(true, nil)
	staff.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	assignments.On("Upsert", mock.Anything, domain.StaffAssignment{TrainID: 1, StaffID: 2, RoleCode: 2}).Return(nil)

	err := svc.AssignStaff(context.Background(), AssignStaffRequest{TrainID: 1, StaffID: 2, Role: "Engineer"})
	assert.NoError(t, err)
	assignments.AssertExpectations(t)
}

func TestAssignStaff_MissingFields(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.AssignStaff(context.Background(), AssignStaffRequest{TrainID: 1, StaffID: 2})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAssignStaff_UnknownRole(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.AssignStaff(context.Background(), AssignStaffRequest{TrainID: 1, StaffID: 2, Role: "Conductor"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAssignStaff_UnknownTrain(t *testing.T) {
	svc, _, trains, _ := newTestService()

	trains.On("TrainExists", mock.Anything, int64(9)).Return(false, nil)

	err := svc.AssignStaff(context.Background(), AssignStaffRequest{TrainID: 9, StaffID: 2, Role: "Driver"})
	assert.ErrorIs(t, err, ErrInvalidTrain)
}

func TestAssignStaff_UnknownStaff(t *testing.T) {
	svc, _, trains, staff := newTestService()

	trains.On("TrainExists", mock.Anything, int64(1)).Return(true, nil)
	staff.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	err := svc.AssignStaff(context.Background(), AssignStaffRequest{TrainID: 1, StaffID: 9, Role: "Driver"})
	assert.ErrorIs(t, err, ErrInvalidStaff)
}
