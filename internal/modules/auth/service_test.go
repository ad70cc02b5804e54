package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alled0/databaseProject/internal/domain"
)

type MockPassengerReader struct {
	mock.Mock
}

func (m *MockPassengerReader) FindByEmail(ctx context.Context, email string) (*domain.Passenger, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

type MockStaffReader struct {
	mock.Mock
}

func (m *MockStaffReader) FindByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func newTestService() (*Service, *MockPassengerReader, *MockStaffReader, *MockTokenIssuer) {
	passengers := new(MockPassengerReader)
	staff := new(MockStaffReader)
	tokens := new(MockTokenIssuer)
	return NewService(passengers, staff, tokens), passengers, staff, tokens
}

func TestLogin_Passenger(t *testing.T) {
	svc, passengers, _, tokens := newTestService()

	passengers.On("FindByEmail", mock.Anything, "ahmed@example.com").Return(&domain.Passenger{
		ID:           1,
		Email:        "ahmed@example.com",
		PasswordHash: mustHash(t, "secret"),
	}, nil)
	tokens.On("GenerateToken", int64(1), RolePassenger).Return("tok", nil)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "ahmed@example.com", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, RolePassenger, result.Role)
	assert.Equal(t, "tok", result.Token)
}

func TestLogin_StaffFallback(t *testing.T) {
	svc, passengers, staff, tokens := newTestService()

	passengers.On("FindByEmail", mock.Anything, "admin@railway.sa").Return(nil, gorm.ErrRecordNotFound)
	staff.On("FindByEmail", mock.Anything, "admin@railway.sa").Return(&domain.Staff{
		ID:           3,
		Email:        "admin@railway.sa",
		PasswordHash: mustHash(t, "admin123"),
	}, nil)
	tokens.On("GenerateToken", int64(3), RoleAdmin).Return("tok", nil)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "admin@railway.sa", Password: "admin123"})
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, result.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, passengers, _, _ := newTestService()

	passengers.On("FindByEmail", mock.Anything, "ahmed@example.com").Return(&domain.Passenger{
		ID:           1,
		PasswordHash: mustHash(t, "secret"),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ahmed@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, passengers, staff, _ := newTestService()

	passengers.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	staff.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ahmed@example.com"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}
