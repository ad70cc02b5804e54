package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RolePassenger = "Passenger"
	RoleAdmin     = "Admin"
)

type Service struct {
	passengers PassengerReader
	staff      StaffReader
	tokens     TokenIssuer
}

func NewService(passengers PassengerReader, staff StaffReader, tokens TokenIssuer) *Service {
	return &Service{
		passengers: passengers,
		staff:      staff,
		tokens:     tokens,
	}
}

// Login checks the passenger table first and falls back to staff. A staff
// login gets the Admin role. Password hashes are never compared directly;
// bcrypt does the verification.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	p, err := s.passengers.FindByEmail(ctx, req.Email)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.issue(p.ID, RolePassenger)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	st, err := s.staff.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(st.ID, RoleAdmin)
}

func (s *Service) issue(userID int64, role string) (*LoginResult, error) {
	token, err := s.tokens.GenerateToken(userID, role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Role: role, Token: token}, nil
}
