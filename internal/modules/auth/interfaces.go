package auth

import (
	"context"

	"github.com/alled0/databaseProject/internal/domain"
)

type PassengerReader interface {
	FindByEmail(ctx context.Context, email string) (*domain.Passenger, error)
}

type StaffReader interface {
	FindByEmail(ctx context.Context, email string) (*domain.Staff, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
