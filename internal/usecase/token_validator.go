package usecase

import (
	"slices"

	"venue-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Permissions carried in access tokens.
const (
	PermissionBookingsRead   = "bookings:read"
	PermissionBookingsWrite  = "bookings:write"
	PermissionPaymentsWrite  = "payments:write"
	PermissionBlackoutsWrite = "blackouts:write"
)

// Principal is the authenticated caller.
type Principal struct {
	UserID      uuid.UUID
	Role        string
	Permissions []string
}

func (p Principal) Can(permission string) bool {
	return slices.Contains(p.Permissions, permission)
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &Principal{
		UserID:      claims.UserID,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}, nil
}
