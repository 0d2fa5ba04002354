//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// AllPermissions is what a venue manager's token carries.
var AllPermissions = []string{
	usecase.PermissionBookingsRead,
	usecase.PermissionBookingsWrite,
	usecase.PermissionPaymentsWrite,
	usecase.PermissionBlackoutsWrite,
}

// JWTHelper mints tokens the way the identity service would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, role string, permissions ...string) string {
	t.Helper()
	token, err := h.service.GenerateToken(uuid.New(), role, permissions, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ManagerToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "manager", AllPermissions...)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, permissions ...string) string {
	t.Helper()
	token, err := h.service.GenerateToken(uuid.New(), "manager", permissions, -time.Minute)
	require.NoError(t, err)
	return token
}
