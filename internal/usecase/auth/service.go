package auth

import (
	"context"

	"fleet-equipment-tracker/internal/config"
	"fleet-equipment-tracker/internal/logger"
	appErrors "fleet-equipment-tracker/pkg/errors"
	"fleet-equipment-tracker/pkg/utils"

	"go.uber.org/zap"
)

// Service authenticates the single configured service account and
// issues bearer tokens signed with the shared secret. The account and
// the secret come from configuration; there is no user store.
type Service struct {
	cfg *config.Config
}

// NewService creates a new auth service
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) Login(_ context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.Username != s.cfg.Admin.Username ||
		!utils.CheckPassword(s.cfg.Admin.PasswordHash, req.Password) {
		logger.Warn("Failed login attempt", zap.String("username", req.Username))
		return nil, appErrors.ErrInvalidCredentials
	}

	expiry := s.cfg.JWT.Expiry()
	token, err := utils.GenerateToken(req.Username, s.cfg.JWT.Secret, expiry)
	if err != nil {
		return nil, appErrors.NewAppError("TOKEN_ERROR", "Failed to issue token", err)
	}

	logger.Info("Service account logged in", zap.String("username", req.Username))

	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(expiry.Seconds()),
	}, nil
}
