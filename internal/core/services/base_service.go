package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize checks company membership and the required capability, returning
// the authorized user. domain.CapNone checks membership only.
func (s *BaseService) Authorize(ctx context.Context, companyID, userID string, required domain.Capability) (*domain.User, error) {
	if s.CompanyAuthorizer == nil {
		return nil, fmt.Errorf("%w: no company authorizer configured", apperrors.ErrInternal)
	}
	return s.CompanyAuthorizer.AuthorizeUserAction(ctx, companyID, userID, required)
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// normalizeLimit clamps a caller-provided page size to a sane range.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
