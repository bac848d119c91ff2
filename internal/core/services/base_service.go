package services

import (
	"context"
	"log/slog"

	"github.com/paybooks/payroll_ledger/internal/middleware"
)

// BaseService provides request-scoped logging helpers shared by every service.
type BaseService struct{}

// GetLogger returns the logger attached to the request context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogInfo logs an informational message with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, args...)
}

// LogWarn logs a warning with the request-scoped logger.
func (s *BaseService) LogWarn(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).WarnContext(ctx, msg, args...)
}

// LogError logs an error with the request-scoped logger.
func (s *BaseService) LogError(ctx context.Context, msg string, err error, args ...any) {
	s.GetLogger(ctx).ErrorContext(ctx, msg, append([]any{slog.Any("error", err)}, args...)...)
}
