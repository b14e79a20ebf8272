package service

import (
	"context"
	"errors"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/pkg/logger"
	"go.uber.org/zap"
)

// normalize is the single error boundary at every action exit. It logs the
// failure and returns a classified domain error: known kinds pass through,
// anything else becomes Unhandled. Callers never see raw driver or gateway
// errors.
func normalize(ctx context.Context, action string, err error) error {
	if err == nil {
		return nil
	}

	var derr *domain.Error
	if errors.As(err, &derr) {
		logger.WithContext(ctx).Warn("action failed",
			zap.String("action", action),
			zap.String("kind", derr.Kind.String()),
			zap.Error(derr),
		)
		return derr
	}

	logger.WithContext(ctx).Error("action failed",
		zap.String("action", action),
		zap.Error(err),
	)
	return domain.Unhandled(err)
}
