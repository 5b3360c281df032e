package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pharmakeep/pharmacy_pos_app/internal/apperrors"
)

// maxConflictRetries bounds how often a unit of work is retried when the
// database reports a serialization failure or deadlock. The locking order
// makes deadlocks unlikely; this covers the residual races.
const maxConflictRetries = 3

// retryOnConflict runs op, retrying with a short backoff while it fails with
// apperrors.ErrConflict. Any other error is returned immediately. After the
// last attempt the conflict itself is returned so the caller can surface it.
func retryOnConflict(ctx context.Context, logger *slog.Logger, op func() error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = op()
		if err == nil || !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		logger.Warn("retrying after concurrency conflict", slog.Int("attempt", attempt+1))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 25 * time.Millisecond):
		}
	}
	return err
}
