package session

import (
	"context"
	"log/slog"
	"time"
)

// StartReaper periodically removes records whose expiry has passed.
// Validation never depends on it; this is storage hygiene only.
func StartReaper(ctx context.Context, repo Repository, interval time.Duration, logger *slog.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				count, err := repo.DeleteExpired()
				if err != nil {
					logger.Error("session cleanup", "error", err)
					continue
				}
				if count > 0 {
					logger.Info("expired sessions removed", "count", count)
				}
			}
		}
	}()
}
