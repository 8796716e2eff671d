package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	apperrors "taskvault.com/taskvault/internal/errors"
)

// RedisRateLimiter is the shared-counter variant of RateLimiter, for
// deployments running more than one instance. Counting errors fail open.
func RedisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.RealIP()

			count, err := client.Do(
				ctx,
				client.B().Incr().Key(key).Build(),
			).AsInt64()
			if err != nil {
				return next(c)
			}

			if count == 1 {
				_ = client.Do(
					ctx,
					client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Build(),
				).Error()
			}

			if count > int64(limit) {
				return apperrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
