package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/pkg/logger"
)

// NewRateLimiter construye el limitador a partir de un formato "<n>-<S|M|H|D>" (ej. "20-M").
// Con rdb nil los contadores viven en memoria del proceso.
func NewRateLimiter(formatted string, rdb *goredis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	var store limiter.Store = memory.NewStore()
	if rdb != nil {
		store, err = sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: "faro:ratelimit"})
		if err != nil {
			return nil, err
		}
	}
	return limiter.New(store, rate), nil
}

// RateLimit limita peticiones por usuario (o por IP si no hay usuario autenticado).
// Si el store falla deja pasar la petición y lo registra.
func RateLimit(lim *limiter.Limiter, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := GetUserID(c)
		if key == "" {
			key = c.IP()
		}
		res, err := lim.Get(c.UserContext(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limit: store no disponible")
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset, 10))
		if res.Reached {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas solicitudes, intenta de nuevo en unos momentos",
			})
		}
		return c.Next()
	}
}
