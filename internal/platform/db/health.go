package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// poolSnapshot is the connection-pool section of the /health/db payload.
// Min and max come from the pool's configuration, the rest from its live
// counters.
type poolSnapshot struct {
	AcquiredConns int32 `json:"acquiredConns"`
	IdleConns     int32 `json:"idleConns"`
	TotalConns    int32 `json:"totalConns"`
	MinConns      int32 `json:"minConns"`
	MaxConns      int32 `json:"maxConns"`
}

func snapshotPool(pool *pgxpool.Pool) poolSnapshot {
	stat := pool.Stat()
	return poolSnapshot{
		AcquiredConns: stat.AcquiredConns(),
		IdleConns:     stat.IdleConns(),
		TotalConns:    stat.TotalConns(),
		MinConns:      pool.Config().MinConns,
		MaxConns:      stat.MaxConns(),
	}
}

// HealthHandler answers the database liveness probe with a bounded ping and
// a snapshot of the pool. A failed ping yields 503 so orchestrators can act
// on it.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
				"pool":   snapshotPool(pool),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"pool":   snapshotPool(pool),
		})
	}
}
