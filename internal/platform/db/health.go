package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 3 * time.Second

type healthReport struct {
	Status   string       `json:"status"`
	Database poolSnapshot `json:"database"`
	Error    string       `json:"error,omitempty"`
}

type poolSnapshot struct {
	TotalConns    int32  `json:"total_conns"`
	IdleConns     int32  `json:"idle_conns"`
	AcquiredConns int32  `json:"acquired_conns"`
	MaxConns      int32  `json:"max_conns"`
	WaitTime      string `json:"wait_time"`
}

// HealthHandler reports liveness of the API and its database. The load
// balancer probes this endpoint, so a slow ping counts as down: anything
// beyond healthPingTimeout returns 503.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		stat := pool.Stat()
		report := healthReport{
			Status: "ok",
			Database: poolSnapshot{
				TotalConns:    stat.TotalConns(),
				IdleConns:     stat.IdleConns(),
				AcquiredConns: stat.AcquiredConns(),
				MaxConns:      stat.MaxConns(),
				WaitTime:      stat.AcquireDuration().String(),
			},
		}

		if err := pool.Ping(ctx); err != nil {
			report.Status = "unavailable"
			report.Error = err.Error()
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, report)
	}
}
