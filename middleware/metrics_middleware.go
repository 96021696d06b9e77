package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"job-board-backend/metrics"
)

// запросы без маршрута (404 сканеров) пишутся в одну серию
const unmatchedRoute = "unmatched"

// WithMetrics учитывает запросы по шаблону маршрута, чтобы id в пути не размножали серии
func WithMetrics(manager *metrics.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = unmatchedRoute
		}
		manager.RecordHTTPRequest(c.Method(), route, status, time.Since(start))
		return err
	}
}
