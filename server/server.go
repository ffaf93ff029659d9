package server

import (
	"context"
	"time"

	"trending/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Aggregator produces the full source-to-articles mapping for one request.
type Aggregator interface {
	Aggregate(ctx context.Context) (*models.Feeds, error)
}

type ServerConfig struct {

	// The aggregator used to build the trending response
	Aggregator Aggregator
}

// Returns a fiber.App instance to be used as the HTTP server for the
// trending news API
func Server(config *ServerConfig) *fiber.App {

	app := fiber.New()

	// Middleware to track the latency of each request
	app.Use(func(c *fiber.Ctx) error {
		// start timer
		start := time.Now()

		// next routes
		err := c.Next()

		// stop timer
		stop := time.Now()

		// Diff
		log.WithFields(log.Fields{
			"method":  c.Method(),
			"route":   c.Route().Path,
			"latency": stop.Sub(start),
		}).Info("Request")
		return err
	})

	app.Use(requestid.New(requestid.ConfigDefault))
	app.Use(compress.New())
	app.Use(cors.New())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// The aggregated trending feed. Every request re-fetches all sources;
	// one failing source fails the whole response.
	app.Get("/api/trending", func(c *fiber.Ctx) error {
		feeds, err := config.Aggregator.Aggregate(c.Context())
		if err != nil {
			log.WithFields(log.Fields{
				"error": err,
			}).Error("Error aggregating feeds")

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(models.TrendingResponse{Feeds: feeds})
	})

	return app
}
