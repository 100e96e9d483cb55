package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/wichananm65/hbnb-backend/internal/infrastructure/metrics"
	"github.com/wichananm65/hbnb-backend/internal/interface/http/handler"
)

// Handlers groups the resource handlers mounted under /api/v1.
type Handlers struct {
	Users     *handler.UserHandler
	Amenities *handler.AmenityHandler
	Places    *handler.PlaceHandler
	Reviews   *handler.ReviewHandler
}

type Options struct {
	Logger      zerolog.Logger
	CORSOrigins string
	// Metrics is optional; nil disables both the middleware and /metrics.
	Metrics *metrics.Metrics
}

// New builds the fiber application with middleware and all routes.
func New(h Handlers, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "hbnb",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(loggerMiddleware(opts.Logger))
	setupCORS(app, opts.CORSOrigins)
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
		app.Get("/metrics", opts.Metrics.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	h.Users.RegisterRoutes(api)
	h.Amenities.RegisterRoutes(api)
	h.Places.RegisterRoutes(api)
	h.Reviews.RegisterRoutes(api)

	return app
}

func setupCORS(app *fiber.App, origins string) {
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func loggerMiddleware(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		reqID, _ := c.Locals("requestid").(string)
		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("request")
		return err
	}
}

// errorHandler renders framework errors (unknown route, wrong method,
// recovered panic) in the same JSON shape the handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	errCode := handler.ErrCodeInternal
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
		switch code {
		case fiber.StatusNotFound:
			errCode = handler.ErrCodeNotFound
		case fiber.StatusMethodNotAllowed, fiber.StatusBadRequest:
			errCode = handler.ErrCodeInvalidRequest
		}
	}
	return c.Status(code).JSON(fiber.Map{"error": message, "code": errCode})
}
