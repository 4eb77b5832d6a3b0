package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/ws"
	"github.com/jhoicas/inventory-dashboard/pkg/logger"
)

const requestIDKey = "requestid"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName      string
	AllowOrigins string
	GraphQL      *GraphQLHandler
	Metrics      *metrics.Metrics // opcional
	Hub          *ws.Hub          // opcional
	Log          *logger.Logger
}

// Router registra middlewares y rutas.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.AllowOrigins == "" {
		deps.AllowOrigins = "*"
	}

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(RequestLogger(deps.Log))
	app.Use(cors.New(cors.Config{AllowOrigins: deps.AllowOrigins}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Mismo endpoint en "/" (URL por defecto de los clientes) y "/graphql".
	app.Post("/", deps.GraphQL.Serve)
	app.Post("/graphql", deps.GraphQL.Serve)

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	if deps.Hub != nil {
		hub := deps.Hub
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws", websocket.New(func(c *websocket.Conn) {
			hub.Register(c)
			defer hub.Unregister(c)
			// Solo se lee para detectar el cierre; los clientes no envían comandos.
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}))
	}
}
