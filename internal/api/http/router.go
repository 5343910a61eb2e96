package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nghetinhport/tos-bigdata-api/internal/api/http/handlers"
	"github.com/nghetinhport/tos-bigdata-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Catalog        *handlers.CatalogHandler
	Volumes        *handlers.VolumesHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Everything under /api except login
// requires a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/protected", cfg.Auth.Protected)

	protected.Get("/customers", cfg.Catalog.ListCustomers)
	protected.Get("/customers/:id", cfg.Catalog.GetCustomer)
	protected.Get("/cargoCategory", cfg.Catalog.ListCargoCategories)
	protected.Get("/cargoCategory/:id", cfg.Catalog.GetCargoCategory)
	protected.Get("/cargoType", cfg.Catalog.ListCargoTypes)
	protected.Get("/cargoType/:id", cfg.Catalog.GetCargoType)
	protected.Get("/handlingMethodList", cfg.Catalog.ListHandlingMethods)
	protected.Get("/handlingMethodList/:id", cfg.Catalog.GetHandlingMethod)
	protected.Get("/class", cfg.Catalog.ListClasses)
	protected.Get("/class/:id", cfg.Catalog.GetClass)
	protected.Get("/shipDetails", cfg.Catalog.ListShips)
	protected.Get("/shipDetails/:imo", cfg.Catalog.GetShip)

	protected.Get("/bulkGateVolumesCB", cfg.Volumes.ListBulkGateVolumes)
	protected.Get("/bulkQuayVolumesCB", cfg.Volumes.ListBulkQuayVolumes)
	protected.Get("/contQuayVolumesCB", cfg.Volumes.ListContainerQuayVolumes)
}
