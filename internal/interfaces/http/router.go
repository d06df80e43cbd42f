package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastillo-pa/salon-api/internal/application/auth"
	"github.com/jcastillo-pa/salon-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	BusinessUC *usecase.BusinessUseCase
	CustomerUC *usecase.CustomerUseCase
	ServiceUC  *usecase.ServiceUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Business (protegido): resolver + creación
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	protected.Get("/business", businessHandler.Current)
	protected.Post("/businesses", businessHandler.Create)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.BusinessUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Services (protegido)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC, deps.BusinessUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)
}
