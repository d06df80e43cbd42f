package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jcastillo-pa/salon-api/internal/application/auth"
	"github.com/jcastillo-pa/salon-api/internal/application/usecase"
	"github.com/jcastillo-pa/salon-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastillo-pa/salon-api/internal/interfaces/http"
	"github.com/jcastillo-pa/salon-api/pkg/config"
	"github.com/jcastillo-pa/salon-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	businessUC := usecase.NewBusinessUseCase(businessRepo, txRunner)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, businessRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if mw := swaggerMiddleware("./docs/swagger.json"); mw != nil {
		app.Use(mw)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		BusinessUC: businessUC,
		CustomerUC: customerUC,
		ServiceUC:  serviceUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// swaggerMiddleware construye el middleware de Swagger UI, o nil si el JSON no
// existe: swagger.New hace stat del archivo al construirse y entra en pánico si
// falta, lo que tumbaría el proceso antes de escuchar.
func swaggerMiddleware(filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Salon API",
	})
}
