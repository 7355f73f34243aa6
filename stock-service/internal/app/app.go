package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/pettech-microservices/pkg/response"
	pkgmiddleware "github.com/alimikegami/pettech-microservices/pkg/middleware"
	"github.com/alimikegami/pettech-microservices/pkg/tracing"
	"github.com/alimikegami/pettech-microservices/pkg/validator"
	"github.com/alimikegami/pettech-microservices/stock-service/config"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/controller"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/infrastructure/message-queue/kafka"
	localmiddleware "github.com/alimikegami/pettech-microservices/stock-service/internal/middleware"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/repository"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "stock-service"

type App struct {
	DB        *mongo.Database
	Config    *config.Config
	Publisher kafka.EventPublisher
	Server    *echo.Echo

	metrics        *echo.Echo
	tracerProvider *sdktrace.TracerProvider
}

// Setup builds the router. The DB handle must already be connected.
func (app *App) Setup() error {
	tracerProvider, err := tracing.InitTracing(serviceName, app.Config.TracingConfig.CollectorHost)
	if err != nil {
		return err
	}
	app.tracerProvider = tracerProvider

	if app.Publisher == nil {
		app.Publisher = kafka.CreateEventPublisher(app.Config)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(middleware.Recover())
	e.Use(pkgmiddleware.Tracing(tracerProvider.Tracer(serviceName)))
	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(pkgmiddleware.Logger)

	g := e.Group("")

	isLoggedIn := localmiddleware.IsLoggedIn(app.Config.JWTSecret)

	mongoDBRepo := repository.CreateNewMongoDBRepository(app.DB)
	svc := service.CreateStockService(mongoDBRepo, app.Publisher)
	controller.CreateStockController(g, svc, isLoggedIn, app.Config.GuardStockMutations)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, map[string]string{"message": "pong"})
	})

	app.Server = e

	return nil
}

// Start serves HTTP until StopServer is called.
func (app *App) Start() error {
	if app.Config.MetricsPort != "" {
		app.metrics = echo.New()
		app.metrics.HideBanner = true
		app.metrics.GET("/metrics", echoprometheus.NewHandler())
		go func() {
			if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error

	if app.metrics != nil {
		errs = append(errs, app.metrics.Shutdown(ctx))
	}

	if app.Server != nil {
		errs = append(errs, app.Server.Shutdown(ctx))
	}

	if app.Publisher != nil {
		errs = append(errs, app.Publisher.Close())
	}

	if app.tracerProvider != nil {
		errs = append(errs, app.tracerProvider.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
