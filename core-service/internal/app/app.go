package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/pettech-microservices/core-service/config"
	"github.com/alimikegami/pettech-microservices/core-service/internal/controller"
	circuitbreaker "github.com/alimikegami/pettech-microservices/core-service/internal/infrastructure/circuit-breaker"
	stockservice "github.com/alimikegami/pettech-microservices/core-service/internal/infrastructure/stock-service"
	"github.com/alimikegami/pettech-microservices/core-service/internal/repository"
	"github.com/alimikegami/pettech-microservices/core-service/internal/service"
	"github.com/alimikegami/pettech-microservices/pkg/httpclient"
	pkgmiddleware "github.com/alimikegami/pettech-microservices/pkg/middleware"
	"github.com/alimikegami/pettech-microservices/pkg/response"
	"github.com/alimikegami/pettech-microservices/pkg/tracing"
	"github.com/alimikegami/pettech-microservices/pkg/validator"
	"github.com/go-co-op/gocron/v2"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "core-service"

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo

	metrics        *echo.Echo
	scheduler      gocron.Scheduler
	tracerProvider *sdktrace.TracerProvider
}

// Setup builds the router, services and the outbox scheduler. The DB handle
// must already be connected.
func (app *App) Setup() error {
	tracerProvider, err := tracing.InitTracing(serviceName, app.Config.TracingConfig.CollectorHost)
	if err != nil {
		return err
	}
	app.tracerProvider = tracerProvider

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(middleware.Recover())
	e.Use(pkgmiddleware.Tracing(tracerProvider.Tracer(serviceName)))
	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(pkgmiddleware.Logger)

	g := e.Group("")

	cb := circuitbreaker.CreateCircuitBreaker("stock-service", 30*time.Second, stockservice.ErrClientStatus)
	stockClient := stockservice.CreateNewClient(app.Config.StockServiceConfig.Host, httpclient.New(app.Config.StockServiceConfig.Timeout), cb)

	// A dispatched event costs up to two stock calls, so it must stay claimed longer than that.
	outboxConfig := app.Config.OutboxConfig
	if minIdle := 2*app.Config.StockServiceConfig.Timeout + 5*time.Second; outboxConfig.IdleFor < minIdle {
		log.Warn().Str("component", "Setup").Dur("idle_for", outboxConfig.IdleFor).Dur("min_idle_for", minIdle).Msg("OUTBOX_IDLE_FOR raised")
		outboxConfig.IdleFor = minIdle
	}

	userRepo := repository.CreateUserRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)
	outboxRepo := repository.CreateOutboxRepository(app.DB)

	userSvc := service.CreateUserService(userRepo, app.Config.JWTConfig)
	productSvc := service.CreateProductService(productRepo, outboxRepo, stockClient)
	outboxSvc := service.CreateOutboxService(outboxRepo, stockClient, app.Config.JWTConfig, outboxConfig)

	controller.CreateUserController(g, userSvc)
	controller.CreateProductController(g, productSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, map[string]string{"message": "pong"})
	})

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			app.Config.OutboxConfig.Interval,
		),
		gocron.NewTask(func() {
			ctx := log.With().Str("job", "stock_outbox").Logger().WithContext(context.Background())
			if err := outboxSvc.DispatchStockEvents(ctx); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("component", "DispatchStockEvents").Msg("")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	app.scheduler = s
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

	app.scheduler.Start()

	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error

	if app.scheduler != nil {
		errs = append(errs, app.scheduler.Shutdown())
	}

	if app.metrics != nil {
		errs = append(errs, app.metrics.Shutdown(ctx))
	}

	if app.Server != nil {
		errs = append(errs, app.Server.Shutdown(ctx))
	}

	if app.tracerProvider != nil {
		errs = append(errs, app.tracerProvider.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
