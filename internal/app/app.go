package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"employee-service/internal/config"
	"employee-service/internal/db"
	"employee-service/internal/employee"
	"employee-service/internal/health"
	"employee-service/internal/logger"
	"employee-service/internal/messaging"
	"employee-service/internal/metrics"
	"employee-service/internal/middleware"
	"employee-service/internal/report"
	"employee-service/internal/swagger"
	"employee-service/internal/telemetry"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
)

const healthCheckInterval = 30 * time.Second

type App struct {
	config    *config.Config
	router    chi.Router
	server    *http.Server
	logger    *slog.Logger
	db        *bun.DB
	producer  *messaging.Producer
	telemetry *telemetry.Telemetry
	checker   *health.Checker
	stop      context.CancelFunc
}

func New(ctx context.Context) (*App, error) {
	slogLogger := logger.NewWithServiceContext(ServiceName, Version)

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	tel, err := telemetry.Init(ctx, cfg.Telemetry, ServiceName, Version, cfg.Env, slogLogger)
	if err != nil {
		return nil, err
	}
	m := tel.Metrics

	database, err := db.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		db.Close(database)
		return nil, err
	}

	meter := otel.Meter(ServiceName)
	if err := m.Database.RegisterDB(database.DB, meter); err != nil {
		slogLogger.Warn("failed to register database pool metrics", "error", err)
	}

	app := &App{
		config:    cfg,
		logger:    slogLogger,
		db:        database,
		telemetry: tel,
	}

	deps := map[string]health.Pinger{"postgres": database}

	// NATS is optional; without it change events are dropped.
	var publisher employee.Publisher
	if cfg.NATS.URL != "" {
		producer, err := messaging.NewProducer(cfg.NATS.URL, cfg.NATS.Subject, slogLogger, m)
		if err != nil {
			slogLogger.Warn("failed to initialize NATS producer", "error", err)
		} else {
			app.producer = producer
			publisher = producer
			deps["nats"] = producer
		}
	} else {
		slogLogger.Info("NATS not configured, change events disabled")
	}

	app.checker = health.NewChecker(deps, healthCheckInterval, m, slogLogger)
	if err := m.Health.RegisterDependencies(ctx, meter, app.checker.Names()); err != nil {
		slogLogger.Warn("failed to register dependency metrics", "error", err)
	}

	employeeRepo := employee.NewRepository(database, m)
	employeeService := employee.NewService(employeeRepo, employee.NewValidator(time.Now), publisher, slogLogger)

	app.router = NewRouter(Deps{
		Config:    cfg,
		Logger:    slogLogger,
		Metrics:   m,
		DB:        database,
		Employees: employeeService,
	})

	slogLogger.Info("application initialized successfully")

	return app, nil
}

// Deps are the collaborators the HTTP surface needs.
type Deps struct {
	Config    *config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	DB        health.Pinger
	Employees employee.Service
}

// NewRouter mounts health and the optional Swagger UI at the root and the
// employee and report APIs under /api.
func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Tracing(otel.GetTracerProvider()))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(d.Config.Server.CORSOrigins))

	health.NewHandler(d.DB, d.Metrics).RegisterRoutes(r)

	if d.Config.Server.SwaggerUI {
		if err := swagger.RegisterRoutes(r); err != nil {
			d.Logger.Error("swagger ui disabled", "error", err)
		} else {
			d.Logger.Info("swagger ui enabled", "doc", swagger.DocPath)
		}
	}

	employeeHandler := employee.NewHandler(d.Employees, d.Logger, d.Metrics)
	reportHandler := report.NewHandler(d.Employees, report.NewRenderer(d.Config.Reports.Title, time.Now), d.Config.Reports, d.Logger, d.Metrics)

	r.Route("/api", func(r chi.Router) {
		employeeHandler.RegisterRoutes(r)
		reportHandler.RegisterRoutes(r)
	})
	return r
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	a.stop = cancel
	go a.checker.Run(ctx)

	srv := a.config.Server
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", srv.Port),
		Handler:      a.router,
		ReadTimeout:  seconds(srv.ReadTimeout, 15),
		WriteTimeout: seconds(srv.WriteTimeout, 30),
		IdleTimeout:  seconds(srv.IdleTimeout, 60),
	}

	a.logger.Info("server starting", "port", srv.Port)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")

	var errs []error
	if a.server != nil {
		errs = append(errs, a.server.Shutdown(ctx))
	}
	if a.stop != nil {
		a.stop()
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("NATS producer close error", "error", err)
		}
	}
	db.Close(a.db)
	errs = append(errs, a.telemetry.Shutdown(ctx, a.logger))

	return errors.Join(errs...)
}

// Migrate applies pending migrations and returns, for one-shot jobs.
func Migrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	database, err := db.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close(database)
	return db.RunMigrations(ctx, database)
}

func seconds(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}
