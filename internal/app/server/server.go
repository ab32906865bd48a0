// Package server assembles configuration, storage, domain services, and the
// HTTP router into one runnable application. Tests construct it the same way
// main does.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/db"
	"workforce/internal/domain/attendance"
	"workforce/internal/domain/directory"
	"workforce/internal/domain/insights"
	"workforce/internal/domain/leave"
	"workforce/internal/domain/notifications"
	"workforce/internal/domain/payroll"
	"workforce/internal/domain/tasks"
	"workforce/internal/platform/config"
	"workforce/internal/platform/email"
	"workforce/internal/platform/jobs"
	"workforce/internal/platform/metrics"
	"workforce/internal/platform/presence"
	"workforce/internal/transport/http/api"
	attendancehandler "workforce/internal/transport/http/handlers/attendance"
	authhandler "workforce/internal/transport/http/handlers/auth"
	directoryhandler "workforce/internal/transport/http/handlers/directory"
	insightshandler "workforce/internal/transport/http/handlers/insights"
	leavehandler "workforce/internal/transport/http/handlers/leave"
	notificationshandler "workforce/internal/transport/http/handlers/notifications"
	payrollhandler "workforce/internal/transport/http/handlers/payroll"
	settingshandler "workforce/internal/transport/http/handlers/settings"
	taskshandler "workforce/internal/transport/http/handlers/tasks"
	"workforce/internal/transport/http/middleware"
)

type App struct {
	Router    chi.Router
	Pool      *pgxpool.Pool
	Cfg       config.Config
	Jobs      *jobs.Service
	Insights  *insights.Service
	Collector *metrics.Collector

	cancel context.CancelFunc
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	collector := metrics.New()
	mailer := email.New(cfg)

	notifySvc := notifications.New(notifications.NewStore(pool), mailer)
	notifySvc.DefaultFrom = cfg.EmailFrom

	directorySvc := directory.NewService(directory.NewStore(pool), notifySvc, cfg.DefaultVacationDays)
	presenceSvc := presence.New(pool)
	attendanceSvc := attendance.NewService(
		attendance.NewStore(pool), notifySvc, presenceSvc, attendance.SystemClock(),
		attendance.LatePolicy{ShiftStart: cfg.ShiftStart, Grace: cfg.LateGrace},
	)
	leaveSvc := leave.NewService(leave.NewStore(pool), notifySvc)
	payrollSvc := payroll.NewService(payroll.NewStore(pool), notifySvc)
	tasksSvc := tasks.NewService(tasks.NewStore(pool), notifySvc)

	lookback := time.Duration(cfg.LookbackDays) * 24 * time.Hour
	insightsSvc := insights.NewService(insights.NewStore(pool), lookback)

	jobCtx, cancel := context.WithCancel(context.Background())
	queue := jobs.New()
	queue.Start(jobCtx)
	queue.Enqueue(jobs.JobInsightsRefresh, insightsSvc.Refresh)
	queue.StartPeriodic(jobCtx, jobs.JobInsightsRefresh, 15*time.Minute, insightsSvc.Refresh)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(1 << 20))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(directorySvc, cfg).RegisterRoutes(r)
		directoryhandler.NewHandler(directorySvc).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceSvc, collector).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc).RegisterRoutes(r)
		taskshandler.NewHandler(tasksSvc).RegisterRoutes(r)
		notificationshandler.NewHandler(notifySvc).RegisterRoutes(r)
		insightshandler.NewHandler(insightsSvc, queue).RegisterRoutes(r)
		settingshandler.NewHandler(presenceSvc).RegisterRoutes(r)
	})

	return &App{
		Router:    router,
		Pool:      pool,
		Cfg:       cfg,
		Jobs:      queue,
		Insights:  insightsSvc,
		Collector: collector,
		cancel:    cancel,
	}, nil
}

func (a *App) Close() {
	a.cancel()
	a.Pool.Close()
}
