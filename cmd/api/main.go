package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/mistral"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/webhook"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/daily-report-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/daily-report-backend-go/internal/service/auth"
	cardMessageService "github.com/cmlabs-hris/daily-report-backend-go/internal/service/cardmessage"
	dashboardService "github.com/cmlabs-hris/daily-report-backend-go/internal/service/dashboard"
	projectService "github.com/cmlabs-hris/daily-report-backend-go/internal/service/project"
	reportService "github.com/cmlabs-hris/daily-report-backend-go/internal/service/report"
	summaryService "github.com/cmlabs-hris/daily-report-backend-go/internal/service/summary"
	userService "github.com/cmlabs-hris/daily-report-backend-go/internal/service/user"
	"github.com/go-chi/httplog/v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "daily-report"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	if err := i18n.Init(cfg.App.DefaultLocale); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	cardMessageRepo := postgresql.NewCardMessageRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	mistralClient := mistral.NewClient(cfg.Mistral.BaseURL, cfg.Mistral.APIKey, cfg.Mistral.Model)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo, projectRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	reportSvc := reportService.NewReportService(reportRepo, userRepo)
	summarySvc := summaryService.NewSummaryService(userRepo, reportSvc, mistralClient)
	cardMessageSvc := cardMessageService.NewCardMessageService(cardMessageRepo, userRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceSvc, reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Logger: logger, AllowedOrigins: []string{cfg.App.FrontendURL}},
		JWTService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewProjectHandler(projectSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewReportHandler(reportSvc, summarySvc),
		appHTTP.NewCardMessageHandler(cardMessageSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	scheduler := cron.NewScheduler(ctx)
	if cfg.Digest.WebhookURL != "" {
		digest := cron.NewDigestJob(attendanceSvc, webhook.NewClient(cfg.Digest.WebhookURL), cfg.Digest.PostAtOffset())
		digest.RegisterJobs(scheduler, cfg.Digest.Interval)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
