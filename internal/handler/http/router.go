package http

import (
	"log/slog"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the transport settings of NewRouter.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	projectHandler ProjectHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	cardMessageHandler CardMessageHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Language"},
		MaxAge:           300,
	}))

	r.Use(middleware.RequestID)
	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.Locale)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/logout", authHandler.Logout)
			r.Patch("/changePassword", authHandler.ChangePassword)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/me", userHandler.Me)
				r.Get("/not/{id}", userHandler.ListExcept)
				r.Get("/supervisor-candidates", userHandler.SupervisorCandidates)
				r.Get("/authorized-reporters", userHandler.AuthorizedReporters)
				r.Get("/{id}", userHandler.Get)

				// Manager or root admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", userHandler.Create)
					r.Patch("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
					r.Patch("/{id}/can-report", userHandler.SetCanReport)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Get("/{id}", projectHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireNonMember)
					r.Post("/", projectHandler.Create)
					r.Patch("/{id}", projectHandler.Update)
					r.Delete("/{id}", projectHandler.Delete)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Post("/", attendanceHandler.Create)
				r.Get("/day", attendanceHandler.ListForDay)
				r.Get("/report", attendanceHandler.Report)
				r.Get("/{id}", attendanceHandler.Get)
				r.Patch("/{id}", attendanceHandler.Update)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", reportHandler.List)
				r.Post("/", reportHandler.Create)
				r.Get("/teams", reportHandler.Teams)
				r.Get("/weekago/{userID}", reportHandler.ListWeekAgo)
				r.Post("/summary/{userID}", reportHandler.Summarize)
				r.Get("/{id}", reportHandler.Get)
				r.Patch("/{id}", reportHandler.Update)
			})

			r.Route("/cardmessages", func(r chi.Router) {
				r.Get("/", cardMessageHandler.ListForDay)
				r.Post("/", cardMessageHandler.Ingest)
			})

			r.Get("/dashboard", dashboardHandler.GetOverview)
		})
	})
	return r
}
