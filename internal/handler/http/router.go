package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/itops-tools/absence-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	absenceHandler AbsenceHandler,
	absenceTypeHandler AbsenceTypeHandler,
	auditHandler AuditHandler,
	healthHandler HealthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absence-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		r.Route("/absences", func(r chi.Router) {
			r.Get("/", absenceHandler.List)
			r.Post("/", absenceHandler.Create)
			r.Get("/{id}", absenceHandler.Get)
			r.Put("/{id}", absenceHandler.Update)
			r.Delete("/{id}", absenceHandler.Delete)
		})

		r.Get("/statistics", absenceHandler.Statistics)

		r.Route("/absence-types", func(r chi.Router) {
			r.Get("/", absenceTypeHandler.List)
			r.Post("/", absenceTypeHandler.Create)
			r.Get("/{id}", absenceTypeHandler.Get)
			r.Put("/{id}", absenceTypeHandler.Update)
			r.Delete("/{id}", absenceTypeHandler.Delete)
		})

		r.Route("/audit-logs", func(r chi.Router) {
			r.Get("/", auditHandler.List)
			r.Delete("/", auditHandler.Purge)
			r.Get("/stats", auditHandler.Stats)
			r.Get("/{id}", auditHandler.Get)
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
