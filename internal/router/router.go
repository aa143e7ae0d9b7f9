package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "vet-dental-chart/internal/adapters/storage/memory"
	pg "vet-dental-chart/internal/adapters/storage/postgres"
	"vet-dental-chart/internal/domain/catalog"
	"vet-dental-chart/internal/domain/chart"
	"vet-dental-chart/internal/domain/records"
	"vet-dental-chart/internal/middleware"
	"vet-dental-chart/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (sin request log)

	// Opcional: si viene, usa Postgres para el historial. Si no,
	// in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	var recordsRepo records.Repository
	if db != nil {
		recordsRepo = pg.NewRecordsRepo(db)
	} else {
		recordsRepo = mem.NewRecordsRepo()
	}

	// Services por módulo
	editorSvc := chart.NewService()
	recordsSvc := records.NewService(recordsRepo)

	// Rutas por módulo
	catalog.RegisterRoutes(r)
	chart.RegisterRoutes(r, editorSvc)
	records.RegisterRoutes(r, recordsSvc, editorSvc)

	return r
}
