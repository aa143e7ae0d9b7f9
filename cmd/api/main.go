package main

import (
	"net/http"
	"os"
	"time"

	_ "vet-dental-chart/docs"
	"vet-dental-chart/internal/platform/logger"
	"vet-dental-chart/internal/router"
)

// @title Veterinary Dental Chart API
// @version 1.0
// @description Ficha dental veterinaria: catálogo de piezas por especie, hallazgos y tratamientos por pieza, resumen clínico, historial y export/import JSON.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
