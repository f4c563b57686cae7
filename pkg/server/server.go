package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/it-tools/asset-atlas/pkg/handlers/fleet"
	atlasmiddleware "github.com/it-tools/asset-atlas/pkg/server/middleware"
	"github.com/it-tools/asset-atlas/pkg/services/fleet"
	"github.com/it-tools/asset-atlas/pkg/services/inventory"
	"github.com/it-tools/asset-atlas/pkg/store/reportcfg"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Explorer inventory.Explorer
	Reporter *fleet.Reporter
	Configs  reportcfg.Store
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	fleetHandler := handlers.NewHandler(
		config.Dependencies.Explorer,
		config.Dependencies.Reporter,
		config.Dependencies.Configs,
	)

	router := chi.NewRouter()

	router.Use(atlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/fleets", fleetHandler.ListFleets)
		r.Get("/fleets/{fleet}/assets/{asset}/depreciation", fleetHandler.GetAssetValuation)
		r.Get("/fleets/{fleet}/depreciation", fleetHandler.GetDepreciationReport)
		r.Get("/fleets/{fleet}/tco", fleetHandler.GetTCOReport)
		r.Get("/fleets/{fleet}/licenses/optimization", fleetHandler.GetLicenseReport)

		r.Get("/report-configs", fleetHandler.ListReportConfigs)
		r.Post("/report-configs", fleetHandler.SaveReportConfig)
		r.Get("/report-configs/{name}", fleetHandler.GetReportConfig)
		r.Delete("/report-configs/{name}", fleetHandler.DeleteReportConfig)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}
