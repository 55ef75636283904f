package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"heatpump_check/internal/api"
	"heatpump_check/internal/config"
	"heatpump_check/internal/consumption"
	"heatpump_check/internal/ingest"
	"heatpump_check/internal/metrics"
	"heatpump_check/internal/model"
	"heatpump_check/internal/scenario"
	"heatpump_check/internal/service"
	"heatpump_check/internal/store"
	"heatpump_check/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func runServe(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	m := metrics.New()

	catalogs, closeStore, err := openCatalogStore(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := service.New(log,
		service.WithCatalogStore(catalogs),
		service.WithMetrics(m),
		service.WithDefaultPrice(cfg.Engine.DefaultPriceCt),
	)

	hub := ws.NewHub(m, log)
	handler := api.NewServer(svc, m, log, api.Options{
		WS:              ws.NewHandler(hub, svc, log),
		FrontendDir:     cfg.Server.FrontendDir,
		OnCatalogChange: hub.CatalogUpdated,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// openCatalogStore connects to Redis when an address is configured and falls
// back to the in-memory store otherwise.
func openCatalogStore(ctx context.Context, cfg config.RedisConfig, log *logrus.Logger) (store.CatalogStore, func(), error) {
	if cfg.Addr == "" {
		log.Info("Catalog overrides kept in memory")
		return store.New(), func() {}, nil
	}

	rs := store.NewRedisStore(store.RedisConfig{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		TTL:      cfg.TTL,
	}, log)
	if err := rs.Ping(ctx); err != nil {
		rs.Close()
		return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	log.Infof("Catalog overrides stored in redis at %s", cfg.Addr)
	return rs, func() {
		if err := rs.Close(); err != nil {
			log.WithError(err).Warn("closing redis client")
		}
	}, nil
}

type simulateOptions struct {
	ProfilePath    string
	MeterPath      string
	JSON           bool
	DefaultPriceCt float64
	// Now is the evaluation date; time.Now when zero.
	Now time.Time
}

func runSimulate(w io.Writer, log *logrus.Logger, opts simulateOptions) error {
	in, err := ingest.LoadProfile(opts.ProfilePath)
	if err != nil {
		return err
	}

	if opts.MeterPath != "" {
		c, err := loadMeter(opts.MeterPath)
		if err != nil {
			return err
		}
		ingest.ApplyConsumption(&in, c)
		log.WithFields(logrus.Fields{
			"metered_kwh": c.MeteredKWh,
			"start":       c.BillingStart.Format("2006-01-02"),
			"end":         c.BillingEnd.Format("2006-01-02"),
		}).Debug("meter reading applied")
	}

	svcOpts := []service.Option{service.WithDefaultPrice(opts.DefaultPriceCt)}
	if !opts.Now.IsZero() {
		now := opts.Now
		svcOpts = append(svcOpts, service.WithClock(func() time.Time { return now }))
	}
	resp := service.New(log, svcOpts...).Simulate(in, service.TransportCLI)

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printResult(w, resp.Result)
	return nil
}

func runAnnualize(w io.Writer, meterPath string) error {
	c, err := loadMeter(meterPath)
	if err != nil {
		return err
	}
	a := consumption.Annualize(c.MeteredKWh, c.BillingStart, c.BillingEnd)
	printAnnualized(w, c, a, consumption.Comparability(a))
	return nil
}

func runCatalog(w io.Writer, overridesPath string) error {
	catalog := scenario.DefaultCatalog()
	if overridesPath != "" {
		overrides, err := ingest.LoadCatalog(overridesPath)
		if err != nil {
			return err
		}
		catalog = scenario.Merge(catalog, overrides)
	}
	printCatalog(w, catalog)
	return nil
}

// loadMeter parses a meter export into the consumption between its first
// and last reading.
func loadMeter(path string) (model.Consumption, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Consumption{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	readings, err := ingest.NewMeterParser().Parse(f)
	if err != nil {
		return model.Consumption{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	c, err := ingest.ToConsumption(readings)
	if err != nil {
		return model.Consumption{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
