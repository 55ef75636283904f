// Package service runs checks on behalf of the HTTP and WebSocket surfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"heatpump_check/internal/funding"
	"heatpump_check/internal/metrics"
	"heatpump_check/internal/model"
	"heatpump_check/internal/scenario"
	"heatpump_check/internal/simulator"
	"heatpump_check/internal/store"
)

// Transport labels used in metrics.
const (
	TransportHTTP = "http"
	TransportWS   = "ws"
	TransportCLI  = "cli"
)

var (
	// ErrInvalid marks a request the caller has to correct.
	ErrInvalid = errors.New("invalid request")
	// ErrNoStore is returned when overrides are saved without a catalog store.
	ErrNoStore = errors.New("no catalog store configured")
)

// SimulateResponse wraps a run result with its identifier.
type SimulateResponse struct {
	RunID  string                 `json:"run_id"`
	Result model.SimulationResult `json:"result"`
}

// ScenarioRequest selects interventions. When Input is set the scenario
// context is derived from a fresh run of it and only the catalog of Context
// is used.
type ScenarioRequest struct {
	User      string           `json:"user,omitempty"`
	Selection []string         `json:"selection"`
	Context   scenario.Context `json:"context"`
	Input     *model.Input     `json:"input,omitempty"`
}

type ScenarioResponse struct {
	RunID  string               `json:"run_id"`
	Result model.ScenarioResult `json:"result"`
}

type FundingRequest struct {
	Recommendations []model.Recommendation `json:"recommendations"`
}

type FundingResponse struct {
	Programs []model.FundingProgram `json:"programs"`
}

// Service is safe for concurrent use.
type Service struct {
	normalizer simulator.Normalizer
	catalogs   store.CatalogStore
	metrics    *metrics.Metrics
	log        *logrus.Logger
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

func WithCatalogStore(s store.CatalogStore) Option {
	return func(svc *Service) { svc.catalogs = s }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(svc *Service) { svc.metrics = m }
}

// WithDefaultPrice sets the electricity price used when none was entered.
func WithDefaultPrice(ct float64) Option {
	return func(svc *Service) { svc.normalizer.DefaultPriceCt = ct }
}

// WithClock replaces time.Now as the evaluation date of open billing periods.
func WithClock(now func() time.Time) Option {
	return func(svc *Service) { svc.now = now }
}

func New(log *logrus.Logger, opts ...Option) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	svc := &Service{
		normalizer: simulator.Normalizer{DefaultPriceCt: simulator.DefaultPriceCt},
		log:        log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Simulate normalizes in and runs the engine. It never fails.
func (s *Service) Simulate(in model.Input, transport string) SimulateResponse {
	start := time.Now()
	res := simulator.Run(s.normalizer.Normalize(in, s.now()))
	s.metrics.ObserveRun(transport, res.HasActual, time.Since(start))
	for _, r := range res.Recommendations {
		s.metrics.Recommendation(string(r.Category), string(r.Priority))
	}

	id := uuid.New().String()
	s.log.WithFields(logrus.Fields{
		"run_id":          id,
		"transport":       transport,
		"postal_prefix":   res.Climate.Prefix,
		"system_factor":   res.SystemFactor,
		"recommendations": len(res.Recommendations),
	}).Debug("simulation finished")
	return SimulateResponse{RunID: id, Result: res}
}

// Scenario computes the selected interventions against the user's catalog.
// A malformed request catalog yields ErrInvalid. Store failures are
// returned; a user without overrides gets the default catalog.
func (s *Service) Scenario(ctx context.Context, req ScenarioRequest) (ScenarioResponse, error) {
	if err := validateInterventions(req.Context.Catalog); err != nil {
		return ScenarioResponse{}, err
	}
	sc := req.Context
	if req.Input != nil {
		p := s.normalizer.Normalize(*req.Input, s.now())
		res := simulator.Run(p)
		sc = scenario.Context{
			PricePerKWh:   p.PricePerKWh,
			BaselineKWh:   res.ConsumptionBasis(),
			CurrentFactor: res.SystemFactor,
			AreaM2:        p.Building.AreaM2,
			Catalog:       req.Context.Catalog,
		}
	}

	overrides, err := store.Resolve(ctx, s.catalogs, req.User)
	if err != nil {
		return ScenarioResponse{}, fmt.Errorf("loading catalog for %q: %w", req.User, err)
	}
	base := sc.Catalog
	if len(base) == 0 {
		base = scenario.DefaultCatalog()
	}
	sc.Catalog = scenario.Merge(base, overrides)

	s.metrics.ScenarioRequest()
	return ScenarioResponse{RunID: uuid.New().String(), Result: scenario.Compute(req.Selection, sc)}, nil
}

func (s *Service) Funding(req FundingRequest) FundingResponse {
	return FundingResponse{Programs: funding.Match(req.Recommendations)}
}

// Catalog returns the default catalog merged with the user's overrides.
func (s *Service) Catalog(ctx context.Context, user string) ([]model.Intervention, error) {
	overrides, err := store.Resolve(ctx, s.catalogs, user)
	if err != nil {
		return nil, fmt.Errorf("loading catalog for %q: %w", user, err)
	}
	return scenario.Merge(scenario.DefaultCatalog(), overrides), nil
}

// SaveOverrides replaces the user's catalog overrides.
func (s *Service) SaveOverrides(ctx context.Context, user string, overrides []model.Intervention) error {
	if s.catalogs == nil {
		return ErrNoStore
	}
	if strings.TrimSpace(user) == "" {
		return fmt.Errorf("%w: empty user", ErrInvalid)
	}
	if err := validateInterventions(overrides); err != nil {
		return err
	}
	if err := s.catalogs.Put(ctx, user, overrides); err != nil {
		return fmt.Errorf("saving catalog for %q: %w", user, err)
	}
	s.log.WithFields(logrus.Fields{"user": user, "overrides": len(overrides)}).Info("catalog overrides saved")
	return nil
}

// DeleteOverrides drops the user's overrides. store.ErrNotFound is passed
// through when there were none.
func (s *Service) DeleteOverrides(ctx context.Context, user string) error {
	if s.catalogs == nil {
		return ErrNoStore
	}
	if err := s.catalogs.Delete(ctx, user); err != nil {
		return fmt.Errorf("deleting catalog for %q: %w", user, err)
	}
	s.log.WithField("user", user).Info("catalog overrides deleted")
	return nil
}

// validateInterventions rejects entries without an id, negative values and
// inverted cost ranges. It wraps ErrInvalid.
func validateInterventions(list []model.Intervention) error {
	for i, iv := range list {
		if iv.ID == "" {
			return fmt.Errorf("%w: intervention %d has no id", ErrInvalid, i)
		}
		if iv.CostMin < 0 || iv.CostMax < 0 || (iv.CostMax > 0 && iv.CostMin > iv.CostMax) {
			return fmt.Errorf("%w: intervention %s has cost range %v-%v", ErrInvalid, iv.ID, iv.CostMin, iv.CostMax)
		}
		if iv.EfficiencyGainPercent < 0 || iv.BaselineKWhSavings < 0 {
			return fmt.Errorf("%w: intervention %s has negative savings", ErrInvalid, iv.ID)
		}
	}
	return nil
}
