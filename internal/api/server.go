// Package api exposes the check over REST.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"heatpump_check/internal/climate"
	"heatpump_check/internal/metrics"
	"heatpump_check/internal/model"
	"heatpump_check/internal/service"
	"heatpump_check/internal/store"
)

const maxBodyBytes = 1 << 20

// Options wires optional surfaces into the router.
type Options struct {
	// WS is mounted at /ws when set.
	WS          http.Handler
	FrontendDir string
	// OnCatalogChange is called after a user's overrides were saved or deleted.
	OnCatalogChange func(user string)
}

type server struct {
	svc     *service.Service
	metrics *metrics.Metrics
	log     *logrus.Logger
	opts    Options
}

type ClimateResponse struct {
	PostalCode string               `json:"postal_code"`
	Climate    model.ClimateProfile `json:"climate"`
	Factor     float64              `json:"factor"`
	Fallback   bool                 `json:"fallback"`
}

type CatalogBody struct {
	Interventions []model.Intervention `json:"interventions"`
}

type errorBody struct {
	Error string `json:"error"`
}

// NewRouter registers every route on a fresh mux.Router.
func NewRouter(svc *service.Service, m *metrics.Metrics, log *logrus.Logger, opts Options) *mux.Router {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &server{svc: svc, metrics: m, log: log, opts: opts}

	r := mux.NewRouter()
	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.Handle("/metrics", m.Handler()).Methods("GET")

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.Handle("/climate/{postal}", m.WrapHandler("climate", http.HandlerFunc(s.getClimate))).Methods("GET")
	v1.Handle("/simulate", m.WrapHandler("simulate", http.HandlerFunc(s.postSimulate))).Methods("POST")
	v1.Handle("/scenario", m.WrapHandler("scenario", http.HandlerFunc(s.postScenario))).Methods("POST")
	v1.Handle("/funding", m.WrapHandler("funding", http.HandlerFunc(s.postFunding))).Methods("POST")
	v1.Handle("/catalog/{user}", m.WrapHandler("catalog", http.HandlerFunc(s.getCatalog))).Methods("GET")
	v1.Handle("/catalog/{user}", m.WrapHandler("catalog", http.HandlerFunc(s.putCatalog))).Methods("PUT")
	v1.Handle("/catalog/{user}", m.WrapHandler("catalog", http.HandlerFunc(s.deleteCatalog))).Methods("DELETE")

	if opts.WS != nil {
		r.Handle("/ws", opts.WS)
	}

	if opts.FrontendDir != "" {
		if _, err := os.Stat(opts.FrontendDir); err == nil {
			log.Infof("Serving frontend from %s", opts.FrontendDir)
			r.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.FrontendDir)))
		}
	}
	return r
}

// NewServer wraps the router with an access log written through log.
func NewServer(svc *service.Service, m *metrics.Metrics, log *logrus.Logger, opts Options) http.Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return handlers.LoggingHandler(log.WriterLevel(logrus.InfoLevel), NewRouter(svc, m, log, opts))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *server) getClimate(w http.ResponseWriter, r *http.Request) {
	postal := mux.Vars(r)["postal"]
	cp := climate.Lookup(postal)
	writeJSON(w, http.StatusOK, ClimateResponse{
		PostalCode: postal,
		Climate:    cp,
		Factor:     climate.Factor(cp),
		Fallback:   climate.IsFallback(cp),
	})
}

func (s *server) postSimulate(w http.ResponseWriter, r *http.Request) {
	var in model.Input
	if err := decodeBody(w, r, &in); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Simulate(in, service.TransportHTTP))
}

func (s *server) postScenario(w http.ResponseWriter, r *http.Request) {
	var req service.ScenarioRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Selection) == 0 {
		s.writeError(w, http.StatusBadRequest, errors.New("selection must not be empty"))
		return
	}
	resp, err := s.svc.Scenario(r.Context(), req)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) postFunding(w http.ResponseWriter, r *http.Request) {
	var req service.FundingRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Funding(req))
}

func (s *server) getCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.svc.Catalog(r.Context(), mux.Vars(r)["user"])
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, CatalogBody{Interventions: catalog})
}

func (s *server) putCatalog(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	var body CatalogBody
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.SaveOverrides(r.Context(), user, body.Interventions); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.catalogChanged(user)
	s.getCatalog(w, r)
}

func (s *server) deleteCatalog(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	if err := s.svc.DeleteOverrides(r.Context(), user); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.catalogChanged(user)
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) catalogChanged(user string) {
	if s.opts.OnCatalogChange != nil {
		s.opts.OnCatalogChange(user)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	entry := s.log.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}
