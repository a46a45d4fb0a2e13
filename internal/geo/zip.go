// Package geo resolves ZIP codes to city/county/state through an external
// lookup service, with an in-memory cache in front of it.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"lendrock/rate-quote/internal/quoteerror"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Location is the resolved place for a ZIP code.
type Location struct {
	City   string `json:"city"`
	County string `json:"county"`
	State  string `json:"state"`
}

// Service is a cache-first ZIP lookup. Safe for concurrent use.
type Service struct {
	mu        sync.RWMutex
	cache     map[string]Location
	client    *http.Client
	lookupURL string
}

// NewService builds a Service against a lookup endpoint.
func NewService(lookupURL string, timeout time.Duration) *Service {
	return &Service{
		cache:     make(map[string]Location),
		client:    &http.Client{Timeout: timeout},
		lookupURL: lookupURL,
	}
}

// Lookup resolves a ZIP code, consulting the cache first.
func (s *Service) Lookup(ctx context.Context, zip string) (Location, error) {
	s.mu.RLock()
	loc, ok := s.cache[zip]
	s.mu.RUnlock()
	if ok {
		return loc, nil
	}

	u := fmt.Sprintf("%s?zip=%s", s.lookupURL, url.QueryEscape(zip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Location{}, fmt.Errorf("building ZIP lookup request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return Location{}, &quoteerror.TransportError{Endpoint: "geo", Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Location{}, &quoteerror.TransportError{Endpoint: "geo", Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return Location{}, &quoteerror.TransportError{Endpoint: "geo", Err: err}
	}

	s.mu.Lock()
	s.cache[zip] = loc
	s.mu.Unlock()
	log.WithFields(logrus.Fields{"zip": zip, "state": loc.State}).Debug("Cached ZIP lookup")
	return loc, nil
}
