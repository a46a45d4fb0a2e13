// Package engine is the outbound boundary to the third-party loan pricing
// engine: OAuth token acquisition, SOAP request construction, and the
// pricing call itself. Both outbound calls are timeout-bounded and fail
// closed on timeout or non-2xx.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"lendrock/rate-quote/internal/config"
	"lendrock/rate-quote/internal/engineparser"
	"lendrock/rate-quote/internal/models"
	"lendrock/rate-quote/internal/quoteerror"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Client calls the pricing engine. Safe for concurrent use.
type Client struct {
	cfg           *config.Config
	pricingClient *http.Client
	authClient    *http.Client
	tokens        *TokenCache
}

// NewClient builds a Client from configuration.
func NewClient(cfg *config.Config) *Client {
	c := &Client{
		cfg:           cfg,
		pricingClient: &http.Client{Timeout: cfg.PricingTimeout()},
		authClient:    &http.Client{Timeout: cfg.AuthTimeout()},
	}
	c.tokens = NewTokenCache(c.fetchToken)
	return c
}

// Price submits a scenario to the engine and returns the assembled pricing
// result. Transport failures, engine-reported errors, and unparsable
// payloads each surface as their own error type.
func (c *Client) Price(ctx context.Context, scenario *models.LoanScenario) (*models.PricingResult, error) {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		return nil, err
	}

	body, err := BuildSOAPRequest(scenario)
	if err != nil {
		return nil, fmt.Errorf("building pricing request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Engine.PricingURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building pricing request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "PriceLoan")
	req.Header.Set("Authorization", "Bearer "+token)

	log.WithField("url", c.cfg.Engine.PricingURL).Debug("Submitting pricing request")
	resp, err := c.pricingClient.Do(req)
	if err != nil {
		return nil, &quoteerror.TransportError{Endpoint: "pricing", Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &quoteerror.TransportError{Endpoint: "pricing", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &quoteerror.TransportError{Endpoint: "pricing", Status: resp.StatusCode}
	}

	if err := engineparser.ValidateResponse(string(raw)); err != nil {
		return nil, err
	}
	return engineparser.ParseResponse(string(raw))
}

// fetchToken performs the client-credentials token call against the auth
// endpoint. The expiry is pulled in by a minute so a token is never used
// right at its edge.
func (c *Client) fetchToken(ctx context.Context) (string, time.Time, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.Engine.ClientID)
	form.Set("client_secret", c.cfg.Engine.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Engine.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("building auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.authClient.Do(req)
	if err != nil {
		return "", time.Time{}, &quoteerror.TransportError{Endpoint: "auth", Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", time.Time{}, &quoteerror.TransportError{Endpoint: "auth", Status: resp.StatusCode}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", time.Time{}, &quoteerror.TransportError{Endpoint: "auth", Err: err}
	}
	if payload.AccessToken == "" {
		return "", time.Time{}, &quoteerror.TransportError{Endpoint: "auth", Err: fmt.Errorf("empty access token")}
	}

	expiry := time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - time.Minute)
	log.WithField("expires_in", payload.ExpiresIn).Debug("Acquired engine token")
	return payload.AccessToken, expiry, nil
}
