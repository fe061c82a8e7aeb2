package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"

	pkgerrors "github.com/honeynil/coffee-token-inspector/pkg/errors"
	"github.com/joho/godotenv"
)

// Auth0 holds the identity provider tenant settings used by the frontend.
type Auth0 struct {
	Domain      string `json:"url"`
	Audience    string `json:"audience"`
	ClientID    string `json:"clientId"`
	CallbackURL string `json:"callbackURL"`
}

type Config struct {
	APIServerURL    string
	Auth0           Auth0
	HTTPAddr        string
	LogLevel        string
	TracingEndpoint string
}

// Load reads .env files (if any) and the process environment.
func Load(filenames ...string) *Config {
	if err := godotenv.Load(filenames...); err != nil {
		slog.Warn("failed to load .env file, using default values", "error", err)
	}

	cfg := &Config{
		APIServerURL: os.Getenv("API_SERVER_URL"),
		Auth0: Auth0{
			Domain:      os.Getenv("AUTH0_DOMAIN"),
			Audience:    os.Getenv("AUTH0_AUDIENCE"),
			ClientID:    os.Getenv("AUTH0_CLIENT_ID"),
			CallbackURL: os.Getenv("AUTH0_CALLBACK_URL"),
		},
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		TracingEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.APIServerURL == "" {
		cfg.APIServerURL = "http://127.0.0.1:5000"
	}
	if cfg.Auth0.Domain == "" {
		cfg.Auth0.Domain = "fullstackcoffee.eu"
	}
	if cfg.Auth0.Audience == "" {
		cfg.Auth0.Audience = "drinks-detail"
	}
	if cfg.Auth0.ClientID == "" {
		cfg.Auth0.ClientID = "JXGiE7BoKPWBr5rSfkbACpSEUR9vpYNZ"
	}
	if cfg.Auth0.CallbackURL == "" {
		cfg.Auth0.CallbackURL = "http://127.0.0.1:8100"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	slog.Info("config loaded", "api_server_url", cfg.APIServerURL, "auth0_domain", cfg.Auth0.Domain, "http_addr", cfg.HTTPAddr)
	return cfg
}

// Validate checks that the configured URLs are absolute.
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"API_SERVER_URL":     c.APIServerURL,
		"AUTH0_CALLBACK_URL": c.Auth0.CallbackURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s=%q is not an absolute URL", pkgerrors.ErrInvalidConfig, name, raw)
		}
	}
	if c.Auth0.Domain == "" || c.Auth0.ClientID == "" {
		return fmt.Errorf("%w: auth0 domain and client id are required", pkgerrors.ErrInvalidConfig)
	}
	return nil
}

// TenantURL is the Auth0 tenant base, e.g. https://fullstackcoffee.eu.auth0.com
func (a Auth0) TenantURL() string {
	return "https://" + a.Domain + ".auth0.com"
}

// LoginURL builds the implicit-flow authorize link the frontend redirects to.
func (a Auth0) LoginURL(callbackPath string) string {
	q := url.Values{}
	q.Set("audience", a.Audience)
	q.Set("response_type", "token")
	q.Set("client_id", a.ClientID)
	q.Set("redirect_uri", a.CallbackURL+callbackPath)
	return a.TenantURL() + "/authorize?" + q.Encode()
}
