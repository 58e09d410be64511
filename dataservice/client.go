package dataservice

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingBaseURL = errors.New("dataservice: base URL is required")
	ErrMissingAPIKey  = errors.New("dataservice: API key is required")
)

// Config carries everything needed to construct a Client.
type Config struct {
	// BaseURL is the root URL of the data service, without a trailing slash.
	BaseURL string
	// APIKey identifies the calling project and is sent on every request.
	APIKey string
	// Authorization is the full Authorization header value forwarded to the
	// service. Defaults to "Bearer <APIKey>" when empty.
	Authorization string
	// HTTPClient overrides the transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// EnvConfig is the environment surface for constructing clients. The admin
// key is optional; elevated clients fail at construction time without it.
type EnvConfig struct {
	URL      string `env:"DATASERVICE_URL"`
	AnonKey  string `env:"DATASERVICE_ANON_KEY"`
	AdminKey string `env:"DATASERVICE_ADMIN_KEY"`
}

// Client talks to the data service. It is safe for concurrent use and cheap
// to construct, but request contexts still memoize it per request so repeated
// accessor calls return the identical handle.
type Client struct {
	cfg Config
}

// New validates the configuration and constructs a client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Authorization == "" {
		cfg.Authorization = "Bearer " + cfg.APIKey
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}

	return &Client{cfg: cfg}, nil
}

// From starts a query against the given table or view.
func (c *Client) From(table string) *Query {
	return newQuery(c, table)
}

// Auth returns the authentication sub-client.
func (c *Client) Auth() *Auth {
	return &Auth{client: c}
}
