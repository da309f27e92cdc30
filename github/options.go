package github

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Option configures a Provider.
type Option func(*Provider) error

// WithBaseURL points the provider at a GitHub Enterprise API root such as
// "https://github.example.com/api/v3/", or at a test server.
func WithBaseURL(raw string) Option {
	return func(p *Provider) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse base URL: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base URL %q must be http or https", raw)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		p.baseURL = u
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for every API call.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) error {
		if client == nil {
			return errors.New("httpClient is nil")
		}
		p.httpClient = client
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(p *Provider) error {
		if agent == "" {
			return errors.New("user agent cannot be empty")
		}
		p.userAgent = agent
		return nil
	}
}

// WithToken authenticates with a personal access or OAuth token.
func WithToken(token string) Option {
	return func(p *Provider) error {
		if token == "" {
			return errors.New("token cannot be empty")
		}
		if p.basicAuth != nil {
			return errors.New("cannot use both basic auth and token auth")
		}
		p.token = token
		return nil
	}
}

// WithBasicAuth authenticates with a username and password or token. Prefer
// WithToken.
func WithBasicAuth(username, password string) Option {
	return func(p *Provider) error {
		if username == "" {
			return errors.New("username cannot be empty")
		}
		if p.token != "" {
			return errors.New("cannot use both basic auth and token auth")
		}
		p.basicAuth = &struct{ Username, Password string }{username, password}
		return nil
	}
}
