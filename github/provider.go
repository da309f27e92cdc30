// Package github implements meigit.Provider on the GitHub REST API: the git
// data endpoints back the ObjectStore, and the repository, fork, pull request
// and organization endpoints back the hosting operations.
package github

import (
	"context"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v72/github"
	"golang.org/x/sync/singleflight"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/log"
)

const (
	defaultUserAgent = "meigit"
	defaultTimeout   = 30 * time.Second
)

// Provider is safe for concurrent use.
type Provider struct {
	client *gh.Client

	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	token      string
	basicAuth  *struct{ Username, Password string }

	// loads deduplicates concurrent loads of the same object across the
	// stores opened by this provider.
	loads singleflight.Group
}

var _ meigit.Provider = (*Provider)(nil)

// New creates a Provider for api.github.com unless WithBaseURL says
// otherwise. Without WithToken or WithBasicAuth requests are anonymous.
func New(opts ...Option) (*Provider, error) {
	p := &Provider{userAgent: defaultUserAgent}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	httpClient := p.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if p.basicAuth != nil {
		copied := *httpClient
		copied.Transport = &gh.BasicAuthTransport{
			Username:  p.basicAuth.Username,
			Password:  p.basicAuth.Password,
			Transport: httpClient.Transport,
		}
		httpClient = &copied
	}

	client := gh.NewClient(httpClient)
	if p.token != "" {
		client = client.WithAuthToken(p.token)
	}
	if p.baseURL != nil {
		client.BaseURL = p.baseURL
	}
	client.UserAgent = p.userAgent

	p.client = client
	return p, nil
}

// OpenStore returns the object store of repo. It does not check that the
// repository exists.
func (p *Provider) OpenStore(ctx context.Context, repo meigit.RepoName) (meigit.ObjectStore, error) {
	log.FromContext(ctx).Debug("Open GitHub store", "repo", repo.String())
	return &Store{provider: p, repo: repo}, nil
}
