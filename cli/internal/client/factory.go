// Package client builds the backends the commands talk to.
package client

import (
	"fmt"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/cli/internal/auth"
	"github.com/mei-friend/meigit/cli/internal/config"
	"github.com/mei-friend/meigit/github"
	"github.com/mei-friend/meigit/storage/loose"
)

// UserAgent identifies the command line to the GitHub API.
const UserAgent = "meigit-cli"

// NewProvider creates a GitHub provider with the configured credentials.
// Credentials from the environment fill in what the configuration leaves
// empty.
func NewProvider(cfg *config.Config) (meigit.Provider, error) {
	authConfig := auth.FromEnvironment()
	authConfig.Merge(cfg.Token, cfg.Username, cfg.Password)

	opts := append(authConfig.ToOptions(), github.WithUserAgent(UserAgent))
	if cfg.APIURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.APIURL))
	}

	provider, err := github.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create github provider: %w", err)
	}
	return provider, nil
}

// OpenLoose opens the git repository at cfg.StorePath.
func OpenLoose(cfg *config.Config) (*loose.Store, error) {
	store, err := loose.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", cfg.StorePath, err)
	}
	return store, nil
}
