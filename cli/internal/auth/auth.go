package auth

import (
	"os"

	"github.com/mei-friend/meigit/github"
)

// Config holds authentication configuration
type Config struct {
	Token    string
	Username string
	Password string
}

// FromEnvironment reads authentication from environment variables.
// Priority: MEIGIT_TOKEN > GITHUB_TOKEN
func FromEnvironment() *Config {
	token := os.Getenv("MEIGIT_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	return &Config{
		Token:    token,
		Username: os.Getenv("MEIGIT_USERNAME"),
		Password: os.Getenv("MEIGIT_PASSWORD"),
	}
}

// Merge combines environment auth with command-line flags.
// Command-line flags take precedence over environment variables.
func (c *Config) Merge(flagToken, flagUsername, flagPassword string) {
	if flagToken != "" {
		c.Token = flagToken
	}
	if flagUsername != "" {
		c.Username = flagUsername
	}
	if flagPassword != "" {
		c.Password = flagPassword
	}
}

// ToOptions converts the configuration to GitHub provider options. A token
// wins over basic auth.
func (c *Config) ToOptions() []github.Option {
	var opts []github.Option

	if c.Token != "" {
		opts = append(opts, github.WithToken(c.Token))
	} else if c.Username != "" && c.Password != "" {
		opts = append(opts, github.WithBasicAuth(c.Username, c.Password))
	}

	return opts
}

// HasAuth returns true if any authentication is configured
func (c *Config) HasAuth() bool {
	return c.Token != "" || (c.Username != "" && c.Password != "")
}
