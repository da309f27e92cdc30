// Package config loads the settings of the meigit command line from, in
// order of precedence, flags, MEIGIT_* environment variables and the YAML
// file at ~/.config/meigit/config.yaml.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

const (
	StoreGitHub = "github"
	StoreLoose  = "loose"
)

// Config is the resolved command line configuration.
type Config struct {
	Token    string `mapstructure:"token"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	// Store selects the object store: "github" or "loose".
	Store string `mapstructure:"store"`
	// StorePath is the repository directory of the loose store.
	StorePath string `mapstructure:"store_path"`
	// Repo is the "owner/name" repository the commands work on.
	Repo string `mapstructure:"repo"`
	// APIURL overrides the GitHub API root.
	APIURL  string `mapstructure:"api_url"`
	JSON    bool   `mapstructure:"json"`
	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log_file"`
	Author  Author `mapstructure:"author"`
}

// Author is the commit identity configured for writes.
type Author struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// IsComplete reports whether both name and email are set.
func (a Author) IsComplete() bool {
	return a.Name != "" && a.Email != ""
}

// NewViper returns a viper instance with the meigit defaults and environment
// bindings.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("store", StoreGitHub)
	v.SetDefault("store_path", ".")
	v.SetEnvPrefix("MEIGIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("token", "MEIGIT_TOKEN", "GITHUB_TOKEN")
	// Unmarshal only sees keys viper knows about.
	for _, key := range []string{"username", "password", "repo", "api_url", "json", "debug", "log_file", "author.name", "author.email"} {
		_ = v.BindEnv(key)
	}
	return v
}

// DefaultPath returns ~/.config/meigit/config.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".config", "meigit", "config.yaml"), nil
}

// Load reads file, or the default config file when file is empty, into v
// and decodes the result. A missing default file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	explicit := file != ""
	if !explicit {
		var err error
		file, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	path, err := homedir.Expand(file)
	if err != nil {
		return nil, fmt.Errorf("expand config path %q: %w", file, err)
	}

	if _, statErr := os.Stat(path); statErr == nil || explicit {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.StorePath, err = homedir.Expand(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("expand store path: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that cannot be defaulted.
func Validate(cfg *Config) error {
	switch cfg.Store {
	case StoreGitHub, StoreLoose:
	default:
		return fmt.Errorf("unknown store %q: use %q or %q", cfg.Store, StoreGitHub, StoreLoose)
	}

	if cfg.APIURL != "" {
		u, err := url.Parse(cfg.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("api_url %q is not an http(s) URL", cfg.APIURL)
		}
	}

	if (cfg.Author.Name == "") != (cfg.Author.Email == "") {
		return errors.New("author needs both name and email")
	}
	return nil
}

// GitAuthor reads the [user] identity of a git config file such as
// ~/.gitconfig. A missing file yields an empty Author.
func GitAuthor(path string) (Author, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Author{}, err
	}

	file, err := ini.LoadSources(ini.LoadOptions{Loose: true, Insensitive: true}, expanded)
	if err != nil {
		return Author{}, fmt.Errorf("read %s: %w", expanded, err)
	}

	user := file.Section("user")
	return Author{
		Name:  strings.TrimSpace(user.Key("name").String()),
		Email: strings.TrimSpace(user.Key("email").String()),
	}, nil
}

// ResolveAuthor returns the configured author, falling back to the identity
// in ~/.gitconfig. The result is empty when neither is complete, and the
// session then uses the hosting profile.
func ResolveAuthor(cfg *Config) Author {
	if cfg.Author.IsComplete() {
		return cfg.Author
	}

	author, err := GitAuthor("~/.gitconfig")
	if err != nil || !author.IsComplete() {
		return Author{}
	}
	return author
}
