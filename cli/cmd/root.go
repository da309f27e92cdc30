// Package cmd implements the meigit command line.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mei-friend/meigit"
	"github.com/mei-friend/meigit/cli/internal/client"
	"github.com/mei-friend/meigit/cli/internal/config"
	"github.com/mei-friend/meigit/cli/internal/logging"
	"github.com/mei-friend/meigit/cli/internal/output"
	"github.com/mei-friend/meigit/log"
	"github.com/mei-friend/meigit/retry"
	"github.com/mei-friend/meigit/storage"
)

// Dependencies are the outside world of the command line. Zero fields take
// the process defaults.
type Dependencies struct {
	NewProvider func(cfg *config.Config) (meigit.Provider, error)
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

func (d Dependencies) withDefaults() Dependencies {
	if d.NewProvider == nil {
		d.NewProvider = client.NewProvider
	}
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	return d
}

// app is the state shared by the commands of one invocation.
type app struct {
	deps    Dependencies
	viper   *viper.Viper
	cfgFile string
	branch  string

	cfg       *config.Config
	logger    *logging.Logger
	closer    io.Closer
	formatter output.Formatter
}

// Execute runs the command line with the process arguments.
func Execute() error {
	return Run(context.Background(), Dependencies{}, os.Args[1:])
}

// Run executes one invocation with args and reports a failure on stderr.
func Run(ctx context.Context, deps Dependencies, args []string) error {
	a := &app{deps: deps.withDefaults(), viper: config.NewViper()}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		a.printError(err)
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "meigit",
		Short: "Read and commit single files of GitHub repositories",
		Long: `meigit reads and edits single files of GitHub repositories without a
local clone. Each write becomes one commit on the selected branch.

Settings come from flags, MEIGIT_* environment variables and
~/.config/meigit/config.yaml, in that order of precedence.

Authentication can be provided via flags or environment variables:
  - MEIGIT_TOKEN: Token for the GitHub API
  - GITHUB_TOKEN: Used when MEIGIT_TOKEN is not set
  - MEIGIT_USERNAME + MEIGIT_PASSWORD: Basic auth

With --store loose the file commands work on a local git repository
instead, which is handy for trying out edits offline.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(a.deps.Stdin)
	root.SetOut(a.deps.Stdout)
	root.SetErr(a.deps.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default ~/.config/meigit/config.yaml)")
	flags.StringVarP(&a.branch, "branch", "b", "", "Branch to work on (default: the repository's default branch)")
	flags.StringP("repo", "R", "", "Repository as owner/name")
	flags.String("token", "", "Authentication token")
	flags.String("username", "", "Username for basic auth")
	flags.String("password", "", "Password for basic auth")
	flags.String("store", config.StoreGitHub, "Object store: github or loose")
	flags.String("store-path", ".", "Repository directory of the loose store")
	flags.String("api-url", "", "GitHub API root, e.g. for GitHub Enterprise")
	flags.Bool("json", false, "Output in JSON format")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("log-file", "", "Also write logs to this file")

	for key, flag := range map[string]string{
		"repo":       "repo",
		"token":      "token",
		"username":   "username",
		"password":   "password",
		"store":      "store",
		"store_path": "store-path",
		"api_url":    "api-url",
		"json":       "json",
		"debug":      "debug",
		"log_file":   "log-file",
	} {
		_ = a.viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		a.catCmd(),
		a.lsCmd(),
		a.writeCmd(),
		a.logCmd(),
		a.forkCmd(),
		a.pullRequestCmd(),
		a.branchesCmd(),
		a.reposCmd(),
		a.orgsCmd(),
	)
	return root
}

// setup loads the configuration and prepares logging, output and the
// context every command runs with.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.viper, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	var console io.Writer
	if a.deps.Stderr != io.Writer(os.Stderr) {
		console = a.deps.Stderr
	}
	logger, closer, err := logging.New(logging.Options{Debug: cfg.Debug, LogFile: cfg.LogFile, Console: console})
	if err != nil {
		return err
	}
	a.logger = logger
	a.closer = closer

	format := "human"
	if cfg.JSON {
		format = "json"
	}
	a.formatter = output.Get(format, cmd.OutOrStdout())

	ctx := cmd.Context()
	ctx = log.ToContext(ctx, logger)
	ctx = retry.ToContext(ctx, retry.NewExponentialBackoffRetrier())
	ctx = storage.ToContext(ctx, storage.NewInMemory())
	cmd.SetContext(ctx)

	logger.Debug("Loaded configuration", "store", cfg.Store, "repo", cfg.Repo, "api_url", cfg.APIURL)
	return nil
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *app) jsonOutput() bool {
	if a.cfg != nil {
		return a.cfg.JSON
	}
	return a.viper.GetBool("json")
}

func (a *app) printError(err error) {
	msg := err.Error()
	if errors.Is(err, meigit.ErrConflict) {
		msg += " (the branch moved, read the file again before writing)"
	}

	if a.jsonOutput() {
		_ = json.NewEncoder(a.deps.Stderr).Encode(map[string]string{"error": msg})
		return
	}
	fmt.Fprintf(a.deps.Stderr, "Error: %s\n", msg)
}

func (a *app) isLoose() bool {
	return a.cfg.Store == config.StoreLoose
}

// requireGitHub rejects commands that only a hosting service can serve.
func (a *app) requireGitHub(command string) error {
	if a.isLoose() {
		return fmt.Errorf("%s needs the %s store", command, config.StoreGitHub)
	}
	return nil
}
