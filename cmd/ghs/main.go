package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/ghsearch/internal/adapter/config"
	"github.com/yourusername/ghsearch/internal/adapter/github"
	"github.com/yourusername/ghsearch/internal/adapter/logging"
	"github.com/yourusername/ghsearch/internal/adapter/storage"
	"github.com/yourusername/ghsearch/internal/adapter/system"
	"github.com/yourusername/ghsearch/internal/ui"
	"github.com/yourusername/ghsearch/internal/ui/components"
	"github.com/yourusername/ghsearch/internal/ui/search"
	"github.com/yourusername/ghsearch/internal/usecase"
)

var version = "0.1.0"

// ghTimeout bounds every call to the gh CLI.
const ghTimeout = 5 * time.Second

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"api-url":     "api_url",
	"per-page":    "per_page",
	"timeout":     "timeout",
	"log-level":   "log_level",
	"log-file":    "log_file",
	"theme":       "theme",
	"preferences": "preferences_path",
}

type options struct {
	configFile string
	user       string
	me         bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ghs",
		Short: "ghsearch - browse a GitHub user's repositories",
		Long: `ghsearch (ghs) lists the public repositories of a GitHub user in an
interactive terminal screen. Open a repository in your browser or copy its
link straight from the list.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is <user config dir>/ghsearch/config.yaml)")
	flags.String("api-url", "", "GitHub API base URL")
	flags.Int("per-page", 0, "number of repositories to request (1-100)")
	flags.Duration("timeout", 0, "HTTP request timeout")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "log file path")
	flags.String("theme", "", "color theme ("+strings.Join(ui.GetThemeNames(), ", ")+")")
	flags.String("preferences", "", "preferences file path")
	flags.BoolVar(&opts.me, "me", false, "search the user signed in to the gh CLI")

	rootCmd.Flags().StringVarP(&opts.user, "user", "u", "", "search this username right away")

	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(configCmd(opts))

	return rootCmd
}

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [username]",
		Short: "Print a user's repositories without the interactive screen",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !opts.me {
				return errors.New("a username or --me is required")
			}
			username := ""
			if len(args) == 1 {
				username = args[0]
			}
			return runList(cmd, opts, username)
		},
	}
}

func configCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, opts)
		},
	}
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, *config.Loader, error) {
	loader := config.NewLoader(opts.configFile)
	for flag, key := range flagKeys {
		if err := loader.Viper().BindPFlag(key, cmd.Root().PersistentFlags().Lookup(flag)); err != nil {
			return nil, nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, loader, nil
}

// app holds the adapters shared by every command.
type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	closeLog func() error
	store    *storage.FileStore
	client   *github.Client
	browser  *system.Browser
	sharer   *system.Sharer
	gh       *github.GHCLI
}

func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, _, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	ui.SetGlobalTheme(cfg.Theme)

	store, err := storage.NewFileStore(cfg.PreferencesPath, logger)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to open preferences (remove %s to reset): %w", cfg.PreferencesPath, err)
	}

	gh := github.NewGHCLI("")
	token := cfg.GitHubToken
	if token == "" && cfg.GHAuth {
		ctx, cancel := context.WithTimeout(cmd.Context(), ghTimeout)
		if t, err := gh.Token(ctx); err == nil {
			token = t
			logger.Debug("Using token from gh CLI")
		} else {
			logger.WithError(err).Debug("No token from gh CLI, continuing anonymously")
		}
		cancel()
	}

	client, err := github.NewClient(github.ClientOptions{
		Token:   token,
		APIURL:  cfg.APIURL,
		PerPage: cfg.PerPage,
		Timeout: cfg.Timeout,
	}, logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"version":  version,
		"api_url":  cfg.APIURL,
		"per_page": cfg.PerPage,
		"token":    token != "",
	}).Info("Starting ghsearch")

	return &app{
		cfg:      cfg,
		logger:   logger,
		closeLog: closeLog,
		store:    store,
		client:   client,
		browser:  system.NewBrowser(logger),
		sharer:   system.NewSharer(logger),
		gh:       gh,
	}, nil
}

// resolveUser returns username, or the gh CLI login when me is set.
func (a *app) resolveUser(ctx context.Context, username string, me bool) (string, error) {
	if !me {
		return username, nil
	}
	if username != "" {
		return "", errors.New("--me cannot be combined with a username")
	}

	ctx, cancel := context.WithTimeout(ctx, ghTimeout)
	defer cancel()

	login, err := a.gh.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("--me needs a signed-in gh CLI: %w", err)
	}
	a.logger.WithField("username", login).Debug("Resolved username from gh CLI")
	return login, nil
}

func (a *app) Close() {
	if err := a.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
}

func runSearch(cmd *cobra.Command, opts *options) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	username, err := a.resolveUser(cmd.Context(), opts.user, opts.me)
	if err != nil {
		return err
	}

	terminal := &search.TerminalOutput{}
	a.sharer.SetTerminal(terminal)

	model := search.New(search.Deps{
		Store:      a.store,
		Fetcher:    a.client,
		Opener:     a.browser,
		Sharer:     a.sharer,
		Logger:     a.logger,
		Terminal:   terminal,
		Username:   username,
		AutoSubmit: username != "",
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		a.logger.WithError(err).Error("UI error")
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}

// runList drives the same controller as the interactive screen, printing
// the result instead of rendering it.
func runList(cmd *cobra.Command, opts *options, username string) error {
	ui.Output = cmd.OutOrStdout()

	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	username, err = a.resolveUser(cmd.Context(), username, opts.me)
	if err != nil {
		return err
	}

	list := usecase.NewRepositoryList(a.browser, a.sharer, a.logger)
	controller := usecase.NewScreenController(usecase.ScreenControllerDeps{
		Store:     a.store,
		Fetcher:   a.client,
		Presenter: list,
		Notifier:  ui.NotificationPrinter{},
		Logger:    a.logger,
	})
	defer controller.Close()

	job, ok := controller.Submit(username)
	if !ok {
		return fmt.Errorf("invalid username")
	}
	controller.Complete(job(cmd.Context()))

	if controller.State() != usecase.StateLoaded {
		return fmt.Errorf("failed to list repositories for %s", username)
	}

	if list.Len() == 0 {
		ui.PrintInfo(username + " has no public repositories")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, components.RenderHeader("Repositories", username))
	fmt.Fprintln(out, components.RenderDivider(40))
	for _, row := range list.Rows() {
		fmt.Fprintf(out, "%s  %s\n", ui.FormatValue(row.Name), row.URL)
		ui.PrintSubtle("    " + row.Meta)
	}
	ui.PrintSuccess(components.FormatCount(list.Len(), "repository", "repositories"))
	return nil
}

func runConfig(cmd *cobra.Command, opts *options) error {
	ui.Output = cmd.OutOrStdout()

	cfg, loader, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	ui.SetGlobalTheme(cfg.Theme)
	theme := ui.GetGlobalThemeManager().GetCurrentTheme()

	source := loader.ConfigFileUsed()
	if source == "" {
		source = "(defaults and environment)"
	}

	out := cmd.OutOrStdout()
	rows := []struct{ label, value string }{
		{"Config file:", source},
		{"GitHub token:", cfg.MaskedToken()},
		{"API URL:", cfg.APIURL},
		{"Per page:", fmt.Sprintf("%d", cfg.PerPage)},
		{"Timeout:", cfg.Timeout.String()},
		{"Preferences:", cfg.PreferencesPath},
		{"Log level:", cfg.LogLevel},
		{"Log file:", cfg.LogFile},
		{"Theme:", theme.Name + " (" + theme.Description + ")"},
		{"gh CLI auth:", fmt.Sprintf("%t", cfg.GHAuth)},
	}
	fmt.Fprintln(out, components.RenderHeader("ghsearch configuration", ""))
	fmt.Fprintln(out, ui.GetGlobalThemeManager().RenderSeparator(60))
	for _, r := range rows {
		fmt.Fprintf(out, "%s %s\n", ui.FormatLabel(components.PadRight(r.label, 14)), ui.FormatValue(r.value))
	}
	return nil
}
