package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"keycards/internal/catalog"
	"keycards/internal/config"
	"keycards/internal/infra/logx"
	"keycards/internal/prefs"
	"keycards/internal/ui"
)

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	debug      bool
	ephemeral  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "keycards",
		Short: "Browse keyboard shortcuts in the terminal",
		Long: `keycards shows a filterable catalog of keyboard shortcuts as cards.
Filter by OS and category, search descriptions, details and key combinations,
and expand a card to see its details or zoom into its screenshot.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowser(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultPath()))
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs to log.file or ./debug.log")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "keep preferences in memory for this run only")

	cmd.AddCommand(newListCmd(opts), newThemeCmd(opts), newConfigCmd(opts))
	return cmd
}

// path is the config file selected by --config.
func (o *options) path() string {
	if o.configPath == "" {
		return config.DefaultPath()
	}
	return o.configPath
}

// load reads the configuration selected by the flags.
func (o *options) load() (config.Config, error) {
	cfg, err := config.Load(o.path())
	if err != nil {
		return config.Config{}, err
	}
	if o.ephemeral {
		cfg.Prefs.Type = prefs.TypeMemory
	}
	return cfg, nil
}

// setupLogging routes logx into a file, or nowhere. The terminal belongs to
// the UI, so logs never go to stdout or stderr.
func setupLogging(cfg config.Config, debug bool) (func() error, error) {
	logx.RegisterSecret(cfg.Prefs.Redis.Password)
	logx.SetMinLevel(logx.ParseLevel(cfg.Log.Level))

	path := cfg.Log.File
	if debug {
		logx.SetMinLevel(logx.LevelDebug)
		logx.SetVerbose(true)
		if path == "" {
			path = "debug.log"
		}
	}
	if path == "" {
		logx.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := logx.OpenFile(path)
	if err != nil {
		return nil, err
	}
	// stdlib log users end up in the same file as JSON lines
	log.SetFlags(0)
	log.SetOutput(logx.StdlogWriter(logx.LevelDebug, f))
	return f.Close, nil
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Dir == "" {
		return catalog.Builtin()
	}
	return catalog.LoadDir(cfg.Catalog.Dir, cfg.Catalog.Pattern)
}

// openStore falls back to an in-memory store so a broken preference backend
// never keeps the browser from starting.
func openStore(cfg config.Config) prefs.Store {
	store, err := prefs.NewStore(cfg.Prefs)
	if err != nil {
		logx.Warnf("preferences unavailable, dark mode will not persist: %v", err)
		return prefs.NewMemoryStore()
	}
	return store
}

func runBrowser(opts *options) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, opts.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	store := openStore(cfg)
	defer store.Close()

	logx.Infof("loaded %d shortcuts, prefs=%s search=%s", len(cat.Shortcuts), cfg.Prefs.Type, cfg.Search.Mode)

	_, err = tea.NewProgram(
		ui.InitialModel(cat, cfg, store),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	).Run()
	return err
}
