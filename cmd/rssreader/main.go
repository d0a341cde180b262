// Command rssreader reads RSS and Atom feeds in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tesso57/rssreader/internal/application/settings"
	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/infrastructure/config"
	"github.com/tesso57/rssreader/internal/infrastructure/feed"
	"github.com/tesso57/rssreader/internal/infrastructure/i18n"
	"github.com/tesso57/rssreader/internal/infrastructure/logging"
	"github.com/tesso57/rssreader/internal/presentation/console"
	"github.com/tesso57/rssreader/internal/presentation/tui"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"Config file path." type:"path"`
	LogFile  string `name:"log-file" help:"Override the log file path."`
	LogLevel string `name:"log-level" help:"Override the log level."`
}

// CLI is the command-line interface.
type CLI struct {
	Globals

	TUI   tuiCmd   `cmd:"" default:"1" help:"Run the terminal reader (default)."`
	Watch watchCmd `cmd:"" help:"Print new posts to stdout as they arrive."`
}

type tuiCmd struct{}

type watchCmd struct{}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("rssreader"),
		kong.Description("A terminal RSS/Atom reader."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(kctx.Run(&cli.Globals))
}

// app holds the wired reader core.
type app struct {
	settings settings.Settings
	logger   zerolog.Logger
	closer   io.Closer
	source   feed.Source
	reader   *usecase.Reader
	poll     *usecase.PollLoop
	messages *i18n.Translator
}

func loadSettings(g *Globals) (settings.Settings, error) {
	store, err := config.Load(g.Config)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	return cfg, nil
}

func newApp(cfg settings.Settings, logger zerolog.Logger, closer io.Closer) (*app, error) {
	messages, err := i18n.New(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	source := feed.NewSource()
	reader := usecase.NewReader(source, logger)
	return &app{
		settings: cfg,
		logger:   logger,
		closer:   closer,
		source:   source,
		reader:   reader,
		poll:     usecase.NewPollLoop(reader, source, cfg.Poll, logger),
		messages: messages,
	}, nil
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// subscribeConfigured subscribes to the configured feeds in order.
// Failures are logged and surface as the feed error banner.
func (a *app) subscribeConfigured(ctx context.Context) {
	for _, url := range a.settings.Feeds {
		if ctx.Err() != nil {
			return
		}
		if err := a.reader.Subscribe(ctx, url); err != nil {
			a.logger.Warn().Err(err).Str("url", url).Msg("configured feed not subscribed")
		}
	}
}

// runPoll runs the poll loop until ctx is cancelled.
func (a *app) runPoll(ctx context.Context) {
	if err := a.poll.Run(ctx); err != nil && ctx.Err() == nil {
		a.logger.Error().Err(err).Msg("poll loop stopped")
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func (c *tuiCmd) Run(g *Globals) error {
	cfg, err := loadSettings(g)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, logger, closer)
	if err != nil {
		_ = closer.Close()
		return err
	}
	defer func() { _ = a.Close() }()

	ctx, cancel := signalContext()
	defer cancel()

	model := tui.NewModel(ctx, cfg, a.reader, a.messages)
	go func() {
		a.subscribeConfigured(ctx)
		a.runPoll(ctx)
	}()

	a.logger.Info().Int("feeds", len(cfg.Feeds)).Msg("starting tui")
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (c *watchCmd) Run(g *Globals) error {
	cfg, err := loadSettings(g)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, logging.NewConsole(os.Stderr, level), nil)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	return a.watch(ctx, os.Stdout)
}

// watch prints posts to out until ctx is cancelled.
func (a *app) watch(ctx context.Context, out io.Writer) error {
	console.NewWatcher(out, a.reader, a.messages, a.logger).Start()
	a.subscribeConfigured(ctx)
	a.logger.Info().Int("feeds", len(a.reader.Feeds())).Dur("interval", a.settings.PollInterval()).Msg("watching")
	a.runPoll(ctx)
	return nil
}
