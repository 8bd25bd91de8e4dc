package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bahar-go/internal/auth"
	"bahar-go/internal/browser"
	"bahar-go/internal/config"
	"bahar-go/internal/db"
	dbsqlc "bahar-go/internal/db/sqlc"
	"bahar-go/internal/httpapi"
	"bahar-go/internal/preferences"
	"bahar-go/internal/providers/bahar"
	"bahar-go/internal/repositories"
	sqlcrepo "bahar-go/internal/repositories/sqlc"
	"bahar-go/internal/scheduler"
	"bahar-go/internal/services/bidding"
	"bahar-go/internal/telegram"
)

type Builder struct {
	cfg          *config.Config
	basePath     string
	ensureSchema bool

	pool      *pgxpool.Pool
	repo      repositories.ProposalRepository
	notifier  bidding.Notifier
	source    bidding.ProjectSource
	submitter bidding.OfferSubmitter
	browsers  *browser.Manager
	client    *http.Client

	scheduler *scheduler.Scheduler
	server    *http.Server
}

type BuilderOption func(*Builder)

func NewBuilder(cfg *config.Config, options ...BuilderOption) *Builder {
	builder := &Builder{
		cfg:          cfg,
		ensureSchema: true,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

func WithBasePath(basePath string) BuilderOption {
	return func(b *Builder) {
		b.basePath = basePath
	}
}

func WithEnsureSchema(enabled bool) BuilderOption {
	return func(b *Builder) {
		b.ensureSchema = enabled
	}
}

func WithDBPool(pool *pgxpool.Pool) BuilderOption {
	return func(b *Builder) {
		b.pool = pool
	}
}

func WithRepository(repo repositories.ProposalRepository) BuilderOption {
	return func(b *Builder) {
		b.repo = repo
	}
}

func WithNotifier(notifier bidding.Notifier) BuilderOption {
	return func(b *Builder) {
		b.notifier = notifier
	}
}

func WithProjectSource(source bidding.ProjectSource) BuilderOption {
	return func(b *Builder) {
		b.source = source
	}
}

func WithSubmitter(submitter bidding.OfferSubmitter) BuilderOption {
	return func(b *Builder) {
		b.submitter = submitter
	}
}

func WithBrowserManager(manager *browser.Manager) BuilderOption {
	return func(b *Builder) {
		b.browsers = manager
	}
}

func WithHTTPClient(client *http.Client) BuilderOption {
	return func(b *Builder) {
		b.client = client
	}
}

func WithScheduler(scheduler *scheduler.Scheduler) BuilderOption {
	return func(b *Builder) {
		b.scheduler = scheduler
	}
}

func WithHTTPServer(server *http.Server) BuilderOption {
	return func(b *Builder) {
		b.server = server
	}
}

func (b *Builder) Build(ctx context.Context) (*App, error) {
	if b.cfg == nil {
		return nil, errors.New("config is required")
	}

	basePath := b.basePath
	if basePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		basePath = wd
	}

	app := &App{Config: b.cfg}
	if b.pool == nil {
		pool, err := db.NewPool(ctx, b.cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		b.pool = pool
		app.ownsPool = true
	}
	app.Pool = b.pool

	if b.ensureSchema {
		path, err := filepath.Abs(basePath)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx, b.pool, path); err != nil {
			return nil, err
		}
	}

	if b.repo == nil {
		queries := dbsqlc.New(b.pool)
		b.repo = sqlcrepo.NewProposalRepository(queries)
	}
	app.Repo = b.repo

	if b.notifier == nil && b.cfg.TelegramEnabled() {
		b.notifier = telegram.NewSender(b.cfg.TelegramToken, b.cfg.TelegramChat, b.cfg.TelegramThreadID)
	}
	app.Notifier = b.notifier

	if b.client == nil {
		b.client = &http.Client{Timeout: 15 * time.Second}
	}

	if b.source == nil {
		tokens := auth.NewTokenManager(b.client, b.cfg.ESSOURL, b.cfg.BaharUsername, b.cfg.BaharPassword, b.cfg.TokenFile)
		b.source = bahar.NewScraper(b.client, b.cfg.BaharURL, tokens)
	}
	app.Source = b.source

	if b.browsers == nil {
		browserCfg := browser.DefaultConfig()
		browserCfg.Headless = b.cfg.BrowserHeadless
		b.browsers = browser.NewManager(browserCfg)
	}
	app.Browsers = b.browsers

	if b.submitter == nil {
		b.submitter = browser.NewSubmitter(b.browsers, b.cfg.BaharURL, b.cfg.BaharUsername, b.cfg.BaharPassword, b.cfg.AutoSubmitOffers)
	}
	app.Submitter = b.submitter

	prefs := preferences.Load(filepath.Join(basePath, b.cfg.PreferencesFile))

	app.BidService = bidding.NewService(app.Repo, app.Notifier, app.Source, app.Submitter, prefs, bidding.Config{
		MaxOffersPerDay: b.cfg.MaxOffersPerDay,
		MinBudget:       b.cfg.MinProjectBudget,
		MaxBudget:       b.cfg.MaxProjectBudget,
	})

	if b.scheduler == nil {
		b.scheduler = scheduler.New(b.cfg.CronSpec, app.BidService)
	}
	app.Scheduler = b.scheduler

	if b.server == nil {
		handler := httpapi.NewHandler(app.BidService, app.Browsers)
		b.server = &http.Server{
			Addr:              ":" + b.cfg.HTTPPort,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	app.Server = b.server

	return app, nil
}
