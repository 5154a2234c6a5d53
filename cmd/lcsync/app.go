package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/lcsync/internal/config"
	"github.com/phrazzld/lcsync/internal/domain/srs"
	"github.com/phrazzld/lcsync/internal/platform/leetcode"
	"github.com/phrazzld/lcsync/internal/platform/logger"
	"github.com/phrazzld/lcsync/internal/platform/notion"
	"github.com/phrazzld/lcsync/internal/service"
)

// application holds the shared dependencies of every command.
type application struct {
	config *config.Config
	logger *slog.Logger

	// syncService rejects overlapping runs with service.ErrSyncInProgress.
	syncService service.SyncService
}

// newApplicationFromFlags loads configuration, sets up logging and wires the
// application.
func newApplicationFromFlags(opts *rootOptions) (*application, error) {
	cfg, err := config.LoadFromDir(opts.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.logLevel != "" {
		if _, ok := logger.ParseLevel(opts.logLevel); !ok {
			return nil, fmt.Errorf("invalid --log-level %q", opts.logLevel)
		}
		cfg.Server.LogLevel = opts.logLevel
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Debug("configuration loaded",
		"username", cfg.LeetCode.Username,
		"recent_limit", cfg.LeetCode.RecentLimit,
		"timezone", cfg.Sync.Timezone,
		"auth_configured", cfg.Auth.Configured())

	return newApplication(cfg, l)
}

// newApplication builds the clients and the sync service from cfg.
func newApplication(cfg *config.Config, l *slog.Logger) (*application, error) {
	submissions, err := leetcode.NewClient(cfg.LeetCode, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create leetcode client: %w", err)
	}

	entries, err := notion.NewClient(cfg.Notion, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create notion client: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Sync.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid sync timezone %q: %w", cfg.Sync.Timezone, err)
	}

	svc, err := service.NewSyncService(submissions, entries, srs.NewDefaultService(), service.SyncOptions{
		Username:    cfg.LeetCode.Username,
		Limit:       cfg.LeetCode.RecentLimit,
		SourceLabel: cfg.Sync.SourceLabel,
		Location:    loc,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      l,
		syncService: service.NewRunner(svc),
	}, nil
}
