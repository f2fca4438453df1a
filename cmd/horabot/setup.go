package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rcondori/horabot/internal/config"
	"github.com/rcondori/horabot/internal/core"
	"github.com/rcondori/horabot/internal/dates"
	"github.com/rcondori/horabot/internal/intent"
	"github.com/rcondori/horabot/internal/loader"
	"github.com/rcondori/horabot/internal/memory"
	"github.com/rcondori/horabot/internal/providers/llm"
	"github.com/rcondori/horabot/internal/resolver"
	"github.com/rcondori/horabot/internal/schedule"
	"github.com/rcondori/horabot/internal/storage/sqlite"
	"github.com/rcondori/horabot/internal/transport/cli"
	"github.com/rcondori/horabot/internal/transport/telegram"
	"github.com/rcondori/horabot/pkg/log"
	"github.com/rcondori/horabot/pkg/srv"
)

// historyLimit caps how many stored turns reseed a session on startup.
const historyLimit = 50

// app holds everything a resolver needs, wired once per process.
type app struct {
	cfg       *config.AppConfig
	repo      *schedule.Repository
	extractor *intent.Extractor
	dates     *dates.Resolver
	answerer  core.Answerer
	db        *sql.DB
	turns     *sqlite.TurnsRepo
}

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	a, err := newApp(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize horabot")
	}
	services = append(services, srv.NewCleanup(a.db.Close))

	transports, err := initTransports(ctx, a)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func newApp(ctx context.Context) (*app, error) {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, err
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)

	// 2. Schedule data
	rows, err := loader.LoadCSV(appCfg.SchedulePath)
	if err != nil {
		return nil, err
	}
	repo, err := schedule.Build(rows)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("path", appCfg.SchedulePath).
		Int("records", repo.Len()).
		Msg("schedule loaded")

	// 3. Dates and intent rules
	d, err := dates.NewResolver(appCfg.Timezone)
	if err != nil {
		return nil, err
	}
	extractor := intent.New(d)

	// 4. Generative answerer
	answerer, err := llm.NewAnswerer(ctx, llmCfg)
	if err != nil {
		return nil, err
	}

	// 5. Storage
	if err := os.MkdirAll(appCfg.RuntimePath, 0755); err != nil {
		return nil, err
	}
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       appCfg,
		repo:      repo,
		extractor: extractor,
		dates:     d,
		answerer:  answerer,
		db:        db,
		turns:     sqlite.NewTurnsRepo(db),
	}, nil
}

// newResolver builds a per-session resolver seeded with the session's stored
// turns and mirroring new turns back to storage.
func (a *app) newResolver(ctx context.Context, sessionID string) *resolver.Resolver {
	stored, err := a.turns.GetTurns(ctx, sessionID, historyLimit)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("session", sessionID).Msg("failed to load stored turns")
		stored = nil
	}

	res := resolver.New(
		a.repo,
		a.extractor,
		a.dates,
		a.answerer,
		memory.Seed(stored),
		a.cfg.ExcerptMaxRows,
		a.cfg.ExcerptMaxCols,
	)
	res.PersistTo(a.turns, sessionID)
	return res
}

func initTransports(ctx context.Context, a *app) ([]srv.Service, error) {
	var services []srv.Service

	// Telegram Bot
	if a.cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, a.newResolver(ctx, telegram.SessionID))
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	// Console chat
	if a.cfg.EnableCLI {
		rl, err := cli.NewReadLine(a.newResolver(ctx, cli.SessionID), a.cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
