package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/rcondori/horabot/pkg/log"
)

type AppConfig struct {
	RuntimePath  string `env:"HORABOT_RUNTIME_PATH" envDefault:".horabot"`
	SchedulePath string `env:"HORABOT_SCHEDULE" envDefault:"horarios.csv"`

	// Timezone must stay DST-free for day-offset math to hold year round.
	Timezone string `env:"HORABOT_TIMEZONE" envDefault:"America/Lima"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// Caps for the data excerpt handed to the generative answerer
	ExcerptMaxRows int `env:"EXCERPT_MAX_ROWS" envDefault:"200"`
	ExcerptMaxCols int `env:"EXCERPT_MAX_COLS" envDefault:"12"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	// Same anchoring as GetRuntimePath, so .env, db and history share a dir
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "horabot.db")
}
