package app

import (
	"github.com/joefazee/wagerlog/app/database"
	"github.com/joefazee/wagerlog/internal/cache"
	"github.com/joefazee/wagerlog/internal/deps"
	"github.com/joefazee/wagerlog/internal/nexus"
	"github.com/joefazee/wagerlog/internal/security"
)

type Config struct {
	DB      database.Config
	Token   security.Config
	Cache   cache.Config
	Modules deps.Config

	AppHost      string `env:"APP_HOST" env-default:"localhost"`
	AppPort      string `env:"APP_PORT" env-default:"8080"`
	Env          string `env:"APP_ENV" env-default:"development" validate:"oneof=development test staging production"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	PprofEnabled bool   `env:"PPROF_ENABLED" env-default:"false"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
