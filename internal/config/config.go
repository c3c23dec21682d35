package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port        int    `mapstructure:"PORT"`
	Env         string `mapstructure:"APP_ENV"` // development | production
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	SeedOnStart bool   `mapstructure:"SEED_ON_START"`

	MongoURI  string        `mapstructure:"MONGO_URI"`
	DBName    string        `mapstructure:"DB_NAME"`
	DBTimeout time.Duration `mapstructure:"DB_TIMEOUT"`
}

// Load reads the optional .env file into the process environment and then
// resolves every setting from the environment, falling back to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env not loaded")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 5001)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("SEED_ON_START", false)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017/")
	v.SetDefault("DB_NAME", "comerciotech")
	v.SetDefault("DB_TIMEOUT", 5*time.Second)
}

func (c *Config) normalize() {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	if c.StoreDriver == "" {
		c.StoreDriver = DriverMongo
	}
	if c.DBTimeout <= 0 {
		c.DBTimeout = 5 * time.Second
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
