package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// defaultKeywords is the OR-expression the digest site is built around.
const defaultKeywords = `DRDO OR "Indian Navy" OR "Indian Army" OR "Indian Air Force" OR ISRO OR HAL OR "Defence Ministry" OR BrahMos OR Agni-V OR Malabar OR LAC OR LOC OR Submarine OR Tejas OR Chandrayaan OR "Make in India"`

type Config struct {
	NewsAPIKey   string `env:"NEWS_API_KEY,required,notEmpty"`
	GeminiAPIKey string `env:"GEMINI_API_KEY,required,notEmpty"`
	Keywords     string `env:"NEWS_KEYWORDS"`
	PageSize     int    `env:"NEWS_PAGE_SIZE"  envDefault:"35"`
	OutputPath   string `env:"OUTPUT_FILE"     envDefault:"news.json"`
	CronSpec     string `env:"CRON_SPEC"`
}

// Load reads configuration from the environment. Missing credentials fail
// the load so the run aborts before any network call.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Keywords == "" {
		cfg.Keywords = defaultKeywords
	}

	return cfg, nil
}
