package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"pizzabot/internal/adapters/out/llm"
	"pizzabot/internal/adapters/out/persistence"
	"pizzabot/internal/agent"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/jobs"
	"pizzabot/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"http_port"`

	DBDriver string `mapstructure:"db_driver"`
	DBPath   string `mapstructure:"pizza_db_path"`
	DBDSN    string `mapstructure:"db_dsn"`

	MenuPath string `mapstructure:"pizza_menu_path"`

	LLMAPIKey   string `mapstructure:"llm_api_key"`
	LLMModel    string `mapstructure:"llm_model"`
	LLMBaseURL  string `mapstructure:"llm_base_url"`
	LLMMaxSteps int    `mapstructure:"llm_max_steps"`

	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`

	AdminTransitions string        `mapstructure:"admin_transitions"`
	DraftTTL         time.Duration `mapstructure:"draft_ttl"`
	SweepSchedule    string        `mapstructure:"sweep_schedule"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

var defaults = map[string]any{
	"http_port":         "8080",
	"db_driver":         persistence.DriverSQLite,
	"pizza_db_path":     "pizza.db",
	"db_dsn":            "",
	"pizza_menu_path":   "menu.json",
	"llm_api_key":       "",
	"llm_model":         llm.DefaultModel,
	"llm_base_url":      llm.DefaultBaseURL,
	"llm_max_steps":     agent.DefaultMaxSteps,
	"redis_addr":        "",
	"redis_password":    "",
	"redis_db":          0,
	"session_ttl":       24 * time.Hour,
	"admin_transitions": "forward",
	"draft_ttl":         6 * time.Hour,
	"sweep_schedule":    jobs.DefaultSweepSchedule,
	"log_level":         "info",
	"log_format":        "console",
}

// Variables read when the primary one is unset, in order.
var fallbackEnv = map[string][]string{
	"llm_api_key":  {"LLM_API_KEY", "GEMINI_API_KEY"},
	"llm_model":    {"LLM_MODEL", "GEMINI_MODEL"},
	"llm_base_url": {"LLM_BASE_URL", "GEMINI_OPENAI_BASE_URL"},
}

// LoadConfig reads .env when present, then the environment, then configFile when
// one is given. Environment variables win over the file.
func LoadConfig(configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, names := range fallbackEnv {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Config{}, err
		}
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case persistence.DriverSQLite, persistence.DriverPostgres, persistence.DriverMySQL:
	default:
		return errs.NewValueIsInvalidErrorWithCause("DB_DRIVER",
			fmt.Errorf("%q is not one of sqlite, postgres, mysql", c.DBDriver))
	}
	if _, err := order.ParseTransitionPolicy(c.AdminTransitions); err != nil {
		return err
	}
	if c.LLMMaxSteps < 1 {
		return errs.NewValueIsOutOfRangeError("LLM_MAX_STEPS", c.LLMMaxSteps, 1, "unbounded")
	}
	if c.SessionTTL < 0 {
		return errs.NewValueIsOutOfRangeError("SESSION_TTL", c.SessionTTL, 0, "unbounded")
	}
	if c.DraftTTL < 0 {
		return errs.NewValueIsOutOfRangeError("DRAFT_TTL", c.DraftTTL, 0, "unbounded")
	}
	return nil
}

// Store returns the persistence settings.
func (c Config) Store() persistence.Config {
	return persistence.Config{Driver: c.DBDriver, Path: c.DBPath, DSN: c.DBDSN}
}
