package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Token struct {
		Name       string  `yaml:"name"`
		Symbol     string  `yaml:"symbol"`
		Address    string  `yaml:"address"`
		TargetMcap float64 `yaml:"target_mcap"`
	} `yaml:"token"`
	Twitter struct {
		APIKey            string `yaml:"api_key"`
		APISecret         string `yaml:"api_secret"`
		AccessToken       string `yaml:"access_token"`
		AccessTokenSecret string `yaml:"access_token_secret"`
	} `yaml:"twitter"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"data_source"`
	Schedule struct {
		PostTime string `yaml:"post_time"`
		Timezone string `yaml:"timezone"`
	} `yaml:"schedule"`
	State struct {
		File string `yaml:"file"`
	} `yaml:"state"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides.
func Load(path string) (*Config, error) {
	// Credentials usually live in a .env file next to the binary.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.Twitter.APIKey = v
	}
	if v := os.Getenv("API_SECRET"); v != "" {
		cfg.Twitter.APISecret = v
	}
	if v := os.Getenv("ACCESS_TOKEN"); v != "" {
		cfg.Twitter.AccessToken = v
	}
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		cfg.Twitter.AccessTokenSecret = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Telegram.ChatID = id
		}
	}
	if v := os.Getenv("TOKEN_ADDRESS"); v != "" {
		cfg.Token.Address = v
	}
	if v := os.Getenv("TARGET_MCAP"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Token.TargetMcap = t
		}
	}
	if v := os.Getenv("POST_TIME"); v != "" {
		cfg.Schedule.PostTime = v
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		cfg.Schedule.Timezone = v
	}
	if v := os.Getenv("DEXSCREENER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("STATE_FILE"); v != "" {
		cfg.State.File = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Token.Name == "" {
		cfg.Token.Name = "pigeon"
	}
	if cfg.Token.Symbol == "" {
		cfg.Token.Symbol = "PIGEON"
	}
	if cfg.Token.Address == "" {
		cfg.Token.Address = "4fSWEw2wbYEUCcMtitzmeGUfqinoafXxkhqZrA9Gpump"
	}
	if cfg.Token.TargetMcap == 0 {
		cfg.Token.TargetMcap = 941_000_000
	}
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://api.dexscreener.com"
	}
	if cfg.Schedule.PostTime == "" {
		cfg.Schedule.PostTime = "09:00"
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "Local"
	}
	if cfg.State.File == "" {
		cfg.State.File = "data/bot_state.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/pigeonwatch.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and well-formed.
func (c *Config) Validate() error {
	if c.Twitter.APIKey == "" || c.Twitter.APISecret == "" ||
		c.Twitter.AccessToken == "" || c.Twitter.AccessTokenSecret == "" {
		return fmt.Errorf("twitter credentials are required (api_key, api_secret, access_token, access_token_secret)")
	}
	if c.Token.Address == "" {
		return fmt.Errorf("token.address is required")
	}
	if c.Token.TargetMcap <= 0 {
		return fmt.Errorf("token.target_mcap must be positive")
	}
	if _, _, err := ParsePostTime(c.Schedule.PostTime); err != nil {
		return fmt.Errorf("schedule.post_time: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("schedule.timezone: %w", err)
	}
	return nil
}

// Location resolves the configured timezone. "Local" (the default) keeps
// the wall-clock behavior of the machine the bot runs on.
func (c *Config) Location() (*time.Location, error) {
	if c.Schedule.Timezone == "" || c.Schedule.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Schedule.Timezone)
}

// ParsePostTime parses an "HH:MM" wall-clock time.
func ParsePostTime(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid post time %q, want HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}
