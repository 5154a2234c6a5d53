package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "LCSYNC"

// defaults for every known key. Keys without a sensible default are listed
// with an empty value so that viper still unmarshals them from the
// environment.
var defaults = map[string]interface{}{
	"leetcode.username":         "",
	"leetcode.graphql_url":      "https://leetcode.com/graphql/",
	"leetcode.problem_base_url": "https://leetcode.com/problems",
	"leetcode.recent_limit":     15,
	"notion.token":              "",
	"notion.database_id":        "",
	"notion.base_url":           "https://api.notion.com/v1",
	"notion.version":            "2022-02-22",
	"notion.page_size":          20,
	"sync.source_label":         "Website",
	"sync.timezone":             "UTC",
	"sync.schedule":             "0 */6 * * *",
	"server.port":               3333,
	"server.log_level":          "info",
	"auth.username":             "",
	"auth.password":             "",
	"auth.password_hash":        "",
}

// legacyEnv lists the environment names used by earlier deployments, in
// lookup order after the prefixed name. Lower-case names come from the
// script-based deployment.
var legacyEnv = map[string][]string{
	"leetcode.username":  {"LC_USERNAME", "lc_username"},
	"notion.token":       {"PERSONAL_NOTION_TOKEN", "personal_notion_token"},
	"notion.database_id": {"PERSONAL_DB_ID", "personal_db_id"},
	"auth.username":      {"AUTH_USERNAME"},
	"auth.password":      {"AUTH_PASSWORD"},
}

// Load reads configuration from the current working directory.
// See LoadFromDir.
func Load() (*Config, error) {
	return LoadFromDir(".")
}

// LoadFromDir loads configuration from environment variables and optionally
// from a .env file and a config.yaml file found in dir.
// Environment variables take precedence over values from the config file;
// a .env file never overrides variables already present in the environment.
// Returns a populated Config struct or an error if loading/validation fails.
func LoadFromDir(dir string) (*Config, error) {
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key := range defaults {
		names := []string{key, envName(key)}
		names = append(names, legacyEnv[key]...)
		if err := v.BindEnv(names...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
