package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	LeetCode LeetCodeConfig `mapstructure:"leetcode" validate:"required"`
	Notion   NotionConfig   `mapstructure:"notion"   validate:"required"`
	Sync     SyncConfig     `mapstructure:"sync"     validate:"required"`
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// LeetCodeConfig contains settings for the submission source.
type LeetCodeConfig struct {
	Username       string `mapstructure:"username"         validate:"required"`
	GraphQLURL     string `mapstructure:"graphql_url"      validate:"required,url"`
	ProblemBaseURL string `mapstructure:"problem_base_url" validate:"required,url"`
	// RecentLimit is the number of accepted submissions fetched per run.
	// The public endpoint caps the list at 20.
	RecentLimit int `mapstructure:"recent_limit" validate:"required,gt=0,lte=20"`
}

// NotionConfig contains settings for the tracked-entry database.
type NotionConfig struct {
	Token      string `mapstructure:"token"       validate:"required"`
	DatabaseID string `mapstructure:"database_id" validate:"required"`
	BaseURL    string `mapstructure:"base_url"    validate:"required,url"`
	Version    string `mapstructure:"version"     validate:"required"`
	PageSize   int    `mapstructure:"page_size"   validate:"required,gt=0,lte=100"`
}

// SyncConfig contains settings of the sync workflow itself.
type SyncConfig struct {
	// SourceLabel is written to the Source select of every created entry.
	SourceLabel string `mapstructure:"source_label" validate:"required"`
	// Timezone is the IANA location solve timestamps are converted to
	// before being rendered as review dates. It defaults to UTC, whereas
	// earlier deployments used the host's local zone; set it to the host
	// zone to keep their dates.
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
	// Schedule is the cron expression used by the schedule command.
	Schedule string `mapstructure:"schedule" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig holds the basic-auth credentials protecting the HTTP trigger.
// PasswordHash (bcrypt) takes precedence over Password when both are set.
type AuthConfig struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"`
}

// Configured reports whether credentials for the HTTP trigger are present.
func (a AuthConfig) Configured() bool {
	return a.Username != "" && (a.Password != "" || a.PasswordHash != "")
}
