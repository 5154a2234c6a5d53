// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env files, config files).
// It provides type-safe access to the settings needed by the LeetCode and
// Notion clients, the sync workflow and the HTTP trigger, while keeping
// configuration details separate from business logic.
package config
