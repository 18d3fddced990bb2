// Package config loads and validates the saes-client settings.
// Settings come from environment variables (optionally seeded from a .env file),
// a YAML configuration file and built-in defaults, in that order of precedence.
package config
