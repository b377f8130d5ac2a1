// Package config loads application configuration from environment
// variables (12-factor), with sane defaults for local development.
package config
