// Package config loads and validates the relay's configuration from
// defaults, YAML config files, RELAY_-prefixed environment variables (plus
// the bare PORT variable) and CLI flags, in rising order of precedence.
package config
