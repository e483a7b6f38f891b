// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-till-keeper terminal agent. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds connection settings for the authoritative remote store
	// (base URL, request timeout, optional bearer token).
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local durable transaction queue.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the address of the local HTTP API consumed by the
	// point-of-sale UI layer.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds tuning knobs for the sync engine and its background jobs.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds settings for the remote relational store the terminal
// reconciles against. The store is a black box reachable over HTTP.
type Remote struct {
	// BaseURL is the root URL of the remote store API
	// (e.g. "https://api.example.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is an optional opaque bearer token attached to every outbound
	// request. The agent never inspects it; authentication is handled by
	// the surrounding application.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every individual remote call so a single
	// unreachable endpoint cannot stall a sync pass (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local queue database.
type DB struct {
	// DSN is the SQLite file path used for the offline transaction queue
	// (e.g. "/var/lib/tillkeeper/queue.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings for the local HTTP surface exposed to the UI layer.
type Server struct {
	// HTTPAddress is the TCP address the local API listens on,
	// in "host:port" format (e.g. "localhost:7411").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Sync holds tuning parameters for the sync engine.
type Sync struct {
	// Interval defines how often the background job attempts a sync pass
	// while the terminal is online (e.g. "1m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// ProbeInterval defines how often the connectivity monitor pings the
	// remote store (e.g. "15s").
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// BatchSize caps how many transactions are reconciled concurrently in
	// one batch of a sync pass.
	// Env: SYNC_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`

	// MaxRetries is the retry ceiling: transactions that have failed this
	// many times are excluded from automatic passes and kept for manual
	// inspection.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
}

// defaults returns the lowest-priority configuration layer. Any field left
// zero by env, flags and the JSON file is filled from here.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Remote: Remote{
			RequestTimeout: 15 * time.Second,
		},
		Server: Server{
			HTTPAddress: "localhost:7411",
		},
		Sync: Sync{
			Interval:      time.Minute,
			ProbeInterval: 15 * time.Second,
			BatchSize:     10,
			MaxRetries:    5,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the agent configuration
// from all available sources. Earlier sources win for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
