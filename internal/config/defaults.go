package config

import (
	"strconv"
	"time"
)

// Default values applied by [StructuredConfig.applyDefaults].
const (
	DefaultPort            = 3000
	DefaultDSN             = "memory://"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "debug"
)

// applyDefaults fills every field still unset after merging. Legacy
// variables take part here: MONGO_URI stands in for the DSN and PORT for the
// listen address.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		port := cfg.Legacy.Port
		if port == 0 {
			port = DefaultPort
		}
		cfg.Server.HTTPAddress = ":" + strconv.Itoa(port)
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = cfg.Legacy.MongoURI
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}
