package config

import "os"

// Config holds the adjudicator CLI's configuration, loaded from
// environment variables with sensible defaults.
type Config struct {
	LogLevel string

	// ArchiveDir is read from DIPJUDGE_ARCHIVE_DIR. No subcommand reads
	// it: every subcommand works on the file named by --game.
	ArchiveDir string

	// Variant names the ruleset every subcommand adjudicates under; there
	// is no command-line flag that overrides it.
	Variant string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		ArchiveDir: envOrDefault("DIPJUDGE_ARCHIVE_DIR", "./archive"),
		Variant:    envOrDefault("DIPJUDGE_VARIANT", "standard"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
