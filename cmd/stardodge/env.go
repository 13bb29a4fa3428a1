package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// envFlags maps environment variables onto persistent flags.
var envFlags = map[string]string{
	"STARDODGE_DB":        "db",
	"STARDODGE_FPS":       "fps",
	"STARDODGE_LOG_LEVEL": "log-level",
	"STARDODGE_LOG_FILE":  "log-file",
}

// loadEnv reads .env files (missing ones are skipped) and uses the
// STARDODGE_* variables as defaults for flags not set on the command line.
func loadEnv(cmd *cobra.Command, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}
	return nil
}
