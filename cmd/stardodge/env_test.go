package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newEnvTestCmd() (*cobra.Command, *string, *string) {
	var db, level string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&db, "db", "default.db", "")
	cmd.Flags().StringVar(&level, "log-level", "info", "")
	return cmd, &db, &level
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("STARDODGE_DB=/tmp/env-scores.db\nSTARDODGE_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	// godotenv.Load never overrides existing variables, so clear them first.
	t.Setenv("STARDODGE_DB", "")
	t.Setenv("STARDODGE_LOG_LEVEL", "")
	os.Unsetenv("STARDODGE_DB")
	os.Unsetenv("STARDODGE_LOG_LEVEL")

	cmd, db, level := newEnvTestCmd()
	if err := cmd.Flags().Parse([]string{"--log-level", "warn"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := loadEnv(cmd, path); err != nil {
		t.Fatalf("loadEnv: %v", err)
	}

	if *db != "/tmp/env-scores.db" {
		t.Errorf("db = %q, want value from env file", *db)
	}
	if *level != "warn" {
		t.Errorf("log-level = %q, command line should win over env", *level)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Setenv("STARDODGE_DB", "")

	cmd, db, _ := newEnvTestCmd()
	if err := loadEnv(cmd, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing env file should be skipped, got %v", err)
	}
	if *db != "default.db" {
		t.Errorf("db = %q, want flag default", *db)
	}
}

func TestLoadEnvInvalidValue(t *testing.T) {
	t.Setenv("STARDODGE_FPS", "fast")

	var fps int
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&fps, "fps", 60, "")
	if err := loadEnv(cmd, filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for non-numeric STARDODGE_FPS")
	}
}
