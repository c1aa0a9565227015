package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SKYFIRE_TEST_STR", "hello")
	if got := GetEnv("SKYFIRE_TEST_STR", "x"); got != "hello" {
		t.Errorf("GetEnv = %q", got)
	}
	if got := GetEnv("SKYFIRE_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv fallback = %q", got)
	}
}

func TestGetEnvTyped(t *testing.T) {
	t.Setenv("SKYFIRE_TEST_INT", " 42 ")
	t.Setenv("SKYFIRE_TEST_BAD_INT", "many")
	t.Setenv("SKYFIRE_TEST_BOOL", "true")
	t.Setenv("SKYFIRE_TEST_LEVEL", "debug")

	if got := GetEnvInt("SKYFIRE_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("SKYFIRE_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvInt malformed = %d, want fallback", got)
	}
	if !GetEnvBool("SKYFIRE_TEST_BOOL", false) {
		t.Error("GetEnvBool = false")
	}
	if got := GetEnvLevel("SKYFIRE_TEST_LEVEL", log.InfoLevel); got != log.DebugLevel {
		t.Errorf("GetEnvLevel = %v", got)
	}
	if got := GetEnvLevel("SKYFIRE_TEST_UNSET", log.WarnLevel); got != log.WarnLevel {
		t.Errorf("GetEnvLevel fallback = %v", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SKYFIRE_TEST_DOTENV=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SKYFIRE_TEST_DOTENV", "")
	os.Unsetenv("SKYFIRE_TEST_DOTENV")

	if err := Load(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("SKYFIRE_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("SKYFIRE_TEST_DOTENV = %q", got)
	}
}
