package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withFlags sets the global flags for one test and restores them after.
func withFlags(t *testing.T, cfg, level, file string) {
	t.Helper()
	oldCfg, oldLevel, oldFile := flagConfig, flagLogLevel, flagLogFile
	flagConfig, flagLogLevel, flagLogFile = cfg, level, file
	t.Cleanup(func() {
		flagConfig, flagLogLevel, flagLogFile = oldCfg, oldLevel, oldFile
	})
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cow.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cow.log")
	withFlags(t, "", "debug", path)

	logger, closeLog, err := newLogger("cow", nil)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	logger.Debug("moo", "score", 10)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "moo") || !strings.Contains(string(data), "score=10") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestCommandErrorsAreReturned(t *testing.T) {
	tests := []struct {
		name  string
		cfg   string
		level string
		want  string
	}{
		{"missing config", filepath.Join(os.TempDir(), "no-such-cow.yaml"), "info", "loading config"},
		{"bad log level", "", "loud", "--log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if cfg == "" {
				cfg = writeConfig(t)
			}
			withFlags(t, cfg, tt.level, "")

			for name, run := range map[string]func() error{
				"play":  func() error { return runPlay(nil, nil) },
				"serve": func() error { return runServe(nil, nil) },
			} {
				err := run()
				if err == nil || !strings.Contains(err.Error(), tt.want) {
					t.Errorf("%s: error = %v, expected it to mention %q", name, err, tt.want)
				}
			}
		})
	}
}
