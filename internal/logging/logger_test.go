package logging

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestFieldValueMasksSecrets(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogFieldChange("cadastro", "senha", "abcdef")
	LogFieldChange("cadastro", "email", "a@b.co")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	secret := entries[0].ContextMap()
	if _, ok := secret["value"]; ok {
		t.Error("password value must not be logged")
	}
	if secret["value_length"] != int64(6) {
		t.Errorf("value_length = %v, want 6", secret["value_length"])
	}

	plain := entries[1].ContextMap()
	if plain["value"] != "a@b.co" {
		t.Errorf("value = %v, want a@b.co", plain["value"])
	}
}

func TestLogSubmission(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogSubmission("login", "succeeded", time.Second, nil)
	LogSubmission("login", "failed", time.Second, errors.New("boom"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Errorf("success level = %v, want info", entries[0].Level)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("failure level = %v, want error", entries[1].Level)
	}
}
