package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/infohub/infohub/internal/version"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"format", "cpf", "52998224725"}, "529.982.247-25\n"},
		{[]string{"format", "phone", "1143218765"}, "(11) 4321-8765\n"},
		{[]string{"format", "phone", "123"}, "123\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			args := append([]string{"--config", tempConfig(t)}, tt.args...)
			got, err := execute(t, "", args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommandUnknownMask(t *testing.T) {
	if _, err := execute(t, "", "--config", tempConfig(t), "format", "cep", "01001000"); err == nil {
		t.Error("Execute() error = nil, want unknown mask error")
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		want    string
	}{
		{"valid email", []string{"check", "email", "ana@exemplo.com"}, false, "✓ valid"},
		{"invalid email", []string{"check", "email", "ana"}, true, "✗ "},
		{"cpf shape only", []string{"check", "cpf", "12345678901"}, false, "✓ valid"},
		{"cpf strict", []string{"check", "cpf-strict", "12345678901"}, true, "✗ "},
		{"short password", []string{"check", "password", "abc"}, true, "✗ "},
		{"unknown rule", []string{"check", "cep", "x"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", tempConfig(t)}, tt.args...)
			got, err := execute(t, "", args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want != "" && !strings.Contains(got, tt.want) {
				t.Errorf("output = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := tempConfig(t)

	got, err := execute(t, "", "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(got, path) {
		t.Errorf("config init output = %q, want the path", got)
	}

	got, err = execute(t, "n\n", "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("second config init error = %v", err)
	}
	if !strings.Contains(got, "Nada foi alterado.") {
		t.Errorf("declined overwrite output = %q", got)
	}

	got, err = execute(t, "", "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(got, "password_min_length: 6") {
		t.Errorf("config show output missing defaults:\n%s", got)
	}
}

func TestConfigPath(t *testing.T) {
	path := tempConfig(t)

	got, err := execute(t, "", "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if got != path+"\n" {
		t.Errorf("output = %q, want %q", got, path+"\n")
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "", "--config", tempConfig(t), "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(got, version.Version) {
		t.Errorf("output = %q, want it to contain %q", got, version.Version)
	}
}
