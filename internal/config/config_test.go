package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input != DefaultInput {
		t.Errorf("expected default input path, got %q", cfg.Input)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected default output path, got %q", cfg.Output)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
	if len(cfg.Chapters) != 9 {
		t.Errorf("expected 9 chapter entries, got %d", len(cfg.Chapters))
	}
	if cfg.Chapters["Probability"] != "ch03" {
		t.Errorf("expected Probability -> ch03, got %q", cfg.Chapters["Probability"])
	}
}

func TestLoad(t *testing.T) {
	t.Run("no config file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input != DefaultInput {
			t.Errorf("expected default input, got %q", cfg.Input)
		}
		if cfg.Chapters["Summarizing data"] != "ch02" {
			t.Error("expected built-in chapter table")
		}
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "soltex.yaml")
		content := "input: manual.tex\noutput: out.ptx\nlog_level: debug\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input != "manual.tex" {
			t.Errorf("expected manual.tex, got %q", cfg.Input)
		}
		if cfg.Output != "out.ptx" {
			t.Errorf("expected out.ptx, got %q", cfg.Output)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("expected debug, got %q", cfg.LogLevel)
		}
	})

	t.Run("chapter entries merge over the builtin table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "soltex.yaml")
		content := "chapters:\n  Bayesian Methods: ch10\n  Probability: ch99\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Title case must survive the round trip.
		if cfg.Chapters["Bayesian Methods"] != "ch10" {
			t.Errorf("expected new entry preserved, got %q", cfg.Chapters["Bayesian Methods"])
		}
		if cfg.Chapters["Probability"] != "ch99" {
			t.Errorf("expected override to win, got %q", cfg.Chapters["Probability"])
		}
		if cfg.Chapters["Summarizing data"] != "ch02" {
			t.Error("expected untouched builtin entries to remain")
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SOLTEX_INPUT", "env.tex")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input != "env.tex" {
			t.Errorf("expected env.tex, got %q", cfg.Input)
		}
	})
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soltex.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "# soltex configuration") {
		t.Error("expected comment header")
	}
	if !strings.Contains(text, "Probability: ch03") {
		t.Error("expected chapter table in written config")
	}

	// The written file must load back cleanly.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if cfg.Input != DefaultInput {
		t.Errorf("round trip changed input to %q", cfg.Input)
	}
}
