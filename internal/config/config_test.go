package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
[parse]
framerate = 23.976
keep_html = true
merge_tolerance_ms = 5

[logging]
verbose = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Parse.FrameRate != 23.976 {
		t.Errorf("FrameRate = %v, want 23.976", cfg.Parse.FrameRate)
	}
	if !cfg.Parse.KeepHTML {
		t.Error("expected KeepHTML true")
	}
	if cfg.Parse.KeepASS {
		t.Error("expected KeepASS false (not set)")
	}
	if !cfg.Logging.Verbose {
		t.Error("expected Logging.Verbose true")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[parse]
frame_rate = 25.0
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "negative framerate",
			content: "[parse]\nframerate = -1.0\n",
			errPart: "framerate",
		},
		{
			name:    "negative merge tolerance",
			content: "[parse]\nmerge_tolerance_ms = -2\n",
			errPart: "merge_tolerance_ms",
		},
		{
			name:    "negative overlap tolerance",
			content: "[parse]\noverlap_tolerance_ms = -1\n",
			errPart: "overlap_tolerance_ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}

func TestOptionsConversion(t *testing.T) {
	path := writeConfig(t, `
[parse]
framerate = 29.97
keep_ass = true
overlap_tolerance_ms = 100
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	opts := cfg.Options()
	if opts.FrameRate != 29.97 {
		t.Errorf("FrameRate = %v, want 29.97", opts.FrameRate)
	}
	if !opts.KeepASS {
		t.Error("expected KeepASS true")
	}
	if opts.OverlapTolerance != 100*time.Millisecond {
		t.Errorf("OverlapTolerance = %v, want 100ms", opts.OverlapTolerance)
	}
	if opts.MergeTolerance != time.Millisecond {
		t.Errorf("MergeTolerance = %v, want library default 1ms", opts.MergeTolerance)
	}
}

func TestDefaultOptionsKeepLibraryDefaults(t *testing.T) {
	cfg := Default()
	opts := cfg.Options()

	if opts.FrameRate != 0 {
		t.Errorf("FrameRate = %v, want 0 (per-format default)", opts.FrameRate)
	}
	if opts.KeepHTML || opts.KeepASS {
		t.Error("expected markup stripping on by default")
	}
	if opts.MergeTolerance <= 0 || opts.OverlapTolerance <= 0 {
		t.Error("expected positive default tolerances")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := expandPath("~/logs/subtext.log")
	if err != nil {
		t.Fatalf("expandPath failed: %v", err)
	}
	want := filepath.Join(home, "logs", "subtext.log")
	if got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}
}
