package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ixmatch/internal/workflow"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// makeCaptureDir lays out a capture directory with both channel
// subdirectories and returns its path.
func makeCaptureDir(t *testing.T) (base, rgbDir, nirDir string) {
	t.Helper()
	base = t.TempDir()
	rgbDir = filepath.Join(base, "CAMERA_RGB")
	nirDir = filepath.Join(base, "CAMERA_NIR")
	for _, dir := range []string{rgbDir, nirDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return base, rgbDir, nirDir
}

// runCommand executes the root command with a throwaway config path so the
// user's real configuration never leaks into tests.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	base, rgbDir, nirDir := makeCaptureDir(t)
	writeFile(t, rgbDir, "240101_120000000.iiq", "x")
	writeFile(t, nirDir, "240101_120000100.iiq", "x")
	writeFile(t, nirDir, "240101_120005000.iiq", "x")

	out, err := runCommand(t, "match", base, "--thresh", "200")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "RGB: 1, NIR: 2 (1 match)") {
		t.Errorf("summary missing: %q", out)
	}
	if _, err := os.Stat(filepath.Join(nirDir, "unmatched", "240101_120005000.iiq")); err != nil {
		t.Errorf("unmatched file not moved: %v", err)
	}
}

func TestMatchCommandDryRun(t *testing.T) {
	base, rgbDir, nirDir := makeCaptureDir(t)
	writeFile(t, rgbDir, "240101_120000000.iiq", "x")
	writeFile(t, nirDir, "240101_120005000.iiq", "x")

	out, err := runCommand(t, "match", base, "--thresh", "200", "--dry-run")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Dry run: no files were moved") {
		t.Errorf("dry run notice missing: %q", out)
	}
	if _, err := os.Stat(filepath.Join(nirDir, "unmatched")); !os.IsNotExist(err) {
		t.Error("dry run moved files")
	}
}

func TestMatchCommandJSON(t *testing.T) {
	base, rgbDir, nirDir := makeCaptureDir(t)
	writeFile(t, rgbDir, "240101_120000000.iiq", "x")
	writeFile(t, nirDir, "240101_120000100.iiq", "x")

	out, err := runCommand(t, "match", base, "--json")
	if err != nil {
		t.Fatal(err)
	}
	var summary workflow.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("not JSON: %v (%q)", err, out)
	}
	if summary.Matched != 1 {
		t.Errorf("summary: %+v", summary)
	}
}

func TestMatchCommandMissingChannelDir(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "CAMERA_RGB"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "match", base); err == nil {
		t.Fatal("expected failure with missing NIR directory")
	}
}

func TestRevertCommandRoundTrip(t *testing.T) {
	base, rgbDir, nirDir := makeCaptureDir(t)
	writeFile(t, rgbDir, "240101_120000000.iiq", "x")
	writeFile(t, nirDir, "240101_120000100.iiq", "x")
	writeFile(t, nirDir, "240101_120005000.iiq", "x")

	if _, err := runCommand(t, "match", base, "--thresh", "200"); err != nil {
		t.Fatal(err)
	}
	out, err := runCommand(t, "revert", base)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "RGB: 0, NIR: 1 files reverted") {
		t.Errorf("revert summary: %q", out)
	}
	if _, err := os.Stat(filepath.Join(nirDir, "240101_120005000.iiq")); err != nil {
		t.Errorf("file not restored: %v", err)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Errorf("output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample not written: %v", err)
	}

	// A second init without --overwrite must refuse.
	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error for existing config")
	}
}

func TestUnknownCommandFails(t *testing.T) {
	if _, err := runCommand(t, "frobnicate"); err == nil {
		t.Fatal("expected unknown command error")
	}
}
