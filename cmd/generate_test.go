package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateToStdout(t *testing.T) {
	generateCmd := newGenerateCmd()
	var buf bytes.Buffer
	generateCmd.SetOut(&buf)
	generateCmd.SetArgs([]string{"--out", "-", "--no-overlays"})

	if err := generateCmd.Execute(); err != nil {
		t.Fatalf("Error executing generate: %v", err)
	}

	output := buf.String()
	if !strings.HasPrefix(output, "/** @type {import('tailwindcss').Config} */") {
		t.Errorf("Expected a tailwind config header, got: %q", output)
	}
	if !strings.Contains(output, `"Function": "#056CF0"`) {
		t.Errorf("Expected the Function color in output, got: %q", output)
	}
	if !strings.Contains(output, `darkMode: "class"`) {
		t.Errorf("Expected class dark mode in output, got: %q", output)
	}
}

func TestGenerateToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "tailwind.config.js")

	generateCmd := newGenerateCmd()
	generateCmd.SetOut(&bytes.Buffer{})
	generateCmd.SetArgs([]string{"--out", outPath, "--no-overlays"})

	if err := generateCmd.Execute(); err != nil {
		t.Fatalf("Error executing generate: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Expected output file to exist: %v", err)
	}
	if !strings.Contains(string(data), "safelist: [") {
		t.Errorf("Expected safelist block in %s", outPath)
	}
}

func TestGenerateFailsOnUnwritablePath(t *testing.T) {
	generateCmd := newGenerateCmd()
	generateCmd.SetOut(&bytes.Buffer{})
	generateCmd.SetErr(&bytes.Buffer{})
	generateCmd.SetArgs([]string{"--out", filepath.Join(t.TempDir(), "missing", "out.js"), "--no-overlays"})

	if err := generateCmd.Execute(); err == nil {
		t.Error("Expected error for unwritable output path")
	}
}

func TestCheckReportsOK(t *testing.T) {
	checkCmd := newCheckCmd()
	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	checkCmd.SetArgs([]string{"--no-overlays"})

	if err := checkCmd.Execute(); err != nil {
		t.Fatalf("Error executing check: %v", err)
	}

	if !strings.Contains(buf.String(), "configuration OK") {
		t.Errorf("Expected OK report, got: %q", buf.String())
	}
}
