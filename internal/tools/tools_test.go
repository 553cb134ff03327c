package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteThenReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")

	result := WriteFile(path, "abc")
	if !strings.Contains(result, "written successfully") {
		t.Fatalf("WriteFile = %q, want success marker", result)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "abc" {
		t.Fatalf("file content = %q, want %q", data, "abc")
	}

	read := ReadFile(path)
	if !strings.Contains(read, "```\nabc\n```") {
		t.Fatalf("ReadFile = %q, want fenced content", read)
	}
}

func TestWriteFileMissingParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nope", "x.txt")

	result := WriteFile(path, "abc")
	if !strings.HasPrefix(result, "Error:") {
		t.Fatalf("WriteFile into missing dir = %q, want Error result", result)
	}
}

func TestReadFileMissing(t *testing.T) {
	result := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !strings.HasPrefix(result, "Error:") {
		t.Fatalf("ReadFile = %q, want Error result", result)
	}
}

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	result := ListDirectory(dir)
	if !strings.Contains(result, "a.txt") {
		t.Errorf("ListDirectory = %q, want a.txt entry", result)
	}
	if !strings.Contains(result, "sub/") {
		t.Errorf("ListDirectory = %q, want sub/ entry", result)
	}

	bad := ListDirectory(filepath.Join(dir, "nope"))
	if !strings.HasPrefix(bad, "Error:") {
		t.Errorf("ListDirectory on missing path = %q, want Error result", bad)
	}
}

func TestExecuteShell(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{"stdout", "echo hi", "STDOUT:\nhi"},
		{"stderr", "echo oops >&2", "STDERR:\noops"},
		{"no output", "true", NoOutputMarker},
		{"silent nonzero exit", "exit 7", NoOutputMarker},
		{"failing command", "definitely-not-a-command-1234", "STDERR:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExecuteShell(ctx, tt.command)
			if !strings.Contains(got, tt.want) {
				t.Errorf("ExecuteShell(%q) = %q, want substring %q", tt.command, got, tt.want)
			}
		})
	}
}

func TestExecuteShellEmptyCommand(t *testing.T) {
	// An empty command runs the shell with nothing to do; must not panic and
	// must return either the no-output marker or an error result.
	got := ExecuteShell(context.Background(), "")
	if got == "" {
		t.Fatal("ExecuteShell(\"\") returned empty string")
	}
}
