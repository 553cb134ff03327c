// Package tools implements the four side-effecting operations the agent can
// dispatch. Every executor returns a human-readable text result; underlying
// failures are converted to "Error: ..." text and never escape as errors, so
// a bad tool call can't kill the agent loop.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// NoOutputMarker is returned by ExecuteShell when a command produces nothing
// on either stream.
const NoOutputMarker = "Command produced no output."

// ListDirectory returns the entries of a directory, one per line.
// Directories are suffixed with a slash.
func ListDirectory(path string) string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Sprintf("Error: listing directory: %v", err)
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names[i] = name
	}
	return fmt.Sprintf("Contents of directory '%s':\n%s", path, strings.Join(names, "\n"))
}

// ReadFile returns the full contents of a file wrapped in a fenced block.
// No size limit is enforced.
func ReadFile(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error: reading file: %v", err)
	}
	return fmt.Sprintf("Contents of file '%s':\n```\n%s\n```", path, content)
}

// WriteFile creates or truncates the target file with the given content.
// Parent directories are not created.
func WriteFile(path, content string) string {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Sprintf("Error: writing file: %v", err)
	}
	return fmt.Sprintf("File '%s' written successfully.", path)
}

// ExecuteShell runs a command through the platform shell synchronously and
// returns stdout and stderr as labeled sections. There is no timeout and no
// output cap; the command inherits the process's permissions.
func ExecuteShell(ctx context.Context, command string) string {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var out strings.Builder
	if stdout.Len() > 0 {
		fmt.Fprintf(&out, "STDOUT:\n%s\n", stdout.String())
	}
	if stderr.Len() > 0 {
		fmt.Fprintf(&out, "STDERR:\n%s\n", stderr.String())
	}
	if out.Len() == 0 {
		// A nonzero exit with empty streams is still a completed run; only a
		// failure to launch the shell becomes an error result.
		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			return fmt.Sprintf("Error: executing command: %v", err)
		}
		return NoOutputMarker
	}
	return out.String()
}
