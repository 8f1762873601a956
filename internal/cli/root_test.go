// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/placeicon/internal/cli"
	"github.com/jmylchreest/placeicon/internal/version"
)

// runRoot executes the root command with args in a fresh working directory.
func runRoot(t *testing.T, args ...string) (dir string, stdout, stderr string, err error) {
	t.Helper()

	dir = t.TempDir()
	chdir(t, dir)

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	// A nil slice would make cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))

	err = rootCmd.Execute()
	return dir, outBuf.String(), errBuf.String(), err
}

func TestRootCommandGeneratesIcons(t *testing.T) {
	dir, stdout, _, err := runRoot(t)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, name := range []string{"icon16.png", "icon48.png", "icon128.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to be created: %v", name, err)
		}
		if !strings.Contains(stdout, "✓ Created "+name) {
			t.Errorf("Expected output to mention %s, got %q", name, stdout)
		}
	}

	// Buffers are not terminals, so no escape codes.
	if strings.Contains(stdout, "\x1b[") {
		t.Errorf("Did not expect ANSI escapes in non-terminal output: %q", stdout)
	}
	if !strings.Contains(stdout, "Placeholder icons created successfully!") {
		t.Errorf("Expected completion notice, got %q", stdout)
	}
}

func TestRootCommandQuiet(t *testing.T) {
	dir, stdout, _, err := runRoot(t, "--quiet")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected no output with --quiet, got %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon128.png")); err != nil {
		t.Errorf("Expected icons to be written with --quiet: %v", err)
	}
}

func TestRootCommandVerboseLogsToStderr(t *testing.T) {
	_, stdout, stderr, err := runRoot(t, "--verbose")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(stderr, "generating icons") {
		t.Errorf("Expected debug log on stderr, got %q", stderr)
	}
	if strings.Contains(stdout, "generating icons") {
		t.Errorf("Logs must not be written to stdout, got %q", stdout)
	}
}

func TestRootCommandRejectsArguments(t *testing.T) {
	dir, _, _, err := runRoot(t, "extra")
	if err == nil {
		t.Fatal("Expected an error for unexpected arguments")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no icons to be written, found %d files", len(entries))
	}
}

func TestRootCommandWriteFailure(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// A directory named like the first icon cannot be overwritten with a file.
	if err := os.Mkdir(filepath.Join(dir, "icon16.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Expected an error when the output file cannot be created")
	}
	if !strings.Contains(err.Error(), "failed to generate icons") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	_, stdout, _, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.TrimSpace(stdout) != version.String() {
		t.Errorf("version output = %q, want %q", stdout, version.String())
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
