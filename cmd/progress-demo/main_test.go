package main

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"testing"
)

// subprocessEnv is set in the re-executed subprocess so it knows to call main()
// directly instead of spawning another child.
const subprocessEnv = "PROGRESS_DEMO_TEST_SUBPROCESS"

// runSubprocess re-executes the test binary running only the named test,
// with subprocessEnv set so the test calls main() and lets os.Exit fire.
// Returns the *exec.ExitError (nil means exit 0).
func runSubprocess(t *testing.T, testName string) error {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run="+testName)
	cmd.Env = append(os.Environ(), subprocessEnv+"=1")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// exitCode extracts the code from err; -1 means the process did not exit cleanly.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// TestHelpExitsZero verifies that -help prints usage and exits with code 0.
func TestHelpExitsZero(t *testing.T) {
	if os.Getenv(subprocessEnv) == "1" {
		os.Args = []string{"progress-demo", "-help"}
		main()
		return // unreachable; main calls os.Exit
	}
	if err := runSubprocess(t, "TestHelpExitsZero"); err != nil {
		t.Fatalf("expected exit 0 for -help, got: %v", err)
	}
}

// TestVersionExitsZero verifies that -version prints and exits with code 0.
func TestVersionExitsZero(t *testing.T) {
	if os.Getenv(subprocessEnv) == "1" {
		os.Args = []string{"progress-demo", "-version"}
		main()
		return // unreachable; main calls os.Exit
	}
	if err := runSubprocess(t, "TestVersionExitsZero"); err != nil {
		t.Fatalf("expected exit 0 for -version, got: %v", err)
	}
}

// TestUnknownFlagExitsTwo verifies that an unrecognised flag exits with code 2.
func TestUnknownFlagExitsTwo(t *testing.T) {
	if os.Getenv(subprocessEnv) == "1" {
		os.Args = []string{"progress-demo", "-this-flag-does-not-exist"}
		main()
		return // unreachable; main calls os.Exit
	}
	if got := exitCode(runSubprocess(t, "TestUnknownFlagExitsTwo")); got != 2 {
		t.Fatalf("expected exit code 2, got %d", got)
	}
}

// TestNegativeCountExitsOne verifies the -count validation path.
func TestNegativeCountExitsOne(t *testing.T) {
	if os.Getenv(subprocessEnv) == "1" {
		os.Args = []string{"progress-demo", "-count", "-1"}
		main()
		return // unreachable; main calls os.Exit
	}
	if got := exitCode(runSubprocess(t, "TestNegativeCountExitsOne")); got != 1 {
		t.Fatalf("expected exit code 1, got %d", got)
	}
}

// TestShortRunExitsZero runs a real (fast) workload end to end.
func TestShortRunExitsZero(t *testing.T) {
	if os.Getenv(subprocessEnv) == "1" {
		os.Args = []string{"progress-demo", "-count", "5", "-sleep", "0s"}
		main()
		return // main returns normally here; the test process exits 0
	}
	if err := runSubprocess(t, "TestShortRunExitsZero"); err != nil {
		t.Fatalf("expected exit 0 for a short run, got: %v", err)
	}
}
