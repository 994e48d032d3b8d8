// Package testsupport provides shared helpers for testscript-based CLI
// tests.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// BuildListo builds the listo binary once and returns its path.
func BuildListo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "listo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		binPath = filepath.Join(binDir, "listo")
		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/listo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build listo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}
	return binPath
}

// SetupScriptEnv points a script's HOME and data dir at its own work
// dir so scripts never touch real state.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("LISTO", BuildListo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("LISTO_DIR", filepath.Join(env.WorkDir, "data"))
	return nil
}

var slugPattern = regexp.MustCompile(`\(([a-z0-9-]+)\)`)

// CmdSlug captures the slug echoed by the previous command (the
// parenthesized part of `created "Title" (slug)`) into an env var.
func CmdSlug(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("slug does not support negation")
	}
	if len(args) != 1 {
		ts.Fatalf("usage: slug VAR")
	}
	out := ts.ReadFile("stdout")
	m := slugPattern.FindStringSubmatch(out)
	if m == nil {
		ts.Fatalf("no slug in stdout: %q", out)
	}
	ts.Setenv(args[0], m[1])
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}
