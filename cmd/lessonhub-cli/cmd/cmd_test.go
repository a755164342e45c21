package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Lessonhub CLI v"+version+"\n", out)
}

func TestRoutes(t *testing.T) {
	t.Run("table marks the initial route", func(t *testing.T) {
		out, err := run(t, "routes", "--format", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "Login *")
		assert.Contains(t, out, "/register")
		assert.Contains(t, out, "/modules")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "routes", "--format", "json")
		require.NoError(t, err)

		var rows []map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		assert.Equal(t, []map[string]string{
			{"name": "Login", "path": "/login"},
			{"name": "Modules", "path": "/modules"},
			{"name": "Register", "path": "/register"},
		}, rows)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "routes", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestModules(t *testing.T) {
	out, err := run(t, "modules")
	require.NoError(t, err)
	for _, label := range []string{"Kinder", "Grade 1", "Grade 2", "Grade 3"} {
		assert.Contains(t, out, label)
	}
}

func TestResetCode(t *testing.T) {
	out, err := run(t, "reset-code", "--count", "3")
	require.NoError(t, err)

	codes := strings.Fields(out)
	require.Len(t, codes, 3)
	for _, c := range codes {
		assert.Len(t, c, 6)
		assert.GreaterOrEqual(t, c, "100000")
		assert.LessOrEqual(t, c, "999999")
	}

	_, err = run(t, "reset-code", "--count", "0")
	assert.Error(t, err)
}

const modulesFixture = `package app

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/module"
	"github.com/nfrund/lessonhub/internal/modules/screens"
)

func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		screens.New(screens.Dependencies{}),
	}
}
`

func TestNewModule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internal", "app"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, modulesFile), []byte(modulesFixture), 0o644))
	t.Chdir(dir)

	t.Run("rejects a bad name", func(t *testing.T) {
		_, err := run(t, "new-module", "--name", "Quiz-Zone")
		assert.Error(t, err)
	})

	t.Run("rejects names taken by imports", func(t *testing.T) {
		for _, name := range []string{"module", "screens", "slog", "echo", "func"} {
			_, err := run(t, "new-module", "--name", name)
			assert.Error(t, err, name)
			assert.NoDirExists(t, filepath.Join("internal", "modules", name))
		}

		mods, err := os.ReadFile(modulesFile)
		require.NoError(t, err)
		assert.Equal(t, modulesFixture, string(mods))
	})

	t.Run("scaffolds and registers the module", func(t *testing.T) {
		out, err := run(t, "new-module", "--name", "quizzes")
		require.NoError(t, err)
		assert.Contains(t, out, "Created module 'quizzes'")

		src, err := os.ReadFile(filepath.Join("internal", "modules", "quizzes", "module.go"))
		require.NoError(t, err)
		assert.Contains(t, string(src), "package quizzes")
		assert.Contains(t, string(src), `"Quizzes"`)
		assert.Contains(t, string(src), `group.GET("/quizzes", m.get)`)

		mods, err := os.ReadFile(modulesFile)
		require.NoError(t, err)
		assert.Contains(t, string(mods), `"github.com/nfrund/lessonhub/internal/modules/quizzes"`)
		assert.Contains(t, string(mods), "quizzes.New(quizzes.Dependencies{})")
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := run(t, "new-module", "--name", "quizzes")
		assert.Error(t, err)
	})
}
