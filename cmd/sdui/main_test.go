package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sdui/internal/theme"
)

var settingsPath = filepath.Join("testdata", "sdui.yaml")

func executeCommand(stdin string, args ...string) (stdout, stderr string, err error) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", settingsPath}, args...))

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderCommandFormats(t *testing.T) {
	t.Parallel()

	home := filepath.Join("testdata", "home.yaml")

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := executeCommand("", "render", home, "--format", "json")
		require.NoError(t, err)

		var payload struct {
			ID        string `json:"id"`
			IsDark    bool   `json:"isDark"`
			Nodes     []any  `json:"nodes"`
			Fallbacks []struct {
				Attribute string `json:"attribute"`
			} `json:"fallbacks"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
		require.Equal(t, "home", payload.ID)
		require.False(t, payload.IsDark)
		require.Len(t, payload.Nodes, 1)
		require.Len(t, payload.Fallbacks, 1)
		require.Equal(t, "summary.fill", payload.Fallbacks[0].Attribute)
	})

	t.Run("tree", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := executeCommand("", "render", home, "--format", "tree", "--dark")
		require.NoError(t, err)
		require.Contains(t, stdout, "screen home (dark)")
		require.Contains(t, stdout, "column body")
		require.Contains(t, stdout, "text greeting")
		require.Contains(t, stdout, "fallback summary.fill")
	})

	t.Run("paint", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := executeCommand("", "render", home, "--width", "40")
		require.NoError(t, err)
		require.Contains(t, stdout, "Hello")
		require.Contains(t, stdout, "Steps")
	})

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := executeCommand(`{"id":"s","nodes":[{"type":"text","id":"t","text":"Piped"}]}`, "render", "-", "-f", "tree")
		require.NoError(t, err)
		require.Contains(t, stdout, "text t")
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, _, err := executeCommand("", "render", home, "--format", "svg")
		require.ErrorContains(t, err, "unsupported format")
	})

	t.Run("unknown node type", func(t *testing.T) {
		t.Parallel()
		_, _, err := executeCommand("", "render", filepath.Join("testdata", "unknown.yaml"))
		require.ErrorContains(t, err, "carousel")
	})
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("", "validate", filepath.Join("testdata", "home.yaml"))
	require.NoError(t, err)
	require.Contains(t, stdout, "✓")
	require.Contains(t, stdout, "1 fallbacks")

	stdout, _, err = executeCommand("", "validate", filepath.Join("testdata", "home.yaml"), filepath.Join("testdata", "unknown.yaml"))
	require.ErrorContains(t, err, "1 of 2 documents failed")
	require.Contains(t, stdout, "✗")
}

func TestThemeExportCommand(t *testing.T) {
	t.Parallel()

	t.Run("dark json", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := executeCommand("", "theme", "export", "--dark", "--format", "json")
		require.NoError(t, err)

		var tokens theme.Tokens
		require.NoError(t, json.Unmarshal([]byte(stdout), &tokens))
		require.Equal(t, theme.DefaultContext().Dark().Export().ColorScheme, tokens.ColorScheme)
	})

	t.Run("both yaml", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := executeCommand("", "theme", "export", "--both")
		require.NoError(t, err)
		require.Contains(t, stdout, "light:")
		require.Contains(t, stdout, "dark:")
		require.Contains(t, stdout, "colorScheme:")
	})
}

func TestGenerateCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("", "generate", "a", "music", "player")
	require.NoError(t, err)
	require.Contains(t, stdout, "id: music_screen")

	stdout, _, err = executeCommand("", "generate", "--render", "--width", "50", "weekly", "recipes")
	require.NoError(t, err)
	require.Contains(t, stdout, "Recipes")
}

func TestPreviewCommandWithoutWatch(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("", "preview", filepath.Join("testdata", "home.yaml"))
	require.NoError(t, err)
	require.Contains(t, stdout, "Hello")

	stdout, _, err = executeCommand("", "preview", filepath.Join("testdata", "unknown.yaml"))
	require.Error(t, err)
	require.Contains(t, stdout, "error:")
}

func TestMetricsFlagPrintsCounters(t *testing.T) {
	t.Parallel()

	_, stderr, err := executeCommand("", "render", filepath.Join("testdata", "home.yaml"), "--metrics")
	require.NoError(t, err)
	require.Contains(t, stderr, `sdui_render_passes_total{outcome="ok"} 1`)
	require.Contains(t, stderr, `sdui_style_fallbacks_total{attribute="fill"} 1`)
}

func TestMetricsFlagPrintsOnFailedRuns(t *testing.T) {
	t.Parallel()

	_, stderr, err := executeCommand("", "--metrics", "render", filepath.Join("testdata", "unknown.yaml"))
	require.ErrorContains(t, err, "carousel")
	require.Contains(t, stderr, "sdui_render_failures_total")
	require.Contains(t, stderr, `sdui_render_passes_total{outcome="rejected"} 1`)
}

func TestInvalidSettingsFail(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join("testdata", "missing.yaml"), "version"})
	require.Error(t, root.Execute())
}

func TestDiffCommand(t *testing.T) {
	t.Parallel()

	home := filepath.Join("testdata", "home.yaml")

	stdout, _, err := executeCommand("", "diff", home)
	require.NoError(t, err)
	require.Contains(t, stdout, "--- testdata/home.yaml (light)")
	require.Contains(t, stdout, `+  "isDark": true,`)

	stdout, _, err = executeCommand("", "diff", home, home, "--format", "tree")
	require.NoError(t, err)
	require.Contains(t, stdout, "no differences")
}
