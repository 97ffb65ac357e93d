package main

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVersion(t *testing.T) {
	t.Parallel()

	info := buildInfo{Version: "0.4.0", Commit: "9f1c2e7", Date: "2026-03-02T10:00:00Z", Go: "go1.22.4"}

	t.Run("full", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, writeVersion(&buf, info, false))
		assert.Equal(t, "sdui 0.4.0\ncommit: 9f1c2e7\nbuilt: 2026-03-02T10:00:00Z\ngo: go1.22.4\n", buf.String())
	})

	t.Run("short", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, writeVersion(&buf, info, true))
		assert.Equal(t, "0.4.0\n", buf.String())
	})
}

func TestBuildInfoWithModule(t *testing.T) {
	t.Parallel()

	stamped := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.5.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-04-01T08:30:00Z"},
		},
	}

	tests := []struct {
		name string
		in   buildInfo
		bi   *debug.BuildInfo
		want buildInfo
	}{
		{
			name: "placeholders take vcs stamps",
			in:   buildInfo{Version: "dev", Commit: "none", Date: "unknown"},
			bi:   stamped,
			want: buildInfo{Version: "v0.5.1", Commit: "0123456789ab", Date: "2026-04-01T08:30:00Z"},
		},
		{
			name: "ldflags values win",
			in:   buildInfo{Version: "1.0.0", Commit: "abc", Date: "2026-01-01"},
			bi:   stamped,
			want: buildInfo{Version: "1.0.0", Commit: "abc", Date: "2026-01-01"},
		},
		{
			name: "devel module keeps placeholders",
			in:   buildInfo{Version: "dev", Commit: "none", Date: "unknown"},
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: buildInfo{Version: "dev", Commit: "none", Date: "unknown"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.withModule(tt.bi))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version", "--short"})

	require.NoError(t, root.Execute())
	assert.Equal(t, currentBuild().Version, strings.TrimSpace(buf.String()))
}
