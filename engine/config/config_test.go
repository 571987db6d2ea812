package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePartialOverridesDefaults(t *testing.T) {
	in, err := Parse([]byte("double_click_ms = 320\ndelayed_click_slop = 3.5\n"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 320, in.DoubleClickMillis)
	assert.Equal(t, float32(3.5), in.DelayedClickSlop)
	assert.Equal(t, def.DoubleClickDistance, in.DoubleClickDistance)
	assert.Equal(t, def.DelayedClickMillis, in.DelayedClickMillis)
	assert.Equal(t, 320*time.Millisecond, in.DoubleClickTime())
}

func TestParseRejectsMalformed(t *testing.T) {
	in, err := Parse([]byte("double_click_ms = \"soon\""))
	assert.Error(t, err)
	assert.Equal(t, Default(), in)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want func(Input) bool
	}{
		{
			name: "zero durations and rates become defaults",
			in:   Input{},
			want: func(in Input) bool {
				def := Default()
				return in.DoubleClickMillis == def.DoubleClickMillis &&
					in.DelayedClickMillis == def.DelayedClickMillis &&
					in.DimRiseRate == def.DimRiseRate &&
					in.DimFallRate == def.DimFallRate &&
					in.DimMaxAlpha == def.DimMaxAlpha
			},
		},
		{
			name: "alpha above one is reset",
			in:   Input{DimMaxAlpha: 3},
			want: func(in Input) bool { return in.DimMaxAlpha == Default().DimMaxAlpha },
		},
		{
			name: "negative tolerances are reset",
			in:   Input{DoubleClickDistance: -1, DelayedClickSlop: -3},
			want: func(in Input) bool { return in == Default() },
		},
		{
			name: "zero distance is kept",
			in:   Input{DoubleClickDistance: 0, DoubleClickMillis: 100},
			want: func(in Input) bool { return in.DoubleClickDistance == 0 && in.DoubleClickMillis == 100 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want(tt.in.Validate()))
		})
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	in, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), in)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canopy", "input.toml")
	want := Default()
	want.DelayedClickMillis = 400
	want.DimRiseRate = 9

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.toml")
	require.NoError(t, os.WriteFile(path, []byte("double_click_ms = 300\n"), 0o644))

	changes := make(chan Input, 4)
	w, err := Watch(path, func(in Input) { changes <- in })
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(path, []byte("double_click_ms = 700\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case in := <-changes:
			if in.DoubleClickMillis == 700 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
