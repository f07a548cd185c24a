package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
[curve]
samples_per_segment = 20

[[curve.edit]]
index = 3
x = -1.5
y = 2
z = 0.25

[[curve.edit]]
index = 9
x = 6

[clip]
left = 5
right = 1

[generator]
count = 40
seed = 7
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Curve.SamplesPerSegment)
	require.Len(t, cfg.Curve.Edits, 2)
	assert.Equal(t, PointEdit{Index: 3, X: -1.5, Y: 2, Z: 0.25}, cfg.Curve.Edits[0])
	assert.Equal(t, PointEdit{Index: 9, X: 6}, cfg.Curve.Edits[1])

	// Degenerate windows are accepted as-is; untouched edges keep defaults.
	assert.Equal(t, Clip{Left: 5, Right: 1, Bottom: -3, Top: 3}, cfg.Clip)

	assert.Equal(t, 40, cfg.Generator.Count)
	assert.Equal(t, uint64(7), cfg.Generator.Seed)
	assert.Equal(t, -5.0, cfg.Generator.Min)
	assert.Equal(t, Default().Preview, cfg.Preview)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"syntax", "[curve\nsamples_per_segment = 2", false},
		{"unknown key", "[curve]\nsegments = 2", false},
		{"zero samples", "[curve]\nsamples_per_segment = 0", true},
		{"bad edit index", "[[curve.edit]]\nindex = 10", true},
		{"negative count", "[generator]\ncount = -1", true},
		{"inverted range", "[generator]\nmin = 3\nmax = -3", true},
		{"empty preview", "[preview]\nwidth = 0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NotErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cgdemo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[preview]\nwidth = 320\nheight = 240\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Preview.Width)
	assert.Equal(t, 240, cfg.Preview.Height)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	want := Default()
	want.Curve.Edits = []PointEdit{{Index: 2, X: 1, Y: -1, Z: 0.5}}

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
