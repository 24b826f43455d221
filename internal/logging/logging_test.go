package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zerolog.Level{
		"":         DefaultLevel,
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "warn", JSON: true})
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("k", "v").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestNew_Console(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l, err := New(&buf, Options{NoColor: true})
	require.NoError(t, err)

	l.Info().Int("min_cut", 2).Msg("done")
	assert.Contains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "min_cut=2")

	_, err = New(&buf, Options{Level: "nope"})
	assert.Error(t, err)
}
