package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dl/fmtfn/internal/greet"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{in: "", want: ColorAuto},
		{in: "auto", want: ColorAuto},
		{in: "always", want: ColorAlways},
		{in: "never", want: ColorNever},
		{in: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorMode_StringRoundTrip(t *testing.T) {
	for _, m := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		got, err := ParseColorMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestConfig_ValidateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ValidateRejectsBadInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.UserIDs = []string{"12", "twelve"}
	assert.ErrorIs(t, cfg.Validate(), greet.ErrInvalidUserID)

	cfg = DefaultConfig()
	cfg.Color = ColorMode(9)
	assert.Error(t, cfg.Validate())
}

func TestConfig_ResultsNoArgsIsAnonymous(t *testing.T) {
	cfg := DefaultConfig()

	results, err := cfg.Results()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Anonymous())
	assert.Equal(t, "anonymous user", results[0].Value.String())
}

func TestConfig_ResultsOrderAndAnonymousFlag(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UserIDs = []string{"1234", "-", "7"}
	cfg.Anonymous = true

	results, err := cfg.Results()
	require.NoError(t, err)
	require.Len(t, results, 4)

	var got []string
	for _, r := range results {
		got = append(got, r.Value.String())
	}
	assert.Equal(t, []string{
		"user number 1234",
		"anonymous user",
		"user number 7",
		"anonymous user",
	}, got)
}
