package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSeed(t *testing.T) {
	s, err := ParseSettings(Expert.String())
	require.NoError(t, err)
	assert.Equal(t, Expert, s)
	assert.Equal(t, "16:30:99", Expert.String())
}

func TestParseSettingsRejects(t *testing.T) {
	for _, seed := range []string{"", "9:9", "a:b:c", "2:2:4", "0:3:0"} {
		_, err := ParseSettings(seed)
		assert.ErrorIs(t, err, ErrInvalidSettings, "seed %q", seed)
	}
}

func TestPreset(t *testing.T) {
	s, ok := Preset("Beginner")
	assert.True(t, ok)
	assert.Equal(t, Beginner, s)

	_, ok = Preset("nightmare")
	assert.False(t, ok)
}

func TestSafeCells(t *testing.T) {
	assert.Equal(t, 71, Beginner.SafeCells())
	assert.Equal(t, 480, Expert.Cells())
}
