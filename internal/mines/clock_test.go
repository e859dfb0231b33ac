package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	var c Clock

	assert.False(t, c.Tick(1_500))
	assert.Equal(t, 0, c.Seconds())

	c.Start()
	assert.True(t, c.Running())
	assert.False(t, c.Tick(2_499))
	assert.True(t, c.Tick(2_500))
	assert.Equal(t, 1, c.Seconds())
	assert.True(t, c.Tick(12_400))
	assert.Equal(t, 10, c.Seconds())

	c.Stop()
	assert.False(t, c.Tick(60_000))
	assert.Equal(t, 10, c.Seconds())
}
