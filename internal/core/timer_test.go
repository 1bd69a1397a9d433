package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(SpeedNormal.Interval())
	assert.True(t, fs.Advance(0), "first tick fires immediately")
	assert.False(t, fs.Advance(200*time.Millisecond))
	assert.True(t, fs.Advance(300*time.Millisecond))
	assert.False(t, fs.Advance(0))

	fs.SetInterval(SpeedFast.Interval())
	assert.True(t, fs.Advance(200*time.Millisecond))
}

func TestFixedStepRejectsNonPositiveInterval(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, SpeedNormal.Interval(), fs.step)
}

func TestSpeedCycle(t *testing.T) {
	assert.Equal(t, SpeedNormal, SpeedSlow.Next())
	assert.Equal(t, SpeedFast, SpeedNormal.Next())
	assert.Equal(t, SpeedSlow, SpeedFast.Next())
	assert.Equal(t, time.Second, SpeedSlow.Interval())
	assert.Equal(t, 200*time.Millisecond, SpeedFast.Interval())
	assert.Equal(t, "fast", SpeedFast.String())
}
