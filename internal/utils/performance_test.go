package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStageTimer_StopReturnsElapsed(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	timer := NewStageTimer("benchmarks", log)
	timer.now = func() time.Time { return timer.start.Add(2 * time.Second) }

	assert.Equal(t, 2*time.Second, timer.Stop())
	assert.Contains(t, buf.String(), `"stage":"benchmarks"`)
	assert.NotContains(t, buf.String(), "Slow stage detected")
}

func TestStageTimer_WarnsOnSlowStage(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	timer := NewStageTimer("composition", log)
	timer.now = func() time.Time { return timer.start.Add(SlowStageThreshold + time.Second) }

	timer.Stop()
	assert.Contains(t, buf.String(), "Slow stage detected")
}
