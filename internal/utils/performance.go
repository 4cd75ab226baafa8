package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// SlowStageThreshold is the duration above which a stage is reported as slow
const SlowStageThreshold = 10 * time.Second

// StageTimer measures how long a pipeline stage takes
type StageTimer struct {
	start time.Time
	stage string
	log   zerolog.Logger
	now   func() time.Time
}

// NewStageTimer starts timing stage
func NewStageTimer(stage string, log zerolog.Logger) *StageTimer {
	return &StageTimer{
		start: time.Now(),
		stage: stage,
		log:   log,
		now:   time.Now,
	}
}

// Stop logs the elapsed time and returns it
func (t *StageTimer) Stop() time.Duration {
	duration := t.now().Sub(t.start)

	t.log.Debug().
		Str("stage", t.stage).
		Dur("duration_ms", duration).
		Msg("Stage completed")

	if duration > SlowStageThreshold {
		t.log.Warn().
			Str("stage", t.stage).
			Dur("duration", duration).
			Msg("Slow stage detected")
	}

	return duration
}
