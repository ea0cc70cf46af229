package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		quiet bool
		want  log.Level
	}{
		{"default", false, false, log.DefaultConfig().Level},
		{"debug", true, false, log.DebugLevel},
		{"quiet", false, true, log.ErrorLevel},
		{"debug wins over quiet", true, true, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := CreateLogger(tt.debug, tt.quiet)
			assert.NotNil(t, logger)
			assert.Equal(t, tt.want, logger.Level())
		})
	}
}
