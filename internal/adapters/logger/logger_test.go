package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.hartos.dev/mach/internal/adapters/logger"
	"go.hartos.dev/mach/internal/core/ports"
	"go.trai.ch/zerr"
)

func TestLogger_Output(t *testing.T) {
	tests := []struct {
		name       string
		goldenName string
		log        func(l ports.Logger)
	}{
		{
			name:       "info",
			goldenName: "info",
			log: func(l ports.Logger) {
				l.Info("composing flags for cross build")
			},
		},
		{
			name:       "warn",
			goldenName: "warn",
			log: func(l ports.Logger) {
				l.Warn("config file missing, using defaults")
			},
		},
		{
			name:       "error plain",
			goldenName: "error_plain",
			log: func(l ports.Logger) {
				l.Error(errors.New("disk full"))
			},
		},
		{
			name:       "error chain",
			goldenName: "error_chain",
			log: func(l ports.Logger) {
				l.Error(zerr.Wrap(errors.New("exit status 7"), "task step failed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := new(bytes.Buffer)
			l := logger.NewWithOutput(buf)
			tt.log(l)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_NilError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	l := logger.NewWithOutput(buf)
	l.Error(nil)

	assert.Empty(t, buf.String())
}
