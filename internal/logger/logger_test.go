package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf strings.Builder
	log := NewWithWriter(&buf, 0)

	log.Debug("hidden")
	log.Info("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNewWithWriter_DebugLevel(t *testing.T) {
	var buf strings.Builder
	log := NewWithWriter(&buf, -4)

	log.Debug("visible now")

	assert.Contains(t, buf.String(), "visible now")
}
