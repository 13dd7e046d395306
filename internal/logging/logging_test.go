package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewTagsEveryLineWithRunID(t *testing.T) {
	logger := New("debug")

	var buf bytes.Buffer
	logger = logger.Output(&buf)
	logger.Info().Str("selection", "LYVTWZ").Msg("starting solve")

	assert.Contains(t, buf.String(), `"runId"`)
	assert.Contains(t, buf.String(), "starting solve")
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	logger := New("not-a-level")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
