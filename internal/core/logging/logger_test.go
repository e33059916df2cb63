package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("tracker")
	logger.Info().Ctx(WithTask(context.Background(), "floss")).Msg("completed")

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "tracker", logEntry["component"])
	assert.Equal(t, "floss", logEntry["task"])
	assert.Equal(t, "completed", logEntry["message"])
}
