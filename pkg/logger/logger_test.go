package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/articulos-centros/pkg/logger"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.WithStr("run_id", "r-1").Info().Int("rows", 3).Msg("export escrito")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "r-1", entry["run_id"])
	assert.Equal(t, float64(3), entry["rows"])
	assert.Equal(t, "export escrito", entry["message"])
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	log.Debug().Msg("detalle")
	assert.Empty(t, buf.String())

	verbose := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})
	verbose.Debug().Msg("detalle")
	assert.True(t, strings.Contains(buf.String(), "detalle"))
}

func TestNop_Silent(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Warn().Msg("nada") })
}
