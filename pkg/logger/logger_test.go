package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Out: &buf})

	l.Debug().Msg("oculto")
	l.Info().Str("code", "P001").Msg("producto consultado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "debe haber exactamente una línea JSON")
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "P001", entry["code"])
	assert.Equal(t, "producto consultado", entry["message"])
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Out: &buf})

	c := l.Component("postgres")
	c.Warn().Msg("conexión lenta")

	assert.Contains(t, buf.String(), `"component":"postgres"`)
}
