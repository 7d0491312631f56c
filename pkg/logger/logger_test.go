package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// El nivel viene de configuración (APP_LOG_LEVEL); un valor desconocido
// o vacío cae en info.
func TestNew_NivelConfigurable(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		l := New(Config{Env: "production", Level: tc.in})
		assert.Equal(t, tc.want, l.Zerolog().GetLevel(), "nivel %q", tc.in)
	}
}

func TestNew_AgregaCampoService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "pos-api"})

	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")

	assert.Contains(t, buf.String(), `"service":"pos-api"`)
}

func TestNew_SinService_NoAgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info"})

	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")

	assert.NotContains(t, buf.String(), `"service"`)
}
