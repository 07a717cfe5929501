package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", expected: zerolog.WarnLevel},
		{name: "unknown falls back to info", level: "chatty", expected: zerolog.InfoLevel},
		{name: "empty falls back to info", level: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupWriter(&bytes.Buffer{}, tt.level, "json")
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestSetupWriter_JSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	SetupWriter(&buf, "info", "json")
	log.Info().Str("district", "Konak").Msg("annotated")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Konak", line["district"])
	assert.Equal(t, "annotated", line["message"])
}
