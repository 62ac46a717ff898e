package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: "debug", Format: "json"})

	log.Debug(context.Background(), "branch decision",
		String("branch", "fallback"),
		Float64("avg_speed", 181.8),
		Bool("collision", true),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "branch decision", entry["msg"])
	assert.Equal(t, "fallback", entry["branch"])
	assert.Equal(t, 181.8, entry["avg_speed"])
	assert.Equal(t, true, entry["collision"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: "warn", Format: "text"})

	log.Info(context.Background(), "suppressed")
	assert.Empty(t, buf.String())

	log.Warn(context.Background(), "emitted")
	assert.Contains(t, buf.String(), "emitted")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: "info", Format: "json"}).With(Int("segment", 3))

	log.Info(context.Background(), "hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(3), entry["segment"])
}

func TestNoop(t *testing.T) {
	log := Noop()
	// Must be safe to call everywhere, including With chains.
	log.With(String("k", "v")).Error(context.Background(), "dropped")
}
