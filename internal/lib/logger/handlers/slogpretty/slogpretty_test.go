package slogpretty

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}

	return slog.New(opts.NewPrettyHandler(buf))
}

// fieldsOf decodes the indented JSON object printed after the message.
func fieldsOf(t *testing.T, line string) map[string]interface{} {
	t.Helper()

	start := strings.Index(line, "{")
	end := strings.LastIndex(line, "}")
	require.True(t, start >= 0 && end > start, "no fields in %q", line)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line[start:end+1]), &fields))

	return fields
}

func TestGroupsAreNested(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.With(slog.String("op", "handlers.test")).
		WithGroup("request").
		With(slog.String("id", "42")).
		Info("served", slog.Int("status", 200), slog.Group("client", slog.String("ip", "127.0.0.1")))

	fields := fieldsOf(t, buf.String())

	assert.Equal(t, "handlers.test", fields["op"])
	assert.Equal(t, map[string]interface{}{
		"id":     "42",
		"status": float64(200),
		"client": map[string]interface{}{"ip": "127.0.0.1"},
	}, fields["request"])
}

type loggedRequest struct{ title string }

func (r loggedRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("title", r.title))
}

func TestLogValuerIsResolved(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestLogger(&buf).Info("decoded", slog.Any("request", loggedRequest{title: "Conf"}))

	fields := fieldsOf(t, buf.String())

	assert.Equal(t, map[string]interface{}{"title": "Conf"}, fields["request"])
}

func TestLevelBelowMinimumIsDropped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}
	slog.New(opts.NewPrettyHandler(&buf)).Debug("hidden")

	assert.Empty(t, buf.String())
}
