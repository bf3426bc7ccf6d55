package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(zap.NewNop()) })

	ctx := WithRequestID(context.Background(), "abc-123")
	Infof(ctx, "planned %d routes", 3)
	Debugf(ctx, "dropped below level")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "planned 3 routes", entries[0].Message)
	assert.Equal(t, "abc-123", entries[0].ContextMap()["req_id"])
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("chatty", false))
	assert.Equal(t, "", RequestID(context.Background()))
}
