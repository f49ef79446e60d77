package jobcontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginCarriesMetadata(t *testing.T) {
	id := uuid.New()
	ctx, cancel := Begin(context.Background(), id, "call.mp3", 0)
	defer cancel()

	meta := GetUploadMetadata(ctx)
	assert.Equal(t, id, meta.UploadID)
	assert.Equal(t, "call.mp3", meta.FileName)
	assert.False(t, meta.StartTime.IsZero())

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)
}

func TestBeginWithTimeout(t *testing.T) {
	ctx, cancel := Begin(context.Background(), uuid.New(), "chat.txt", time.Minute)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestElapsedOutsideIngestion(t *testing.T) {
	assert.Zero(t, Elapsed(context.Background()))

	_, ok := GetUploadID(context.Background())
	assert.False(t, ok)
}

func TestIsRetryableError(t *testing.T) {
	cases := map[string]bool{
		"dial tcp: connection refused":          true,
		"request failed with status 503":        true,
		"429 Too Many Requests":                 true,
		"invalid api key":                       false,
		"unsupported media type for transcript": false,
	}
	for msg, want := range cases {
		assert.Equal(t, want, IsRetryableError(errors.New(msg)), msg)
	}
	assert.False(t, IsRetryableError(nil))
}
