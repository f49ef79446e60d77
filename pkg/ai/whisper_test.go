package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
	"github.com/johnquangdev/call-summarizer/pkg/config"
	"github.com/johnquangdev/call-summarizer/pkg/jobcontext"
)

func TestWhisperWithoutKeyIsUnavailable(t *testing.T) {
	client := NewWhisperClient(&config.OpenAIConfig{})

	_, err := client.Transcribe(context.Background(), strings.NewReader("ID3"))
	assert.ErrorIs(t, err, entities.ErrTranscriberUnavailable)
}

func TestWhisperErrorNamesUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"unsupported format","type":"invalid_request_error"}}`))
	}))
	defer ts.Close()

	client := NewWhisperClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	ctx, cancel := jobcontext.Begin(context.Background(), uuid.New(), "call.mp3", 0)
	defer cancel()

	_, err := client.Transcribe(ctx, strings.NewReader("ID3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"call.mp3"`)
}
