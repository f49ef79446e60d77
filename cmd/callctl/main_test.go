package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TRANSCRIPT_FILE", filepath.Join(dir, "transcript.csv"))
	t.Setenv("SUMMARY_FILE", filepath.Join(dir, "summaries.csv"))
	t.Setenv("STAGING_DIR", filepath.Join(dir, "staging"))
	t.Setenv("TRANSCRIBER_PROVIDER", "none")
	t.Setenv("GROQ_API_KEY", "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := newApp()
	a.Writer = &out
	err := a.Run(append([]string{"callctl"}, args...))
	return out.String(), err
}

func TestIngestRequiresFile(t *testing.T) {
	isolate(t)
	_, err := run(t, "ingest")
	assert.Error(t, err)
}

func TestIngestThenRead(t *testing.T) {
	dir := isolate(t)
	chat := filepath.Join(dir, "chat.txt")
	require.NoError(t, os.WriteFile(chat, []byte("Alice: hello\nBob: hi"), 0o644))

	out, err := run(t, "ingest", "--transcript", chat)
	require.NoError(t, err)

	var ingest struct {
		Status     string `json:"status"`
		Summary    string `json:"summary"`
		Transcript []struct {
			Speaker string `json:"speaker"`
		} `json:"transcript"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &ingest))
	assert.Equal(t, "success", ingest.Status)
	assert.Equal(t, "Summary currently unavailable due to API limits.", ingest.Summary)
	require.Len(t, ingest.Transcript, 2)
	assert.Equal(t, "SPEAKER_01", ingest.Transcript[1].Speaker)

	out, err = run(t, "transcript")
	require.NoError(t, err)
	assert.Contains(t, out, `"text": "hello"`)

	out, err = run(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary currently unavailable due to API limits.")

	out, err = run(t, "summaries")
	require.NoError(t, err)
	assert.Contains(t, out, `"total": 1`)
}

func TestArchivedRequiresStorage(t *testing.T) {
	isolate(t)
	_, err := run(t, "archived")
	assert.ErrorContains(t, err, "STORAGE_ENABLED")
}
