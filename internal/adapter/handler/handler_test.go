package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/johnquangdev/call-summarizer/errors"
	"github.com/johnquangdev/call-summarizer/internal/adapter/repository"
	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
	"github.com/johnquangdev/call-summarizer/internal/usecase/history"
	"github.com/johnquangdev/call-summarizer/internal/usecase/ingestion"
	pkgvalidator "github.com/johnquangdev/call-summarizer/pkg/validator"
)

type fakeSummarizer struct {
	reply string
	err   error
}

func (f *fakeSummarizer) Name() string { return "fake" }

func (f *fakeSummarizer) Complete(context.Context, string, string) (string, error) {
	return f.reply, f.err
}

type failingIngest struct{ err error }

func (f failingIngest) Ingest(context.Context, ingestion.Upload) (*entities.IngestionResult, error) {
	return &entities.IngestionResult{Stage: entities.StageFailed}, f.err
}

type app struct {
	e           *echo.Echo
	transcripts *repository.TranscriptRepository
	summaries   *repository.SummaryRepository
	history     *history.UploadHistory
	archive     *fakeArchive
}

type fakeArchive struct {
	files []string
	err   error
}

func (f *fakeArchive) ListFiles(_ context.Context, prefix string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, 0)
	for _, name := range f.files {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out, nil
}

func newApp(t *testing.T, summarizer ingestion.Summarizer, svc ingestion.Service) *app {
	t.Helper()
	dir := t.TempDir()

	a := &app{
		transcripts: repository.NewTranscriptRepository(filepath.Join(dir, "transcript.csv")),
		summaries:   repository.NewSummaryRepository(filepath.Join(dir, "summaries.csv")),
		history: history.NewUploadHistory(func() time.Time {
			return time.Date(2024, 5, 1, 15, 4, 0, 0, time.UTC)
		}),
		archive: &fakeArchive{files: []string{"uploads/1/a.mp3", "uploads/2/b.txt", "other/x"}},
	}

	if svc == nil {
		req, err := ingestion.NewSummaryRequester(summarizer, time.Second, nil)
		require.NoError(t, err)
		p, err := ingestion.NewPipeline(a.transcripts, a.summaries, req, a.history, ingestion.WithStagingDir(filepath.Join(dir, "staging")))
		require.NoError(t, err)
		svc = p
	}

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit("1K"))

	NewRouter(nil,
		NewUploadController(svc, "1K", nil),
		NewReportController(a.transcripts, a.summaries, a.history, nil),
		NewArchiveController(a.archive, nil),
		"none", summarizer.Name(),
	).Setup(e)

	a.e = e
	return a
}

func (a *app) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func uploadRequest(t *testing.T, field, name, body string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = io.WriteString(part, body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestReadEndpointsBeforeAnyUpload(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "x"}, nil)

	rec := a.do(t, httptest.NewRequest(http.MethodGet, "/get-summary", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary":"No summary available."}`, rec.Body.String())

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/get-transcript", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/history", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUploadChatFlow(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "Alice called to greet Bob from Acme, resulting in a farewell."}, nil)

	rec := a.do(t, uploadRequest(t, "file", "chat.txt", "Alice: Hi there\nBob: hello\nAlice: bye"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"status":"success","summary":"Alice called to greet Bob from Acme, resulting in a farewell."}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/get-transcript", nil))
	assert.JSONEq(t, `[
		{"speaker":"SPEAKER_00","text":"Hi there","start":0,"end":1},
		{"speaker":"SPEAKER_01","text":"hello","start":1,"end":2},
		{"speaker":"SPEAKER_00","text":"bye","start":2,"end":3}
	]`, rec.Body.String())

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/get-summary", nil))
	assert.JSONEq(t, `{"summary":"Alice called to greet Bob from Acme, resulting in a farewell."}`, rec.Body.String())

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/history", nil))
	assert.JSONEq(t, `[{"id":1,"name":"chat.txt","timestamp":"03:04 PM","status":"Ready"}]`, rec.Body.String())
}

func TestUploadSummarizerDownReturnsFallback(t *testing.T) {
	a := newApp(t, &fakeSummarizer{err: errors.New("quota exceeded")}, nil)

	rec := a.do(t, uploadRequest(t, "file", "chat.csv", "A: b"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","summary":"Summary currently unavailable due to API limits."}`, rec.Body.String())

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/get-summary", nil))
	assert.JSONEq(t, `{"summary":"Summary currently unavailable due to API limits."}`, rec.Body.String())
}

func TestUploadMissingFile(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "x"}, nil)

	rec := a.do(t, uploadRequest(t, "document", "chat.txt", "A: b"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errs](t, rec)
	assert.EqualValues(t, apperrors.ErrorCode_MISSING_FILE, body.Code)
}

func TestUploadTooLarge(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "x"}, nil)

	rec := a.do(t, uploadRequest(t, "file", "chat.txt", strings.Repeat("A: b\n", 1000)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadParseFailure(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "x"}, nil)

	rec := a.do(t, uploadRequest(t, "file", "chat.txt", "A: \xff"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode[errs](t, rec)
	assert.EqualValues(t, apperrors.ErrorCode_PARSE_FAILED, body.Code)

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/history", nil))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUploadAudioWithoutTranscriber(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "x"}, nil)

	rec := a.do(t, uploadRequest(t, "file", "call.mp3", "ID3"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode[errs](t, rec)
	assert.EqualValues(t, apperrors.ErrorCode_AI_SERVICE_UNAVAILABLE, body.Code)
}

func TestUploadErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ingestion.ErrStagingFailed, http.StatusInternalServerError},
		{ingestion.ErrTranscriptPersistFailed, http.StatusInternalServerError},
		{fmt.Errorf("%w: %w", ingestion.ErrTranscriptPersistFailed, ingestion.ErrLockUnavailable), http.StatusInternalServerError},
		{ingestion.ErrTranscriptionFailed, http.StatusBadGateway},
		{ingestion.ErrInvalidUpload, http.StatusBadRequest},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		a := newApp(t, &fakeSummarizer{reply: "x"}, failingIngest{err: tc.err})
		rec := a.do(t, uploadRequest(t, "file", "chat.txt", "A: b"))
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestListSummaries(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "done"}, nil)
	require.Equal(t, http.StatusOK, a.do(t, uploadRequest(t, "file", "a.txt", "A: b")).Code)
	require.Equal(t, http.StatusOK, a.do(t, uploadRequest(t, "file", "b.txt", "C: d")).Code)

	rec := a.do(t, httptest.NewRequest(http.MethodGet, "/v1/summaries", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Code int `json:"code"`
		Data struct {
			Total int `json:"total"`
			Items []struct {
				FileName string `json:"file_name"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.Total)
	assert.Equal(t, "b.txt", body.Data.Items[1].FileName)

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/history", nil))
	hist := decode[[]entities.HistoryEntry](t, rec)
	require.Len(t, hist, 2)
	assert.Equal(t, "b.txt", hist[0].Name)
	assert.Equal(t, 2, hist[0].ID)
}

func TestUploadLockFailureReportsCacheError(t *testing.T) {
	err := fmt.Errorf("%w: %w", ingestion.ErrTranscriptPersistFailed, ingestion.ErrLockUnavailable)
	a := newApp(t, &fakeSummarizer{reply: "x"}, failingIngest{err: err})

	rec := a.do(t, uploadRequest(t, "file", "chat.txt", "A: b"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[errs](t, rec)
	assert.EqualValues(t, apperrors.ErrorCode_INTEGRATION_CACHE_FAILED, body.Code)
}

func TestListSummariesCorruptLogIsEmpty(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "x"}, nil)
	require.NoError(t, os.WriteFile(a.summaries.Path(), []byte("file_name,text,summary\n\"broken\n"), 0o644))

	rec := a.do(t, httptest.NewRequest(http.MethodGet, "/v1/summaries", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":{"items":[],"total":0}}`, rec.Body.String())

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/get-summary", nil))
	assert.JSONEq(t, `{"summary":"No summary available."}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "x"}, nil)

	rec := a.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"development","transcriber":"none","summarizer":"fake"}`, rec.Body.String())
}

func TestArchiveListing(t *testing.T) {
	a := newApp(t, &fakeSummarizer{reply: "x"}, nil)

	rec := a.do(t, httptest.NewRequest(http.MethodGet, "/v1/archive", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":["uploads/1/a.mp3","uploads/2/b.txt"]}`, rec.Body.String())

	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/v1/archive?prefix=other/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	a.archive.err = errors.New("bucket gone")
	rec = a.do(t, httptest.NewRequest(http.MethodGet, "/v1/archive", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[errs](t, rec)
	assert.EqualValues(t, apperrors.ErrorCode_INTEGRATION_STORAGE_FAILED, body.Code)
}
