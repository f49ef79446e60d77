package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/call-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/call-summarizer/internal/adapter/presenter"
	"github.com/johnquangdev/call-summarizer/internal/domain/repositories"
	"github.com/johnquangdev/call-summarizer/internal/usecase/history"
)

// ReportController serves the read-only views of processed calls.
// None of its endpoints wait on an in-flight upload.
type ReportController struct {
	transcripts repositories.TranscriptRepository
	summaries   repositories.SummaryRepository
	history     history.Service
	logger      *zap.Logger
}

// NewReportController creates a new report controller
func NewReportController(
	transcripts repositories.TranscriptRepository,
	summaries repositories.SummaryRepository,
	history history.Service,
	logger *zap.Logger,
) *ReportController {
	return &ReportController{
		transcripts: transcripts,
		summaries:   summaries,
		history:     history,
		logger:      logger,
	}
}

// GetSummary returns the latest summary
// @Summary      Latest summary
// @Description  Summary of the most recent upload, or "No summary available." when none can be read
// @Tags         Calls
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /get-summary [get]
func (rc *ReportController) GetSummary(c echo.Context) error {
	return RespondJSON(rc.logger, c, http.StatusOK, dto.SummaryResponse{
		Summary: rc.summaries.Latest(c.Request().Context()),
	})
}

// GetTranscript returns the latest transcript
// @Summary      Latest transcript
// @Description  Utterances of the most recent upload; empty when nothing was saved or the file is unreadable
// @Tags         Calls
// @Produce      json
// @Success      200  {array}  upload.TranscriptRecordResponse
// @Router       /get-transcript [get]
func (rc *ReportController) GetTranscript(c echo.Context) error {
	utterances, err := rc.transcripts.Load(c.Request().Context())
	if err != nil && rc.logger != nil {
		rc.logger.Warn("transcript unreadable, returning empty list",
			zap.String("request_id", getRequestID(c)),
			zap.Error(err),
		)
	}
	if err != nil {
		utterances = nil
	}
	return RespondJSON(rc.logger, c, http.StatusOK, presenter.ToTranscriptResponse(utterances))
}

// History lists processed uploads
// @Summary      Upload history
// @Description  Uploads processed since the server started, newest first
// @Tags         Calls
// @Produce      json
// @Success      200  {array}  upload.HistoryEntryResponse
// @Router       /history [get]
func (rc *ReportController) History(c echo.Context) error {
	return RespondJSON(rc.logger, c, http.StatusOK, presenter.ToHistoryResponse(rc.history.List()))
}

// ListSummaries returns the whole summary log
// @Summary      Summary log
// @Description  Every row of the summary log in insertion order; empty when the log is missing or unreadable
// @Tags         Calls
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=dto.SummaryListResponse}
// @Router       /v1/summaries [get]
func (rc *ReportController) ListSummaries(c echo.Context) error {
	records, err := rc.summaries.List(c.Request().Context())
	if err != nil {
		if rc.logger != nil {
			rc.logger.Warn("summary log unreadable, returning empty list",
				zap.String("request_id", getRequestID(c)),
				zap.Error(err),
			)
		}
		records = nil
	}
	return HandleSuccess(rc.logger, c, presenter.ToSummaryListResponse(records))
}
