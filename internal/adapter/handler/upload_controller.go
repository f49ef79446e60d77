package handler

import (
	stdErrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/call-summarizer/errors"
	"github.com/johnquangdev/call-summarizer/internal/adapter/dto/upload"
	"github.com/johnquangdev/call-summarizer/internal/adapter/presenter"
	"github.com/johnquangdev/call-summarizer/internal/usecase/ingestion"
	pkgvalidator "github.com/johnquangdev/call-summarizer/pkg/validator"
)

// UploadFormField is the multipart field carrying the file
const UploadFormField = "file"

// UploadController handles call uploads
type UploadController struct {
	svc           ingestion.Service
	maxUploadSize string
	logger        *zap.Logger
}

// NewUploadController creates a new upload controller
func NewUploadController(svc ingestion.Service, maxUploadSize string, logger *zap.Logger) *UploadController {
	return &UploadController{svc: svc, maxUploadSize: maxUploadSize, logger: logger}
}

// Upload ingests one audio recording or chat export
// @Summary      Upload a call
// @Description  Transcribes audio or parses a "Speaker: text" chat export, saves the transcript and returns a one-sentence summary
// @Tags         Calls
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file                    true  "Audio file or .txt/.csv chat export"
// @Success      200   {object}  upload.UploadResponse
// @Failure      400   {object}  common.ErrorResponse    "Missing or invalid file"
// @Failure      413   {object}  common.ErrorResponse    "Upload too large"
// @Failure      422   {object}  common.ErrorResponse    "Unreadable chat export"
// @Failure      502   {object}  common.ErrorResponse    "Transcription failed"
// @Failure      503   {object}  common.ErrorResponse    "Transcriber not configured"
// @Failure      500   {object}  common.ErrorResponse    "Staging or transcript persistence failed"
// @Router       /upload [post]
func (uc *UploadController) Upload(c echo.Context) error {
	fh, err := c.FormFile(UploadFormField)
	if err != nil {
		return HandleError(uc.logger, c, uc.formError(err))
	}

	req := upload.UploadRequest{FileName: fh.Filename, Size: fh.Size}
	if err := c.Validate(&req); err != nil {
		return HandleError(uc.logger, c, errors.ErrInvalidArgument(strings.Join(pkgvalidator.Describe(err), "; ")))
	}

	src, err := fh.Open()
	if err != nil {
		return HandleError(uc.logger, c, errors.ErrStagingFailed(fh.Filename, err))
	}
	defer src.Close()

	result, err := uc.svc.Ingest(c.Request().Context(), ingestion.Upload{FileName: fh.Filename, Body: src})
	if err != nil {
		return HandleError(uc.logger, c, toAppError(fh.Filename, err))
	}

	if uc.logger != nil {
		uc.logger.Info("upload processed",
			zap.String("request_id", getRequestID(c)),
			zap.String("upload_id", result.UploadID.String()),
			zap.Int("utterances", len(result.Utterances)),
			zap.Bool("fallback_summary", result.SummaryErr != nil),
		)
	}
	return RespondJSON(uc.logger, c, http.StatusOK, presenter.ToUploadResponse(result))
}

func (uc *UploadController) formError(err error) errors.AppError {
	var he *echo.HTTPError
	if stdErrors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
		return errors.ErrFileTooLarge(uc.maxUploadSize)
	}
	var mbe *http.MaxBytesError
	if stdErrors.As(err, &mbe) {
		return errors.ErrFileTooLarge(uc.maxUploadSize)
	}
	if stdErrors.Is(err, http.ErrMissingFile) {
		return errors.ErrMissingFile()
	}
	return errors.ErrInvalidPayload()
}
