package handler

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/call-summarizer/errors"
)

// ArchiveLister lists archived uploads
type ArchiveLister interface {
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}

// ArchiveController exposes the raw-upload archive
type ArchiveController struct {
	archive ArchiveLister
	logger  *zap.Logger
}

// NewArchiveController creates a new archive controller
func NewArchiveController(archive ArchiveLister, logger *zap.Logger) *ArchiveController {
	return &ArchiveController{archive: archive, logger: logger}
}

// ListUploads lists archived uploads
// @Summary      Archived uploads
// @Description  Object names of raw uploads kept in object storage
// @Tags         Storage
// @Produce      json
// @Param        prefix  query     string  false  "Object name prefix"  default(uploads/)
// @Success      200     {object}  common.SuccessResponse{data=[]string}
// @Failure      400     {object}  common.ErrorResponse  "Prefix outside the upload area"
// @Failure      500     {object}  common.ErrorResponse  "Listing failed"
// @Router       /v1/archive [get]
func (h *ArchiveController) ListUploads(c echo.Context) error {
	prefix := c.QueryParam("prefix")
	if prefix == "" {
		prefix = "uploads/"
	}
	if !strings.HasPrefix(prefix, "uploads/") {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("prefix must start with uploads/"))
	}

	files, err := h.archive.ListFiles(c.Request().Context(), prefix)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to list archived uploads",
				zap.String("prefix", prefix),
				zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("list uploads", err))
	}

	return HandleSuccess(h.logger, c, files)
}
