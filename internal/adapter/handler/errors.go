package handler

import (
	"context"
	stdErrors "errors"

	"github.com/johnquangdev/call-summarizer/errors"
	"github.com/johnquangdev/call-summarizer/internal/domain/entities"
	"github.com/johnquangdev/call-summarizer/internal/usecase/ingestion"
)

// toAppError maps ingestion failures onto API errors
func toAppError(fileName string, err error) errors.AppError {
	var appErr errors.AppError
	switch {
	case stdErrors.As(err, &appErr):
		return appErr
	case stdErrors.Is(err, ingestion.ErrInvalidUpload):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, ingestion.ErrStagingFailed):
		return errors.ErrStagingFailed(fileName, err)
	case stdErrors.Is(err, ingestion.ErrParseFailed):
		return errors.ErrParseFailed(fileName, err)
	case stdErrors.Is(err, entities.ErrTranscriberUnavailable):
		return errors.ErrAIServiceUnavailable("transcription")
	case stdErrors.Is(err, ingestion.ErrTranscriptionFailed):
		return errors.ErrAITranscriptionFailed(err)
	case stdErrors.Is(err, ingestion.ErrLockUnavailable):
		return errors.ErrCacheFailed("acquire store lock", err)
	case stdErrors.Is(err, ingestion.ErrTranscriptPersistFailed):
		return errors.ErrTranscriptPersistFailed(err)
	case stdErrors.Is(err, context.DeadlineExceeded):
		return errors.ErrAIServiceUnavailable("ingestion timeout")
	default:
		return errors.ErrInternal(err)
	}
}
