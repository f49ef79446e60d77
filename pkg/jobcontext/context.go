package jobcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type KeyContext string

var (
	keyUploadID  KeyContext = "upload_id"
	keyFileName  KeyContext = "file_name"
	keyStartTime KeyContext = "upload_start_time"
)

// UploadMetadata holds metadata for one ingestion run
type UploadMetadata struct {
	UploadID  uuid.UUID
	FileName  string
	StartTime time.Time
}

// Begin derives an ingestion context carrying upload metadata.
// A positive timeout bounds the whole run; zero leaves the parent deadline in place.
func Begin(parentCtx context.Context, uploadID uuid.UUID, fileName string, timeout time.Duration) (context.Context, context.CancelFunc) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parentCtx, timeout)
	} else {
		ctx, cancel = context.WithCancel(parentCtx)
	}

	ctx = context.WithValue(ctx, keyUploadID, uploadID)
	ctx = context.WithValue(ctx, keyFileName, fileName)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())

	return ctx, cancel
}

// GetUploadID extracts upload ID from context
func GetUploadID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyUploadID).(uuid.UUID)
	return id, ok
}

// GetFileName extracts the original file name from context
func GetFileName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(keyFileName).(string)
	return name, ok
}

// GetStartTime extracts upload start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// Elapsed returns the time since Begin, or zero outside an ingestion context
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// GetUploadMetadata extracts all upload metadata from context
func GetUploadMetadata(ctx context.Context) *UploadMetadata {
	id, _ := GetUploadID(ctx)
	name, _ := GetFileName(ctx)
	start, _ := GetStartTime(ctx)

	return &UploadMetadata{
		UploadID:  id,
		FileName:  name,
		StartTime: start,
	}
}

// IsRetryableError checks if a provider error is transient.
// Retryable errors include network errors, timeouts and rate limits.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// API rate limiting
	if strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "429") {
		return true
	}

	// Server errors (5xx)
	if strings.Contains(errStr, "status 5") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "bad gateway") {
		return true
	}

	return false
}
