package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2

	ErrorCode_INVALID_PAYLOAD ErrorCode = 100
	ErrorCode_MISSING_FILE    ErrorCode = 101
	ErrorCode_FILE_TOO_LARGE  ErrorCode = 102

	ErrorCode_UPLOAD_STAGING_FAILED     ErrorCode = 200
	ErrorCode_PARSE_FAILED              ErrorCode = 201
	ErrorCode_TRANSCRIPT_PERSIST_FAILED ErrorCode = 202

	ErrorCode_AI_TRANSCRIPTION_FAILED    ErrorCode = 300
	ErrorCode_AI_SERVICE_UNAVAILABLE     ErrorCode = 301
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 400
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 401
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_MISSING_FILE:               "MISSING_FILE",
	ErrorCode_FILE_TOO_LARGE:             "FILE_TOO_LARGE",
	ErrorCode_UPLOAD_STAGING_FAILED:      "UPLOAD_STAGING_FAILED",
	ErrorCode_PARSE_FAILED:               "PARSE_FAILED",
	ErrorCode_TRANSCRIPT_PERSIST_FAILED:  "TRANSCRIPT_PERSIST_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
