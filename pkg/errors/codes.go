package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	CodeOK           ErrorCode = "OK"
	CodeUnknown      ErrorCode = "COMMON_000"
	CodeInternal     ErrorCode = "COMMON_001"
	CodeInvalidParam ErrorCode = "COMMON_002"
	CodeNotFound     ErrorCode = "COMMON_003"
	CodeUnavailable  ErrorCode = "COMMON_004"
)

// Dataset (CSV) error codes
const (
	CodeCSVOpen   ErrorCode = "CSV_001" // file missing or unreadable
	CodeCSVHeader ErrorCode = "CSV_002" // header row absent or columns wrong
	CodeCSVParse  ErrorCode = "CSV_003" // numeric cell failed to parse
	CodeCSVEmpty  ErrorCode = "CSV_004" // header only, no data rows
)

// Canvas error codes
const (
	CodeImpactRangeInvalid ErrorCode = "CANVAS_001" // min > max or non-numeric bounds
	CodeDatasetNotLoaded   ErrorCode = "CANVAS_002" // figure requested before a successful load
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	CodeInternal:     http.StatusInternalServerError,
	CodeInvalidParam: http.StatusBadRequest,
	CodeNotFound:     http.StatusNotFound,
	CodeUnavailable:  http.StatusServiceUnavailable,

	CodeCSVOpen:   http.StatusServiceUnavailable,
	CodeCSVHeader: http.StatusInternalServerError,
	CodeCSVParse:  http.StatusInternalServerError,
	CodeCSVEmpty:  http.StatusInternalServerError,

	CodeImpactRangeInvalid: http.StatusBadRequest,
	CodeDatasetNotLoaded:   http.StatusServiceUnavailable,
}

// HTTPStatus returns the HTTP status code associated with the first AppError
// in err's chain, or 500 when the error carries no known code.
func HTTPStatus(err error) int {
	if status, ok := ErrorCodeHTTPStatus[GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
