package errors

import "fmt"

// ErrorCode identifies the class of an AppError independently of its HTTP status
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED             ErrorCode = 0
	ErrorCode_INVALID_ARGUMENT        ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD         ErrorCode = 1002
	ErrorCode_NOT_FOUND               ErrorCode = 1003
	ErrorCode_METHOD_NOT_ALLOWED      ErrorCode = 1004
	ErrorCode_PAYLOAD_TOO_LARGE       ErrorCode = 1005
	ErrorCode_INTERNAL                ErrorCode = 1100
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 5003
	ErrorCode_INTEGRATION_MAIL_FAILED ErrorCode = 7005
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:             "UNSPECIFIED",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_METHOD_NOT_ALLOWED:      "METHOD_NOT_ALLOWED",
	ErrorCode_PAYLOAD_TOO_LARGE:       "PAYLOAD_TOO_LARGE",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_AI_SUMMARY_FAILED:       "AI_SUMMARY_FAILED",
	ErrorCode_INTEGRATION_MAIL_FAILED: "INTEGRATION_MAIL_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int32(c))
}
