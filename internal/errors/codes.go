package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationDuplicateName ErrorCode = "VALIDATION_005"
)

// Upload error codes (UPLOAD_*)
const (
	UploadMissingFile ErrorCode = "UPLOAD_001"
	UploadInvalidType ErrorCode = "UPLOAD_002"
	UploadTooLarge    ErrorCode = "UPLOAD_003"
	UploadUnreadable  ErrorCode = "UPLOAD_004"
	UploadNoValidRows ErrorCode = "UPLOAD_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationDuplicateName: "Debt names must be unique",

	// Upload errors
	UploadMissingFile: "No file provided",
	UploadInvalidType: "Invalid file type",
	UploadTooLarge:    "Uploaded file exceeds the size limit",
	UploadUnreadable:  "Uploaded file could not be read",
	UploadNoValidRows: "Uploaded file contained no parseable rows",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
