package errors

// ErrorCode identifies an application error class independent of the HTTP
// status it maps to.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1005
	ErrorCode_FORBIDDEN        ErrorCode = 1006
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1007

	// Auth
	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 2001
	ErrorCode_AUTH_MISSING_TOKEN ErrorCode = 2002

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 3000
	ErrorCode_DB_WRITE_FAILED ErrorCode = 3001

	// Scoring
	ErrorCode_SCORING_INVALID_INPUT ErrorCode = 4000
	ErrorCode_DIAGNOSTIC_FAILED     ErrorCode = 4001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:               "OK",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:             "NOT_FOUND",
	ErrorCode_UNAUTHENTICATED:       "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:             "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:       "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:    "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:    "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_MISSING_TOKEN:    "AUTH_MISSING_TOKEN",
	ErrorCode_DB_QUERY_FAILED:       "DB_QUERY_FAILED",
	ErrorCode_DB_WRITE_FAILED:       "DB_WRITE_FAILED",
	ErrorCode_SCORING_INVALID_INPUT: "SCORING_INVALID_INPUT",
	ErrorCode_DIAGNOSTIC_FAILED:     "DIAGNOSTIC_FAILED",
}

// String implements fmt.Stringer
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
