package models

// CustomError pairs a stable LENDY_* error code with an operator-facing
// message. The code prefix encodes the error kind: VALIDATION and POLICY codes
// are recoverable at the caller, TRANSITION codes indicate a caller bug,
// TRANSIENT codes are retryable.
type CustomError struct {
	Code    string
	Message string
}

func (e CustomError) Error() string {
	return e.Message
}
func (e CustomError) ErrorCode() string {
	return e.Code
}
